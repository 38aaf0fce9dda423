//go:build cgo && linux
// +build cgo,linux

package xkb

/*
#cgo pkg-config: xkbcommon
#include <stdlib.h>
#include <string.h>
#include <xkbcommon/xkbcommon.h>
*/
import "C"

import (
	"unsafe"

	"github.com/keywire/keywire/internal/layout"
	"github.com/keywire/keywire/internal/logger"
)

// Compile builds a keymap for the given rule names and returns, for every
// physical keycode in the keymap's legal range, the symbol it produces with
// no modifiers held. Codes producing no symbol are skipped. Any compilation
// failure is non-fatal and yields an empty stream.
func Compile(names layout.RuleNames) []Entry {
	ctx := C.xkb_context_new(C.XKB_CONTEXT_NO_FLAGS)
	if ctx == nil {
		logger.Error("xkb: context creation failed")
		return nil
	}
	defer C.xkb_context_unref(ctx)

	var rules C.struct_xkb_rule_names
	hold := setRuleNames(&rules, names)
	defer func() {
		for _, p := range hold {
			C.free(p)
		}
	}()

	var rulesPtr *C.struct_xkb_rule_names
	if !names.Empty() {
		rulesPtr = &rules
	}

	keymap := C.xkb_keymap_new_from_names(ctx, rulesPtr, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if keymap == nil {
		logger.Errorf("xkb: keymap compilation failed (layout=%q variant=%q)",
			names.Layout, names.Variant)
		return nil
	}
	defer C.xkb_keymap_unref(keymap)

	state := C.xkb_state_new(keymap)
	if state == nil {
		logger.Error("xkb: state creation failed")
		return nil
	}
	defer C.xkb_state_unref(state)

	minCode := C.xkb_keymap_min_keycode(keymap)
	maxCode := C.xkb_keymap_max_keycode(keymap)

	var entries []Entry
	var nameBuf [64]C.char
	for code := minCode; code <= maxCode; code++ {
		sym := C.xkb_state_key_get_one_sym(state, code)
		if sym == C.XKB_KEY_NoSymbol {
			continue
		}
		name := ""
		if n := C.xkb_keysym_get_name(sym, &nameBuf[0], C.size_t(len(nameBuf))); n > 0 {
			name = C.GoString(&nameBuf[0])
		}
		entries = append(entries, Entry{
			Code: uint32(code),
			Sym:  Symbol(sym),
			Name: name,
		})
	}

	logger.Debugf("xkb: compiled %d symbol entries (codes %d..%d)",
		len(entries), uint32(minCode), uint32(maxCode))
	return entries
}

// setRuleNames fills the C rule-names struct from the discovered values and
// returns the C strings to free once the keymap is built.
func setRuleNames(dst *C.struct_xkb_rule_names, names layout.RuleNames) []unsafe.Pointer {
	var hold []unsafe.Pointer
	alloc := func(s string) *C.char {
		if s == "" {
			return nil
		}
		p := C.CString(s)
		hold = append(hold, unsafe.Pointer(p))
		return p
	}
	dst.rules = alloc(names.Rules)
	dst.model = alloc(names.Model)
	dst.layout = alloc(names.Layout)
	dst.variant = alloc(names.Variant)
	dst.options = alloc(names.Options)
	return hold
}
