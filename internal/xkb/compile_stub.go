//go:build !cgo || !linux
// +build !cgo !linux

package xkb

import (
	"github.com/keywire/keywire/internal/layout"
	"github.com/keywire/keywire/internal/logger"
)

// Compile without libxkbcommon yields no entries; the key resolver falls back
// entirely to its static table.
func Compile(names layout.RuleNames) []Entry {
	logger.Debug("xkb: compiled without cgo, layout discovery disabled")
	_ = names
	return nil
}
