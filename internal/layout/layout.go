// Package layout discovers the active XKB keyboard layout from the
// environment, the distribution keyboard config file, and the locale.
// Discovery is best-effort and never fails: missing information simply
// leaves fields empty.
package layout

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/keywire/keywire/internal/logger"
)

// defaultConfigFile is the Debian/Ubuntu-style keyboard configuration file.
const defaultConfigFile = "/etc/default/keyboard"

// RuleNames carries the five XKB rule-name components used to compile a
// keymap. The zero value means "use compiled-in defaults".
type RuleNames struct {
	Rules   string
	Model   string
	Layout  string
	Variant string
	Options string
}

// Empty reports whether no component was discovered.
func (r RuleNames) Empty() bool {
	return r.Rules == "" && r.Model == "" && r.Layout == "" &&
		r.Variant == "" && r.Options == ""
}

// Detect resolves rule names in priority order: XKB_DEFAULT_* environment
// variables, then /etc/default/keyboard for fields still empty, then a
// locale heuristic for the layout field. No external command is invoked.
func Detect() RuleNames {
	r := detect(os.Getenv, defaultConfigFile)
	logger.Debugf("layout: detected rules=%q model=%q layout=%q variant=%q options=%q",
		r.Rules, r.Model, r.Layout, r.Variant, r.Options)
	return r
}

// Resolve runs Detect and applies explicit per-field overrides on top.
// Every consumer of the active layout resolves through here so the sender
// and listener always see the same rule names.
func Resolve(overrides RuleNames) RuleNames {
	return merge(Detect(), overrides)
}

// merge returns base with every non-empty field of overrides applied.
func merge(base, overrides RuleNames) RuleNames {
	if overrides.Rules != "" {
		base.Rules = overrides.Rules
	}
	if overrides.Model != "" {
		base.Model = overrides.Model
	}
	if overrides.Layout != "" {
		base.Layout = overrides.Layout
	}
	if overrides.Variant != "" {
		base.Variant = overrides.Variant
	}
	if overrides.Options != "" {
		base.Options = overrides.Options
	}
	return base
}

func detect(getenv func(string) string, configFile string) RuleNames {
	var r RuleNames
	r.Rules = strings.TrimSpace(getenv("XKB_DEFAULT_RULES"))
	r.Model = strings.TrimSpace(getenv("XKB_DEFAULT_MODEL"))
	r.Layout = strings.TrimSpace(getenv("XKB_DEFAULT_LAYOUT"))
	r.Variant = strings.TrimSpace(getenv("XKB_DEFAULT_VARIANT"))
	r.Options = strings.TrimSpace(getenv("XKB_DEFAULT_OPTIONS"))

	if r.Rules == "" || r.Model == "" || r.Layout == "" || r.Variant == "" || r.Options == "" {
		if f, err := os.Open(configFile); err == nil {
			fillFromConfig(&r, f)
			f.Close()
		}
	}

	if r.Layout == "" {
		locale := getenv("LC_ALL")
		if locale == "" {
			locale = getenv("LC_MESSAGES")
		}
		if locale == "" {
			locale = getenv("LANG")
		}
		r.Layout = layoutFromLocale(locale)
	}

	return r
}

// fillFromConfig parses a line-oriented KEY=value file, stripping comments
// and surrounding quotes, and fills only fields still empty. The file source
// is weaker than the environment.
func fillFromConfig(r *RuleNames, src io.Reader) {
	setIfEmpty := func(dst *string, val string) {
		if *dst == "" {
			*dst = val
		}
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		val = strings.TrimSpace(stripQuotes(strings.TrimSpace(val)))
		if val == "" {
			continue
		}

		switch key {
		case "XKBRULES", "XKB_DEFAULT_RULES":
			setIfEmpty(&r.Rules, val)
		case "XKBMODEL", "XKB_DEFAULT_MODEL":
			setIfEmpty(&r.Model, val)
		case "XKBLAYOUT", "XKB_DEFAULT_LAYOUT":
			setIfEmpty(&r.Layout, val)
		case "XKBVARIANT", "XKB_DEFAULT_VARIANT":
			setIfEmpty(&r.Variant, val)
		case "XKBOPTIONS", "XKB_DEFAULT_OPTIONS":
			setIfEmpty(&r.Options, val)
		}
	}
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// layoutFromLocale guesses an XKB layout code from a locale name such as
// "en_GB.UTF-8". Returns "" when the locale gives no usable hint.
func layoutFromLocale(locale string) string {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}

	lang := locale
	region := ""
	if i := strings.IndexByte(locale, '_'); i >= 0 {
		lang = locale[:i]
		region = locale[i+1:]
	}
	lang = strings.ToLower(lang)
	region = strings.ToUpper(region)

	switch {
	case lang == "en" && (region == "GB" || region == "UK"):
		return "gb"
	case lang == "en":
		return "us"
	case lang == "pt" && region == "BR":
		return "br"
	case lang == "da":
		return "dk"
	case lang == "sv":
		return "se"
	default:
		return lang
	}
}
