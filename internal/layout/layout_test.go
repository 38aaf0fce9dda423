package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyboard")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFromEnvironment(t *testing.T) {
	env := fakeEnv(map[string]string{
		"XKB_DEFAULT_RULES":   "evdev",
		"XKB_DEFAULT_MODEL":   "pc105",
		"XKB_DEFAULT_LAYOUT":  " de ",
		"XKB_DEFAULT_VARIANT": "nodeadkeys",
		"XKB_DEFAULT_OPTIONS": "caps:escape",
	})

	r := detect(env, filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, "evdev", r.Rules)
	assert.Equal(t, "pc105", r.Model)
	assert.Equal(t, "de", r.Layout, "values should be trimmed")
	assert.Equal(t, "nodeadkeys", r.Variant)
	assert.Equal(t, "caps:escape", r.Options)
}

func TestDetectFileFillsOnlyEmptyFields(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`# keyboard configuration`,
		`XKBMODEL="pc104"`,
		`XKBLAYOUT="fr"`,
		`XKBVARIANT='azerty'`,
		`XKBOPTIONS=""`,
		``,
		`not a key value line`,
	}, "\n"))

	env := fakeEnv(map[string]string{
		"XKB_DEFAULT_LAYOUT": "us", // environment is stronger than the file
	})

	r := detect(env, path)
	assert.Equal(t, "us", r.Layout)
	assert.Equal(t, "pc104", r.Model)
	assert.Equal(t, "azerty", r.Variant)
	assert.Equal(t, "", r.Options, "empty quoted value must not fill the field")
}

func TestDetectFileCommentsAndQuotes(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`XKBLAYOUT="gb" # british`,
		`xkbmodel=pc105`,
	}, "\n"))

	r := detect(fakeEnv(nil), path)
	assert.Equal(t, "gb", r.Layout)
	assert.Equal(t, "pc105", r.Model, "key comparison is case-insensitive")
}

func TestDetectLocaleFallback(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		layout string
	}{
		{"lc_all_wins", map[string]string{"LC_ALL": "en_GB.UTF-8", "LANG": "de_DE.UTF-8"}, "gb"},
		{"lc_messages", map[string]string{"LC_MESSAGES": "sv_SE.UTF-8"}, "se"},
		{"lang", map[string]string{"LANG": "pt_BR.UTF-8"}, "br"},
		{"english_default", map[string]string{"LANG": "en_US.UTF-8"}, "us"},
		{"english_uk_alias", map[string]string{"LANG": "en_UK"}, "gb"},
		{"danish", map[string]string{"LANG": "da_DK.UTF-8"}, "dk"},
		{"portuguese_portugal", map[string]string{"LANG": "pt_PT.UTF-8"}, "pt"},
		{"modifier_suffix", map[string]string{"LANG": "de_DE.UTF-8@euro"}, "de"},
		{"bare_language", map[string]string{"LANG": "fi"}, "fi"},
		{"no_locale", map[string]string{}, ""},
	}

	missing := filepath.Join(t.TempDir(), "missing")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := detect(fakeEnv(tt.env), missing)
			assert.Equal(t, tt.layout, r.Layout)
		})
	}
}

func TestDetectNeverFails(t *testing.T) {
	r := detect(fakeEnv(nil), filepath.Join(t.TempDir(), "missing"))
	assert.True(t, r.Empty())
}

func TestMergeOverridesWinFieldByField(t *testing.T) {
	base := RuleNames{Rules: "evdev", Model: "pc105", Layout: "us"}

	r := merge(base, RuleNames{Layout: "de", Variant: "nodeadkeys"})
	assert.Equal(t, "evdev", r.Rules, "empty override keeps the discovered value")
	assert.Equal(t, "pc105", r.Model)
	assert.Equal(t, "de", r.Layout)
	assert.Equal(t, "nodeadkeys", r.Variant)

	assert.Equal(t, base, merge(base, RuleNames{}), "no overrides leaves discovery untouched")
}

func TestRuleNamesEmpty(t *testing.T) {
	assert.True(t, RuleNames{}.Empty())
	assert.False(t, RuleNames{Layout: "us"}.Empty())
	assert.False(t, RuleNames{Options: "caps:escape"}.Empty())
}
