package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	prevOverride := configPathOverride
	viper.Reset()
	t.Cleanup(func() {
		cfg = prev
		configPathOverride = prevOverride
		viper.Reset()
	})
	cfg = nil
	configPathOverride = ""
}

func TestGetReturnsDefaultsWhenUninitialized(t *testing.T) {
	resetConfig(t)

	c := Get()
	require.NotNil(t, c)
	assert.Equal(t, "auto", c.Device.Backend)
	assert.Equal(t, "keywire virtual keyboard", c.Device.Name)
	assert.Equal(t, 1, c.Device.KeyDelayMs)
	assert.Empty(t, c.Layout.Layout)
	assert.Empty(t, c.Listener.DevicePath)
}

func TestInitLoadsConfigFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "keywire.toml")
	content := `
[device]
backend = "uinput-lib"
key_delay_ms = 5

[layout]
layout = "de"
variant = "nodeadkeys"

[listener]
device_path = "/dev/input/event3"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	SetConfigPath(path)
	require.NoError(t, Init())

	c := Get()
	assert.Equal(t, "uinput-lib", c.Device.Backend)
	assert.Equal(t, 5, c.Device.KeyDelayMs)
	assert.Equal(t, "de", c.Layout.Layout)
	assert.Equal(t, "nodeadkeys", c.Layout.Variant)
	assert.Equal(t, "/dev/input/event3", c.Listener.DevicePath)

	// Unset fields keep their defaults.
	assert.Equal(t, "keywire virtual keyboard", c.Device.Name)

	assert.Equal(t, path, GetConfigPath())
}

func TestInitWithoutConfigFileUsesDefaults(t *testing.T) {
	resetConfig(t)

	// Point at a directory containing no keywire.toml.
	// testing.T.Chdir needs Go 1.24; do the equivalent by hand.
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prevWD)) })

	require.NoError(t, Init())
	assert.Equal(t, DefaultConfig.Device, Get().Device)
}

func TestLayoutConfigRuleNames(t *testing.T) {
	lc := LayoutConfig{Rules: "evdev", Model: "pc105", Layout: "fr", Variant: "azerty", Options: "caps:escape"}
	r := lc.RuleNames()
	assert.Equal(t, "evdev", r.Rules)
	assert.Equal(t, "pc105", r.Model)
	assert.Equal(t, "fr", r.Layout)
	assert.Equal(t, "azerty", r.Variant)
	assert.Equal(t, "caps:escape", r.Options)

	assert.True(t, LayoutConfig{}.RuleNames().Empty())
}

func TestSetOverridesConfig(t *testing.T) {
	resetConfig(t)

	Set(&Config{Device: DeviceConfig{Backend: "uinput"}})
	assert.Equal(t, "uinput", Get().Device.Backend)
}
