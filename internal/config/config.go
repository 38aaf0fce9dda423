// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/keywire/keywire/internal/layout"
)

// Config represents the application configuration
type Config struct {
	// Virtual device settings
	Device DeviceConfig `mapstructure:"device"`

	// Keyboard layout overrides
	Layout LayoutConfig `mapstructure:"layout"`

	// Listener settings
	Listener ListenerConfig `mapstructure:"listener"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// DeviceConfig contains virtual-device settings
type DeviceConfig struct {
	Backend    string `mapstructure:"backend"`      // "auto", "uinput" or "uinput-lib"
	Name       string `mapstructure:"name"`         // Kernel device name
	KeyDelayMs int    `mapstructure:"key_delay_ms"` // Delay between down and up in tap/combo
}

// LayoutConfig overrides discovered XKB rule names. Empty fields defer to
// environment and system discovery.
type LayoutConfig struct {
	Rules   string `mapstructure:"rules"`
	Model   string `mapstructure:"model"`
	Layout  string `mapstructure:"layout"`
	Variant string `mapstructure:"variant"`
	Options string `mapstructure:"options"`
}

// RuleNames converts the override fields for layout resolution.
func (l LayoutConfig) RuleNames() layout.RuleNames {
	return layout.RuleNames{
		Rules:   l.Rules,
		Model:   l.Model,
		Layout:  l.Layout,
		Variant: l.Variant,
		Options: l.Options,
	}
}

// ListenerConfig contains monitoring settings
type ListenerConfig struct {
	DevicePath string `mapstructure:"device_path"` // Explicit /dev/input/event* path, empty for auto-detect
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Device: DeviceConfig{
			Backend:    "auto",
			Name:       "keywire virtual keyboard",
			KeyDelayMs: 1,
		},
		Layout:   LayoutConfig{},
		Listener: ListenerConfig{},
		Logging:  LoggingConfig{},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("keywire")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath("/etc/keywire")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "keywire"))
		viper.AddConfigPath(".")
	}

	viper.SetDefault("device.backend", DefaultConfig.Device.Backend)
	viper.SetDefault("device.name", DefaultConfig.Device.Name)
	viper.SetDefault("device.key_delay_ms", DefaultConfig.Device.KeyDelayMs)

	viper.SetDefault("layout.rules", DefaultConfig.Layout.Rules)
	viper.SetDefault("layout.model", DefaultConfig.Layout.Model)
	viper.SetDefault("layout.layout", DefaultConfig.Layout.Layout)
	viper.SetDefault("layout.variant", DefaultConfig.Layout.Variant)
	viper.SetDefault("layout.options", DefaultConfig.Layout.Options)

	viper.SetDefault("listener.device_path", DefaultConfig.Listener.DevicePath)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path of the loaded config file, or the user
// config location when none was found.
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	return filepath.Join(xdg.ConfigHome, "keywire", "keywire.toml")
}
