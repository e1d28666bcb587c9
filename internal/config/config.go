// Package config handles configuration management using Viper. Settings come
// from defaults and CURSORLOCK_* environment variables only.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/cursorlock/internal/hotkey"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "CURSORLOCK"

// Config represents the application configuration
type Config struct {
	Monitor    MonitorConfig    `mapstructure:"monitor"`
	Hotkey     HotkeyConfig     `mapstructure:"hotkey"`
	Chime      ChimeConfig      `mapstructure:"chime"`
	Foreground ForegroundConfig `mapstructure:"foreground"`
	Shutdown   ShutdownConfig   `mapstructure:"shutdown"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// MonitorConfig selects the display up front
type MonitorConfig struct {
	Index int `mapstructure:"index"` // 1-based; 0 prompts
}

// HotkeyConfig describes the toggle key
type HotkeyConfig struct {
	Key       string `mapstructure:"key"`
	Modifiers string `mapstructure:"modifiers"` // "ctrl+alt" style
	Backend   string `mapstructure:"backend"`   // "register" or "hook"
	Capture   bool   `mapstructure:"capture"`   // offer interactive key capture at startup
}

// ChimeConfig toggles the audio cues
type ChimeConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ForegroundConfig toggles reassertion on focus change
type ForegroundConfig struct {
	Reassert bool `mapstructure:"reassert"`
}

// ShutdownConfig bounds the release on exit
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Monitor: MonitorConfig{
			Index: 0,
		},
		Hotkey: HotkeyConfig{
			Key:       "F9",
			Modifiers: "",
			Backend:   "register",
			Capture:   false,
		},
		Chime: ChimeConfig{
			Enabled: true,
		},
		Foreground: ForegroundConfig{
			Reassert: true,
		},
		Shutdown: ShutdownConfig{
			Timeout: 2 * time.Second,
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config
)

// Init initializes the configuration system
func Init() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults - need to set individual fields so env lookups bind
	viper.SetDefault("monitor.index", DefaultConfig.Monitor.Index)

	viper.SetDefault("hotkey.key", DefaultConfig.Hotkey.Key)
	viper.SetDefault("hotkey.modifiers", DefaultConfig.Hotkey.Modifiers)
	viper.SetDefault("hotkey.backend", DefaultConfig.Hotkey.Backend)
	viper.SetDefault("hotkey.capture", DefaultConfig.Hotkey.Capture)

	viper.SetDefault("chime.enabled", DefaultConfig.Chime.Enabled)
	viper.SetDefault("foreground.reassert", DefaultConfig.Foreground.Reassert)
	viper.SetDefault("shutdown.timeout", DefaultConfig.Shutdown.Timeout)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

// Validate rejects settings the listeners could not start with
func (c *Config) Validate() error {
	if c.Monitor.Index < 0 {
		return fmt.Errorf("monitor.index must not be negative, got %d", c.Monitor.Index)
	}
	if _, err := c.Binding(); err != nil {
		return fmt.Errorf("invalid hotkey: %w", err)
	}
	switch c.Hotkey.Backend {
	case "register", "hook":
	default:
		return fmt.Errorf("hotkey.backend must be register or hook, got %q", c.Hotkey.Backend)
	}
	if c.Shutdown.Timeout <= 0 {
		return fmt.Errorf("shutdown.timeout must be positive, got %s", c.Shutdown.Timeout)
	}
	return nil
}

// Binding resolves the configured key and modifiers. hotkey.key may carry
// its own modifiers ("Ctrl+Alt+F9"); they add to hotkey.modifiers.
func (c *Config) Binding() (hotkey.Binding, error) {
	binding, err := hotkey.ParseBinding(c.Hotkey.Key)
	if err != nil {
		return hotkey.Binding{}, err
	}
	mods, err := hotkey.ParseModifiers(c.Hotkey.Modifiers)
	if err != nil {
		return hotkey.Binding{}, err
	}
	binding.Modifiers |= mods
	return binding, nil
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
