// Package config loads greyditor settings from an optional TOML file and
// GREYDITOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	View   ViewConfig   `mapstructure:"view"`
	Image  ImageConfig  `mapstructure:"image"`
	Editor EditorConfig `mapstructure:"editor"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
}

// ViewConfig holds view layout settings.
type ViewConfig struct {
	Padding int `mapstructure:"padding"`
	MaxZoom int `mapstructure:"max_zoom"`
}

// ImageConfig holds raster limits.
type ImageConfig struct {
	MaxSide     int `mapstructure:"max_side"`
	BlankWidth  int `mapstructure:"blank_width"`
	BlankHeight int `mapstructure:"blank_height"`
}

// EditorConfig holds editor presentation settings.
type EditorConfig struct {
	Title string `mapstructure:"title"`

	// ExitOnLastClose stops the server once the last open session closes.
	ExitOnLastClose bool `mapstructure:"exit_on_last_close"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// GREYDITOR_, with dots replaced by underscores (GREYDITOR_VIEW_MAX_ZOOM).
//
// The file is GREYDITOR_CONFIG when set, which must then exist, otherwise
// $HOME/.config/greyditor/config.toml when present.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("view.padding", 20)
	v.SetDefault("view.max_zoom", 5)
	v.SetDefault("image.max_side", 1000)
	v.SetDefault("image.blank_width", 200)
	v.SetDefault("image.blank_height", 200)
	v.SetDefault("editor.title", "Greyditor")
	v.SetDefault("editor.exit_on_last_close", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GREYDITOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "greyditor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GREYDITOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the editor cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.View.Padding < 0 {
		errs = append(errs, fmt.Errorf("view.padding must be >= 0, got %d", c.View.Padding))
	}
	if c.View.MaxZoom < 1 {
		errs = append(errs, fmt.Errorf("view.max_zoom must be >= 1, got %d", c.View.MaxZoom))
	}
	if c.Image.MaxSide < 1 {
		errs = append(errs, fmt.Errorf("image.max_side must be >= 1, got %d", c.Image.MaxSide))
	}
	if c.Image.BlankWidth < 1 || c.Image.BlankWidth > c.Image.MaxSide ||
		c.Image.BlankHeight < 1 || c.Image.BlankHeight > c.Image.MaxSide {
		errs = append(errs, fmt.Errorf("image.blank_width/blank_height must be within 1..%d, got %dx%d",
			c.Image.MaxSide, c.Image.BlankWidth, c.Image.BlankHeight))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
