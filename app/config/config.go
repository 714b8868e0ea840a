// Package config loads server settings from defaults, an optional config
// file, a .env file and LUMINOUS_* environment variables, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"luminous/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreBadger = "badger"

	envPrefix = "LUMINOUS"
)

type Config struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	Store           string        `mapstructure:"store" validate:"oneof=memory badger"`
	DBPath          string        `mapstructure:"db_path" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`

	GradientInterval time.Duration `mapstructure:"gradient_interval" validate:"gt=0"`
	ScrollSpeed      float64       `mapstructure:"scroll_speed" validate:"gt=0"`

	Site     Site     `mapstructure:"site"`
	Features Features `mapstructure:"features"`
}

type Site struct {
	Brand       string `mapstructure:"brand" validate:"required"`
	Tagline     string `mapstructure:"tagline"`
	VideoURL    string `mapstructure:"video_url" validate:"required,url"`
	ExternalURL string `mapstructure:"external_url" validate:"omitempty,url"`
}

// Features toggles the two cosmetic page behaviors.
type Features struct {
	GradientHeading bool `mapstructure:"gradient_heading"`
	SmoothScroll    bool `mapstructure:"smooth_scroll"`
}

var defaults = map[string]interface{}{
	"addr":              ":8080",
	"store":             StoreMemory,
	"db_path":           "data/badger",
	"shutdown_timeout":  "5s",
	"gradient_interval": services.DefaultGradientInterval.String(),
	"scroll_speed":      services.DefaultScrollSpeed,

	"site.brand":        "Luminous Blog",
	"site.tagline":      "Illuminating perspectives, one story at a time.",
	"site.video_url":    "https://assets.mixkit.co/videos/preview/mixkit-ink-swirling-in-slow-motion-169-large.mp4",
	"site.external_url": "https://mixkit.co/",

	"features.gradient_heading": true,
	"features.smooth_scroll":    true,
}

// Load builds the configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// PageOptions maps the site settings onto the page renderer.
func (c *Config) PageOptions() services.PageOptions {
	return services.PageOptions{
		Brand:           c.Site.Brand,
		Tagline:         c.Site.Tagline,
		VideoURL:        c.Site.VideoURL,
		ExternalURL:     c.Site.ExternalURL,
		GradientHeading: c.Features.GradientHeading,
		SmoothScroll:    c.Features.SmoothScroll,
		ScrollSpeed:     c.ScrollSpeed,
	}
}
