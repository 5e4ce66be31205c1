// Package config provides configuration types and defaults for splitchance.
package config

import (
	"fmt"
	"time"

	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/component/resetchance"
	"github.com/npratt/splitchance/internal/settings"
)

// Config holds all configuration for splitchance.
type Config struct {
	Component   ComponentConfig   `yaml:"component" mapstructure:"component"`
	Display     DisplayConfig     `yaml:"display" mapstructure:"display"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// ComponentConfig holds the Reset Chance component settings used when no
// layout file is given. Colors are #RRGGBB or #RRGGBBAA; empty inherits.
type ComponentConfig struct {
	ShowSuccesses      bool   `yaml:"show_successes" mapstructure:"show_successes"`
	ShowAttemptDetails bool   `yaml:"show_attempt_details" mapstructure:"show_attempt_details"`
	DisplayTwoRows     bool   `yaml:"display_two_rows" mapstructure:"display_two_rows"`
	LabelColor         string `yaml:"label_color" mapstructure:"label_color" validate:"omitempty,colorhex"`
	ValueColor         string `yaml:"value_color" mapstructure:"value_color" validate:"omitempty,colorhex"`
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	Width           int           `yaml:"width" mapstructure:"width" validate:"min=16,max=200"`
	TextColor       string        `yaml:"text_color" mapstructure:"text_color" validate:"colorhex"`
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval" validate:"min=100ms"` // watch mode redraw interval
}

// PathsConfig holds input files and the bridge socket.
type PathsConfig struct {
	Run    string `yaml:"run" mapstructure:"run"`
	Layout string `yaml:"layout" mapstructure:"layout"`
	Socket string `yaml:"socket" mapstructure:"socket"`
	LogDir string `yaml:"log_dir" mapstructure:"log_dir"`
}

// LogRotationConfig holds settings for log file rotation.
// Used for the watch mode debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb" validate:"min=1"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days" validate:"min=0"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Component: ComponentConfig{},
		Display: DisplayConfig{
			Width:           40,
			TextColor:       "#FFFFFF",
			RefreshInterval: time.Second,
		},
		Paths: PathsConfig{
			Run:    "",
			Layout: "",
			Socket: ".splitchance/bridge.sock",
			LogDir: ".splitchance",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// ComponentSettings converts the component section into component settings.
func (c *Config) ComponentSettings() (resetchance.Settings, error) {
	s := resetchance.Settings{
		Background:         keyvalue.DefaultGradient,
		DisplayTwoRows:     c.Component.DisplayTwoRows,
		ShowSuccesses:      c.Component.ShowSuccesses,
		ShowAttemptDetails: c.Component.ShowAttemptDetails,
	}

	var err error
	if s.LabelColor, err = optionalColor(c.Component.LabelColor); err != nil {
		return s, fmt.Errorf("label_color: %w", err)
	}
	if s.ValueColor, err = optionalColor(c.Component.ValueColor); err != nil {
		return s, fmt.Errorf("value_color: %w", err)
	}
	return s, nil
}

// Renderer builds the key/value renderer described by the display section.
func (c *Config) Renderer() (keyvalue.Renderer, error) {
	r := keyvalue.DefaultRenderer(c.Display.Width)
	if c.Display.TextColor != "" {
		color, err := settings.ParseHex(c.Display.TextColor)
		if err != nil {
			return r, fmt.Errorf("text_color: %w", err)
		}
		r.TextColor = color
	}
	return r, nil
}

func optionalColor(s string) (*settings.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := settings.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
