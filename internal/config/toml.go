// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DateLayout is the calendar date format used in config files and flags.
const DateLayout = "2006-01-02"

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dashboard  DashboardConfig  `toml:"dashboard"`
	Milestones MilestonesConfig `toml:"milestones"`
	Phase      PhaseConfig      `toml:"phase"`
	Timer      TimerConfig      `toml:"timer"`
	Log        LogConfig        `toml:"log"`
}

// DashboardConfig maps startup settings for the dashboard.
type DashboardConfig struct {
	Role          *string `toml:"role"`
	Section       *string `toml:"section"`
	ReferenceDate *string `toml:"reference-date"`
	Content       *string `toml:"content"`
}

// MilestonesConfig maps the countdown dates.
type MilestonesConfig struct {
	CastRemoval *string `toml:"cast-removal"`
	Application *string `toml:"application"`
}

// PhaseConfig maps the phase 1 window.
type PhaseConfig struct {
	Start *string `toml:"start"`
	End   *string `toml:"end"`
}

// TimerConfig maps study timer settings.
type TimerConfig struct {
	Presets []int `toml:"presets"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

func (c FileConfig) validate() error {
	dates := []struct {
		key   string
		value *string
	}{
		{"dashboard.reference-date", c.Dashboard.ReferenceDate},
		{"milestones.cast-removal", c.Milestones.CastRemoval},
		{"milestones.application", c.Milestones.Application},
		{"phase.start", c.Phase.Start},
		{"phase.end", c.Phase.End},
	}
	for _, d := range dates {
		if d.value == nil {
			continue
		}
		if _, err := ParseDate(*d.value); err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
	}
	for _, p := range c.Timer.Presets {
		if p < 0 {
			return fmt.Errorf("invalid timer.presets: %d is negative", p)
		}
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
