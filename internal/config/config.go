// Package config handles goobj configuration loading.
package config

import "time"

// Config holds all goobj settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	Watch   WatchConfig   `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ReportConfig controls the tables printed by the inspection commands.
type ReportConfig struct {
	Count     int `yaml:"count"`     // rows shown by triangles/edges
	Precision int `yaml:"precision"` // decimals for coordinates and lengths
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Report: ReportConfig{
			Count:     10,
			Precision: 6,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}
