package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the name searched for in the working and config directories
const FileName = "goobj.yaml"

// Overrides carries command line values. Zero values and nil pointers
// leave the loaded setting untouched.
type Overrides struct {
	Debug     bool
	LogFile   string
	Count     *int
	Precision *int
}

// Load builds the configuration with priority defaults < file < overrides.
// An empty path searches the standard locations; a missing file there is
// not an error.
func Load(path string, overrides Overrides) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	overrides.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the commands cannot work with.
func (c *Config) Validate() error {
	if c.Report.Count < 0 {
		return fmt.Errorf("report.count must not be negative, got %d", c.Report.Count)
	}
	if c.Report.Precision < 0 || c.Report.Precision > 15 {
		return fmt.Errorf("report.precision must be between 0 and 15, got %d", c.Report.Precision)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

func (o Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Count != nil {
		cfg.Report.Count = *o.Count
	}
	if o.Precision != nil {
		cfg.Report.Precision = *o.Precision
	}
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "goobj")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "goobj")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "goobj")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "goobj")
	}
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
