package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Report.Count != 10 {
		t.Errorf("expected count 10, got %d", cfg.Report.Count)
	}
	if cfg.Report.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Report.Precision)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("expected debounce 250ms, got %v", cfg.Watch.Debounce)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
logging:
  level: "debug"
  log_file: "goobj.log"

report:
  count: 25

watch:
  debounce: 1s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "goobj.log" {
		t.Errorf("expected log file 'goobj.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Report.Count != 25 {
		t.Errorf("expected count 25, got %d", cfg.Report.Count)
	}
	if cfg.Report.Precision != 6 {
		t.Errorf("expected precision to keep its default, got %d", cfg.Report.Precision)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
report:
  count: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath, Overrides{}); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/goobj.yaml", Overrides{}); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("report:\n  count: 3\n  precision: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	tests := []struct {
		name      string
		overrides Overrides
		level     string
		logFile   string
		count     int
		precision int
	}{
		{"file only", Overrides{}, "info", "", 3, 2},
		{"debug", Overrides{Debug: true}, "debug", "", 3, 2},
		{"log file", Overrides{LogFile: "out.log"}, "info", "out.log", 3, 2},
		{"report", Overrides{Count: intPtr(7), Precision: intPtr(4)}, "info", "", 7, 4},
		{"zero precision", Overrides{Precision: intPtr(0)}, "info", "", 3, 0},
		{"zero count", Overrides{Count: intPtr(0)}, "info", "", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(configPath, tt.overrides)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Logging.Level != tt.level {
				t.Errorf("expected level %s, got %s", tt.level, cfg.Logging.Level)
			}
			if cfg.Logging.LogFile != tt.logFile {
				t.Errorf("expected log file %q, got %q", tt.logFile, cfg.Logging.LogFile)
			}
			if cfg.Report.Count != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, cfg.Report.Count)
			}
			if cfg.Report.Precision != tt.precision {
				t.Errorf("expected precision %d, got %d", tt.precision, cfg.Report.Precision)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative count", func(c *Config) { c.Report.Count = -1 }},
		{"precision too high", func(c *Config) { c.Report.Precision = 20 }},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Report.Count = 42
	cfg.Watch.Debounce = 2 * time.Second
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Report.Count != 42 || loaded.Watch.Debounce != 2*time.Second {
		t.Errorf("unexpected round trip result: %+v", loaded)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if filepath.Base(dir) != "goobj" {
		t.Errorf("expected config dir to end in goobj, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(FileName, []byte("report:\n  count: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path != FileName {
		t.Errorf("expected to find %s in current directory, got %q", FileName, path)
	}
}

func intPtr(v int) *int {
	return &v
}
