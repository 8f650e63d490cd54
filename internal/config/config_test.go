package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test selection defaults
	if cfg.Selection.DefaultMode != "face" {
		t.Errorf("expected default mode 'face', got %s", cfg.Selection.DefaultMode)
	}

	// Test gizmo defaults
	if cfg.Gizmo.Orientation != "global" {
		t.Errorf("expected orientation 'global', got %s", cfg.Gizmo.Orientation)
	}

	// Test demo defaults
	if cfg.Demo.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Demo.Width)
	}
	if cfg.Demo.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Demo.Height)
	}
	if !cfg.Demo.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
selection:
  default_mode: "edge"

gizmo:
  orientation: "normal"

demo:
  width: 1920
  height: 1080
  vsync: false

logging:
  level: "debug"
  log_file: "gizmoplug.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Selection.DefaultMode != "edge" {
		t.Errorf("expected default mode 'edge', got %s", cfg.Selection.DefaultMode)
	}
	if cfg.Gizmo.Orientation != "normal" {
		t.Errorf("expected orientation 'normal', got %s", cfg.Gizmo.Orientation)
	}
	if cfg.Demo.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Demo.Width)
	}
	if cfg.Demo.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Demo.Height)
	}
	if cfg.Demo.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "gizmoplug.log" {
		t.Errorf("expected log file 'gizmoplug.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
demo:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("demo:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "mode flag",
			setup: func() {
				*flagMode = "vertex"
			},
			verify: func(cfg *Config) {
				if cfg.Selection.DefaultMode != "vertex" {
					t.Errorf("expected default mode 'vertex', got %s", cfg.Selection.DefaultMode)
				}
			},
			teardown: func() {
				*flagMode = ""
			},
		},
		{
			name: "orientation flag",
			setup: func() {
				*flagOrientation = "local"
			},
			verify: func(cfg *Config) {
				if cfg.Gizmo.Orientation != "local" {
					t.Errorf("expected orientation 'local', got %s", cfg.Gizmo.Orientation)
				}
			},
			teardown: func() {
				*flagOrientation = ""
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Demo.Width)
				}
				if cfg.Demo.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Demo.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "no-vsync flag",
			setup: func() {
				*flagNoVSync = true
			},
			verify: func(cfg *Config) {
				if cfg.Demo.VSync {
					t.Error("expected vsync to be false with no-vsync flag")
				}
			},
			teardown: func() {
				*flagNoVSync = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
demo:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Demo.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Demo.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Demo.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Demo.Height)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Selection.DefaultMode = "edge"
	cfg.Demo.Width = 800

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Load it back and verify round-trip
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Selection.DefaultMode != "edge" {
		t.Errorf("expected default mode 'edge', got %s", loaded.Selection.DefaultMode)
	}
	if loaded.Demo.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Demo.Width)
	}
}

func TestSaveToBadDir(t *testing.T) {
	tmpDir := t.TempDir()

	// A regular file where the parent directory should be
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	cfg := Default()
	err := cfg.SaveTo(filepath.Join(blocker, "config.yaml"))
	if err == nil {
		t.Error("expected error saving under a file, got nil")
	}
}
