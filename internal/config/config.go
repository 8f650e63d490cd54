// Package config handles plugin configuration loading and management.
package config

// Config holds all plugin settings.
type Config struct {
	Selection SelectionConfig `yaml:"selection"`
	Gizmo     GizmoConfig     `yaml:"gizmo"`
	Demo      DemoConfig      `yaml:"demo"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SelectionConfig holds selection engine settings.
type SelectionConfig struct {
	// DefaultMode is the component mode a new session starts in:
	// "vertex", "edge" or "face".
	DefaultMode string `yaml:"default_mode"`
}

// GizmoConfig holds transform gizmo orientation settings.
type GizmoConfig struct {
	// Orientation is the axis derivation space: "global", "local" or
	// "normal".
	Orientation string `yaml:"orientation"`
}

// DemoConfig holds settings for the standalone demo host window.
type DemoConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Selection: SelectionConfig{
			DefaultMode: "face",
		},
		Gizmo: GizmoConfig{
			Orientation: "global",
		},
		Demo: DemoConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
