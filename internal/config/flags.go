package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagMode        = flag.String("mode", "", "Initial selection mode (vertex, edge, face)")
	flagOrientation = flag.String("orientation", "", "Gizmo orientation space (global, local, normal)")
	flagWidth       = flag.Int("width", 0, "Demo window width")
	flagHeight      = flag.Int("height", 0, "Demo window height")
	flagNoVSync     = flag.Bool("no-vsync", false, "Disable vsync in the demo window")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Selection.DefaultMode = *flagMode
	}
	if *flagOrientation != "" {
		cfg.Gizmo.Orientation = *flagOrientation
	}
	if *flagWidth > 0 {
		cfg.Demo.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Demo.Height = *flagHeight
	}
	if *flagNoVSync {
		cfg.Demo.VSync = false
	}
}
