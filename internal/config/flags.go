package config

import (
	"flag"
	"math"
)

// Angle flags default to NaN because 0 is a meaningful rotation; NaN marks
// the flag as not given.
var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagAlpha       = flag.Float64("alpha", math.NaN(), "View tilt in degrees")
	flagBeta        = flag.Float64("beta", math.NaN(), "View spin in degrees")
	flagDepth       = flag.Float64("depth", 0, "Plot volume depth in pixels")
	flagFlat        = flag.Bool("flat", false, "Disable the 3D view")
	flagWidth       = flag.Int("width", 0, "Chart width in pixels")
	flagHeight      = flag.Int("height", 0, "Chart height in pixels")
	flagOut         = flag.String("out", "", "Output file path")
	flagFormat      = flag.String("format", "", "Output format (svg or png)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given via -write-config, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if !math.IsNaN(*flagAlpha) {
		cfg.View.Alpha = *flagAlpha
	}
	if !math.IsNaN(*flagBeta) {
		cfg.View.Beta = *flagBeta
	}
	if *flagDepth > 0 {
		cfg.View.Depth = *flagDepth
	}
	if *flagFlat {
		cfg.View.Enabled = false
	}
	if *flagWidth > 0 {
		cfg.Chart.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Chart.Height = *flagHeight
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
