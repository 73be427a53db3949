// Package main renders a configured 3D chart frame to an SVG or PNG file.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/plotforge/chart3d/internal/config"
	"github.com/plotforge/chart3d/internal/export"
	"github.com/plotforge/chart3d/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// -write-config dumps the effective settings for editing and exits
	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote config to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== chart3d render ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Build the chart and its output sink
	e, err := export.New(cfg)
	if err != nil {
		logger.Error("failed to prepare chart", zap.Error(err))
		os.Exit(1)
	}

	// Render and write the file
	if err := e.Run(); err != nil {
		logger.Error("render error", zap.Error(err))
		os.Exit(1)
	}
}
