// Package export renders a configured chart frame into an SVG or PNG file.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/plotforge/chart3d/internal/config"
	"github.com/plotforge/chart3d/internal/logger"
	"github.com/plotforge/chart3d/pkg/chart"
	"github.com/plotforge/chart3d/pkg/perspective"
	"github.com/plotforge/chart3d/pkg/render"
)

// Exporter renders one chart into an output file.
type Exporter struct {
	cfg   *config.Config
	chart *chart.Chart

	// Exactly one of these is set, matching the output format.
	svg    *render.SVG
	raster *render.Raster
}

// New builds the chart and the sink matching the configured output format.
func New(cfg *config.Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Exporter{cfg: cfg}

	var sink render.Renderer
	switch cfg.Output.Format {
	case "svg":
		e.svg = render.NewSVG(cfg.Chart.Width, cfg.Chart.Height, perspective.View{})
		e.svg.Background = cfg.Output.Background
		sink = e.svg
	case "png":
		e.raster = render.NewRaster(cfg.Chart.Width, cfg.Chart.Height, perspective.View{})
		bg, _ := render.RGBA(cfg.Output.Background)
		e.raster.Background = bg
		sink = e.raster
	}

	e.chart = chart.New(cfg.ChartConfig(sink))
	plot := cfg.Chart.Plot
	e.chart.SetPlotBox(plot.Left, plot.Top, plot.Width, plot.Height)
	e.chart.AfterSetChartSize()

	if len(cfg.Chart.Series) > 0 {
		reg := e.chart.GetStacks(cfg.Chart.Stacking)
		logger.Debug("series stacks",
			zap.Int("buckets", len(reg.Stacks)),
			zap.Int("total", reg.TotalStacks),
		)
	}

	logger.Debug("chart prepared",
		zap.Bool("is3d", e.chart.Is3D()),
		zap.Float64("alpha", e.chart.Options.Alpha),
		zap.Float64("beta", e.chart.Options.Beta),
		zap.Float64("scale", e.chart.Scale()),
	)
	return e, nil
}

// Run renders the chart and writes the output file, creating parent
// directories as needed.
func (e *Exporter) Run() error {
	e.chart.Render()

	var buf bytes.Buffer
	view := e.chart.View()
	switch {
	case e.svg != nil:
		e.svg.SetView(view)
		if _, err := e.svg.WriteTo(&buf); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
	case e.raster != nil:
		e.raster.SetView(view)
		if err := e.raster.EncodePNG(&buf); err != nil {
			return fmt.Errorf("writing png: %w", err)
		}
	}

	out := e.cfg.Output.Path
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	logger.Info("chart written",
		zap.String("path", out),
		zap.String("format", e.cfg.Output.Format),
		zap.Int("bytes", buf.Len()),
		zap.Float64("scale", e.chart.Scale()),
	)
	return nil
}
