// Package config handles chart3d tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/plotforge/chart3d/pkg/chart"
	"github.com/plotforge/chart3d/pkg/frame"
	"github.com/plotforge/chart3d/pkg/render"
)

// Config holds all chart3d tool settings.
type Config struct {
	Chart   ChartConfig   `yaml:"chart"`
	View    ViewConfig    `yaml:"view"`
	Frame   FrameConfig   `yaml:"frame"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ChartConfig holds the chart canvas, plot area and host-chart structure.
type ChartConfig struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Plot     PlotConfig     `yaml:"plot"`
	Inverted bool           `yaml:"inverted"`
	Stacking bool           `yaml:"stacking"`
	Axes     []AxisConfig   `yaml:"axes"`
	Series   []SeriesConfig `yaml:"series"`
}

// PlotConfig positions the plot rectangle inside the chart canvas.
type PlotConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AxisConfig describes one chart axis.
type AxisConfig struct {
	Horizontal bool `yaml:"horizontal"`
	Opposite   bool `yaml:"opposite"`
}

// SeriesConfig describes one chart series.
type SeriesConfig struct {
	Name  string `yaml:"name"`
	Stack string `yaml:"stack"`
}

// ViewConfig holds the 3D view settings.
type ViewConfig struct {
	Enabled           bool    `yaml:"enabled"`
	Alpha             float64 `yaml:"alpha"`
	Beta              float64 `yaml:"beta"`
	Depth             float64 `yaml:"depth"`
	ViewDistance      float64 `yaml:"view_distance"`
	FitToPlot         bool    `yaml:"fit_to_plot"`
	AxisLabelPosition string  `yaml:"axis_label_position"`
}

// FrameConfig holds the frame pane settings: frame-wide values plus
// per-face overrides, mirroring the resolver's option sources.
type FrameConfig struct {
	Size    *float64   `yaml:"size"`
	Color   string     `yaml:"color"`
	Visible Visibility `yaml:"visible"`

	Bottom FaceConfig `yaml:"bottom"`
	Top    FaceConfig `yaml:"top"`
	Left   FaceConfig `yaml:"left"`
	Right  FaceConfig `yaml:"right"`
	Front  FaceConfig `yaml:"front"`
	Back   FaceConfig `yaml:"back"`
	Side   FaceConfig `yaml:"side"`
}

// FaceConfig configures one frame face.
type FaceConfig struct {
	Size    *float64   `yaml:"size"`
	Color   string     `yaml:"color"`
	Visible Visibility `yaml:"visible"`
}

// OutputConfig controls where and how the render command writes.
type OutputConfig struct {
	Format     string `yaml:"format"`
	Path       string `yaml:"path"`
	Background string `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a 600x400 chart
// with the stock 15/15 view and a light gray frame.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Width:  600,
			Height: 400,
			Plot: PlotConfig{
				Left:   60,
				Top:    40,
				Width:  500,
				Height: 320,
			},
			Axes: []AxisConfig{
				{Horizontal: true},
				{},
			},
		},
		View: ViewConfig{
			Enabled:           true,
			Alpha:             15,
			Beta:              15,
			Depth:             100,
			ViewDistance:      25,
			FitToPlot:         true,
			AxisLabelPosition: "default",
		},
		Frame: FrameConfig{
			Size:    frame.Size(1),
			Color:   "#e0e0e0",
			Visible: Visibility{Value: frame.VisibilityDefault},
		},
		Output: OutputConfig{
			Format:     "svg",
			Path:       "chart.svg",
			Background: "#ffffff",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size %dx%d is not drawable", c.Chart.Width, c.Chart.Height)
	}
	switch c.Output.Format {
	case "svg", "png":
	default:
		return fmt.Errorf("unrecognized output format %q", c.Output.Format)
	}
	if _, err := render.RGBA(c.Output.Background); err != nil {
		return fmt.Errorf("output background: %w", err)
	}

	paints := []struct {
		name  string
		value string
	}{
		{"frame", c.Frame.Color},
		{"bottom", c.Frame.Bottom.Color},
		{"top", c.Frame.Top.Color},
		{"left", c.Frame.Left.Color},
		{"right", c.Frame.Right.Color},
		{"front", c.Frame.Front.Color},
		{"back", c.Frame.Back.Color},
		{"side", c.Frame.Side.Color},
	}
	for _, p := range paints {
		if _, err := render.RGBA(p.value); err != nil {
			return fmt.Errorf("%s color: %w", p.name, err)
		}
	}
	return nil
}

// Options3D assembles the view options from the file values.
func (c *Config) Options3D() chart.Options3D {
	return chart.Options3D{
		Enabled:           c.View.Enabled,
		Alpha:             c.View.Alpha,
		Beta:              c.View.Beta,
		Depth:             c.View.Depth,
		ViewDistance:      c.View.ViewDistance,
		FitToPlot:         c.View.FitToPlot,
		AxisLabelPosition: c.View.AxisLabelPosition,
		Frame:             c.Frame.Options(),
	}
}

// ChartConfig assembles the full chart construction config, wiring the
// given sink.
func (c *Config) ChartConfig(sink render.Renderer) chart.Config {
	axes := make([]chart.Axis, len(c.Chart.Axes))
	for i, a := range c.Chart.Axes {
		axes[i] = chart.Axis{Horizontal: a.Horizontal, Opposite: a.Opposite}
	}
	series := make([]*chart.Series, len(c.Chart.Series))
	for i, s := range c.Chart.Series {
		series[i] = &chart.Series{Name: s.Name, Index: i, Stack: s.Stack}
	}
	return chart.Config{
		Options:  c.Options3D(),
		Inverted: c.Chart.Inverted,
		Axes:     axes,
		Series:   series,
		Sink:     sink,
	}
}

// Options converts the yaml frame settings to the resolver's option set.
func (f FrameConfig) Options() frame.Options {
	return frame.Options{
		Size:    f.Size,
		Color:   f.Color,
		Visible: f.Visible.Value,
		Bottom:  f.Bottom.faceOptions(),
		Top:     f.Top.faceOptions(),
		Left:    f.Left.faceOptions(),
		Right:   f.Right.faceOptions(),
		Front:   f.Front.faceOptions(),
		Back:    f.Back.faceOptions(),
		Side:    f.Side.faceOptions(),
	}
}

func (f FaceConfig) faceOptions() frame.FaceOptions {
	return frame.FaceOptions{Size: f.Size, Color: f.Color, Visible: f.Visible.Value}
}
