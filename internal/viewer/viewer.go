// Package viewer opens an interactive SDL2 window on a configured chart.
// Dragging orbits the view, the wheel changes the plot depth, number keys
// cycle the frame faces through their visibility states.
package viewer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/plotforge/chart3d/internal/config"
	"github.com/plotforge/chart3d/internal/input"
	"github.com/plotforge/chart3d/internal/logger"
	"github.com/plotforge/chart3d/internal/window"
	"github.com/plotforge/chart3d/pkg/chart"
	"github.com/plotforge/chart3d/pkg/frame"
	"github.com/plotforge/chart3d/pkg/render"
)

// animDuration is the wall time a shape transition takes.
const animDuration = 350 * time.Millisecond

// minPlotSize is the smallest plot edge a resize may produce.
const minPlotSize = 50.0

// Viewer is the interactive chart window.
type Viewer struct {
	cfg   *config.Config
	win   *window.Window
	in    *input.Input
	chart *chart.Chart
	sink  *render.Collector
	orbit *Orbit

	// Plot margins preserved across window resizes.
	insetRight  float64
	insetBottom float64

	background color.RGBA
	running    bool
	animating  bool
}

// New creates the viewer window and the chart it displays.
func New(cfg *config.Config) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Info("initializing viewer",
		zap.Int("width", cfg.Chart.Width),
		zap.Int("height", cfg.Chart.Height),
	)

	v := &Viewer{
		cfg:   cfg,
		in:    input.New(),
		sink:  render.NewCollector(),
		orbit: NewOrbit(),
	}

	bg, _ := render.RGBA(cfg.Output.Background)
	if bg.A == 0 {
		bg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v.background = bg

	plot := cfg.Chart.Plot
	v.insetRight = float64(cfg.Chart.Width) - plot.Left - plot.Width
	v.insetBottom = float64(cfg.Chart.Height) - plot.Top - plot.Height

	win, err := window.New(window.Config{
		Title:  "chart3d",
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		VSync:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	v.win = win

	v.chart = chart.New(cfg.ChartConfig(v.sink))
	v.chart.SetPlotBox(plot.Left, plot.Top, plot.Width, plot.Height)
	v.chart.AfterSetChartSize()

	logger.Info("viewer initialized",
		zap.Bool("is3d", v.chart.Is3D()),
		zap.Float64("scale", v.chart.Scale()),
	)
	return v, nil
}

// Run starts the viewer loop and blocks until the window closes.
func (v *Viewer) Run() error {
	v.chart.Render()

	v.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.in.Update() {
			v.running = false
			break
		}
		for _, ev := range v.in.Events() {
			v.handleEvent(ev)
		}

		if v.animating {
			v.animating = v.sink.Step(float64(dt) / float64(animDuration))
		}

		if err := v.draw(); err != nil {
			return fmt.Errorf("draw error: %w", err)
		}
		v.win.Present()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up the viewer's window resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.win != nil {
		v.win.Close()
	}
}

func (v *Viewer) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		v.running = false

	case input.EventWindowResize:
		v.resize(ev.Width, ev.Height)

	case input.EventDrag:
		v.orbit.Drag(&v.chart.Options, float64(ev.DragX), float64(ev.DragY))
		v.refreshNow()

	case input.EventWheel:
		v.orbit.Zoom(&v.chart.Options, ev.WheelY)
		v.refreshNow()

	case input.EventKeyDown:
		v.handleKey(ev.Key)
	}
}

func (v *Viewer) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		v.running = false

	case sdl.K_r:
		v.chart.Options.Alpha = v.cfg.View.Alpha
		v.chart.Options.Beta = v.cfg.View.Beta
		v.chart.Options.Depth = v.cfg.View.Depth
		v.refreshAnimated()
		logger.Debug("view reset")

	case sdl.K_f:
		v.chart.Options.FitToPlot = !v.chart.Options.FitToPlot
		v.refreshAnimated()
		logger.Debug("fit toggled",
			zap.Bool("fit", v.chart.Options.FitToPlot),
			zap.Float64("scale", v.chart.Scale()),
		)

	case sdl.K_1, sdl.K_2, sdl.K_3, sdl.K_4, sdl.K_5, sdl.K_6:
		f := faceForKey(key)
		opt := v.faceOptions(f)
		opt.Visible = cycleVisibility(opt.Visible)
		v.refreshAnimated()
		logger.Debug("face cycled",
			zap.String("face", f.String()),
			zap.String("visible", opt.Visible.String()),
		)

	case sdl.K_s:
		v.saveView()
	}
}

// refreshNow rebuilds the scene immediately, dropping any running
// transition: drag and zoom track the pointer one to one.
func (v *Viewer) refreshNow() {
	v.chart.AfterSetChartSize()
	if fr := v.chart.GetFrame(); fr != nil {
		for _, p := range frame.BuildShapes(fr, v.chart.View()) {
			v.sink.Update(p, render.UpdateSet)
		}
	}
	v.animating = false
}

// refreshAnimated recomputes the scene and tweens the shapes over.
func (v *Viewer) refreshAnimated() {
	v.chart.AfterSetChartSize()
	v.chart.Redraw()
	v.animating = true
}

// resize rebuilds the plot box for the new window size, keeping the
// configured margins.
func (v *Viewer) resize(width, height int) {
	w, h := plotSizeFor(v.cfg.Chart.Plot, v.insetRight, v.insetBottom, width, height)
	v.chart.SetPlotBox(v.cfg.Chart.Plot.Left, v.cfg.Chart.Plot.Top, w, h)
	v.refreshNow()

	logger.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("scale", v.chart.Scale()),
	)
}

// plotSizeFor computes the plot rectangle size for a window size,
// preserving the configured margins on every side.
func plotSizeFor(plot config.PlotConfig, insetRight, insetBottom float64, width, height int) (w, h float64) {
	w = float64(width) - plot.Left - insetRight
	h = float64(height) - plot.Top - insetBottom
	if w < minPlotSize {
		w = minPlotSize
	}
	if h < minPlotSize {
		h = minPlotSize
	}
	return w, h
}

// saveView persists the current view back into the user config.
func (v *Viewer) saveView() {
	v.cfg.View.Alpha = v.chart.Options.Alpha
	v.cfg.View.Beta = v.chart.Options.Beta
	v.cfg.View.Depth = v.chart.Options.Depth
	v.cfg.View.FitToPlot = v.chart.Options.FitToPlot

	if err := v.cfg.Save(); err != nil {
		logger.Error("failed to save view", zap.Error(err))
		return
	}
	logger.Info("view saved", zap.String("dir", config.ConfigDir()))
}

func (v *Viewer) faceOptions(f frame.Face) *frame.FaceOptions {
	o := &v.chart.Options.Frame
	switch f {
	case frame.Bottom:
		return &o.Bottom
	case frame.Top:
		return &o.Top
	case frame.Left:
		return &o.Left
	case frame.Right:
		return &o.Right
	case frame.Front:
		return &o.Front
	default:
		return &o.Back
	}
}

func faceForKey(key sdl.Keycode) frame.Face {
	switch key {
	case sdl.K_1:
		return frame.Bottom
	case sdl.K_2:
		return frame.Top
	case sdl.K_3:
		return frame.Left
	case sdl.K_4:
		return frame.Right
	case sdl.K_5:
		return frame.Front
	default:
		return frame.Back
	}
}

// cycleVisibility steps a face option through the visibility states.
func cycleVisibility(vis frame.Visibility) frame.Visibility {
	switch vis {
	case frame.VisibilityUnset:
		return frame.VisibilityShown
	case frame.VisibilityShown:
		return frame.VisibilityHidden
	case frame.VisibilityHidden:
		return frame.VisibilityAuto
	case frame.VisibilityAuto:
		return frame.VisibilityDefault
	default:
		return frame.VisibilityUnset
	}
}
