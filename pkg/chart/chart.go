// Package chart ties the pseudo-3D pipeline together: it owns the view
// options and plot box, fits the scene scale, caches the resolved frame and
// hands drawable slabs to a rendering sink at the host chart's lifecycle
// points.
package chart

import (
	"github.com/plotforge/chart3d/pkg/frame"
	"github.com/plotforge/chart3d/pkg/perspective"
	"github.com/plotforge/chart3d/pkg/render"
)

// Options3D configures the pseudo-3D view.
type Options3D struct {
	// Enabled switches the chart into 3D mode. It is read once at
	// construction; toggling it afterwards requires a new Chart.
	Enabled bool

	// Alpha tilts the scene about the horizontal screen axis, Beta spins
	// it about the vertical one. Both are in degrees and are normalized
	// to [0, 360) on every size change.
	Alpha float64
	Beta  float64

	// Depth is the z extrusion of the plot volume in pixels.
	Depth float64

	// ViewDistance controls perspective strength, as a multiple of Depth.
	ViewDistance float64

	// FitToPlot shrinks the projected scene until it stays inside the
	// plot rectangle.
	FitToPlot bool

	// AxisLabelPosition selects label anchoring: "auto" walks the visible
	// silhouette, anything else pins labels to the front edges.
	AxisLabelPosition string

	// Frame configures the bounding box drawn around the plot volume.
	Frame frame.Options
}

// DefaultOptions3D returns the stock view: a 100 px deep box with mild
// perspective, fitted to the plot. 3D mode itself stays off until enabled.
func DefaultOptions3D() Options3D {
	return Options3D{
		Depth:        100,
		ViewDistance: 25,
		FitToPlot:    true,
	}
}

// Axis describes one host-chart axis for the structural visibility scan.
type Axis struct {
	// Horizontal is the axis's on-screen orientation after any chart
	// inversion has been applied by the host.
	Horizontal bool
	// Opposite places the axis on the far side of the plot.
	Opposite bool
}

// Series identifies one host-chart series for stack bucketing and render
// ordering.
type Series struct {
	Name  string
	Index int
	// Stack is the explicit stack id; empty means unassigned.
	Stack string
}

// Config carries everything a chart needs at construction.
type Config struct {
	Options  Options3D
	Inverted bool
	Axes     []Axis
	Series   []*Series
	// Sink receives the frame slabs; nil is fine for geometry-only use.
	Sink render.Renderer
}

// Chart holds the 3D state for one host chart: the live options, the plot
// box from layout, the fitted scale and the cached frame.
type Chart struct {
	// Options are the live view options. AfterSetChartSize writes the
	// normalized angles back into them.
	Options Options3D

	is3d     bool
	inverted bool
	axes     []Axis
	series   []*Series
	sink     render.Renderer

	plotLeft, plotTop     float64
	plotWidth, plotHeight float64

	scale       float64
	frame       *frame.Frame
	hasRendered bool

	bounds PlotBoundsChecker
	order  SeriesRenderOrder
	class  ClassNameProvider
}

// New builds a chart and selects the 3D or flat strategy set from the
// options.
func New(cfg Config) *Chart {
	c := &Chart{
		Options:  cfg.Options,
		is3d:     cfg.Options.Enabled,
		inverted: cfg.Inverted,
		axes:     cfg.Axes,
		series:   cfg.Series,
		sink:     cfg.Sink,
		scale:    1,
	}
	if c.is3d {
		c.bounds = volumeBounds{}
		c.order = depthOrder{}
		c.class = class3D{}
	} else {
		c.bounds = planeBounds{}
		c.order = naturalOrder{}
		c.class = classFlat{}
	}
	return c
}

// Is3D reports whether the chart renders in 3D mode.
func (c *Chart) Is3D() bool { return c.is3d }

// Scale returns the active scene scale factor.
func (c *Chart) Scale() float64 { return c.scale }

// SetPlotBox records the plot rectangle computed by the host layout and
// invalidates the cached frame.
func (c *Chart) SetPlotBox(left, top, width, height float64) {
	c.plotLeft, c.plotTop = left, top
	c.plotWidth, c.plotHeight = width, height
	c.frame = nil
}

// View assembles the projection parameters for the current chart state.
func (c *Chart) View() perspective.View {
	return perspective.View{
		Alpha:        c.Options.Alpha,
		Beta:         c.Options.Beta,
		Depth:        c.Options.Depth,
		ViewDistance: c.Options.ViewDistance,
		PlotLeft:     c.plotLeft,
		PlotTop:      c.plotTop,
		PlotWidth:    c.plotWidth,
		PlotHeight:   c.plotHeight,
		Scale:        c.scale,
		Inverted:     c.inverted,
	}
}

// AfterSetChartSize runs after the host lays the chart out: it normalizes
// the rotation angles in place and refits the scene scale from scratch.
func (c *Chart) AfterSetChartSize() {
	if !c.is3d {
		return
	}
	c.Options.Alpha = perspective.NormalizeAngle(c.Options.Alpha)
	c.Options.Beta = perspective.NormalizeAngle(c.Options.Beta)

	c.scale = 1
	if c.Options.FitToPlot {
		c.scale = c.computeScale(c.Options.Depth)
	}
	c.frame = nil
}

// BeforeRender runs before the host's first paint of a pass.
func (c *Chart) BeforeRender() {
	if c.is3d {
		c.rebuildFrame()
	}
}

// BeforeRedraw runs before incremental repaints.
func (c *Chart) BeforeRedraw() {
	if c.is3d {
		c.rebuildFrame()
	}
}

// GetFrame returns the resolved frame for the current geometry, rebuilding
// it if a size change invalidated the cache. Nil when the chart is flat.
func (c *Chart) GetFrame() *frame.Frame {
	if !c.is3d {
		return nil
	}
	if c.frame == nil {
		c.rebuildFrame()
	}
	return c.frame
}

func (c *Chart) rebuildFrame() {
	infos := make([]frame.AxisInfo, len(c.axes))
	for i, a := range c.axes {
		infos[i] = frame.AxisInfo{Horizontal: a.Horizontal, Opposite: a.Opposite}
	}
	auto := c.Options.AxisLabelPosition == "auto"
	c.frame = frame.Resolve(c.View(), c.Options.Frame, infos, auto)
}

// DrawFrame hands the frame slabs to the sink: set on the first pass,
// animate on later ones.
func (c *Chart) DrawFrame() {
	if !c.is3d || c.sink == nil {
		return
	}
	mode := render.UpdateAnimate
	if !c.hasRendered {
		mode = render.UpdateSet
	}
	for _, shape := range frame.BuildShapes(c.GetFrame(), c.View()) {
		c.sink.Update(shape, mode)
	}
	c.hasRendered = true
}

// Render performs a full first pass.
func (c *Chart) Render() {
	c.BeforeRender()
	c.DrawFrame()
}

// Redraw performs an incremental pass, animating shape changes.
func (c *Chart) Redraw() {
	c.BeforeRedraw()
	c.DrawFrame()
}

// InsidePlot reports whether the plot-relative point (x, y) counts as
// inside the plot area under the active bounds strategy.
func (c *Chart) InsidePlot(x, y float64) bool {
	return c.bounds.InsidePlot(c, x, y)
}

// RenderOrder returns the series in the order they should be drawn.
func (c *Chart) RenderOrder() []*Series {
	return c.order.RenderOrder(c.series)
}

// ClassName returns the styling class the chart should carry.
func (c *Chart) ClassName() string {
	return c.class.ClassName()
}
