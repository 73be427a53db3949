package viewer

import "github.com/plotforge/chart3d/pkg/chart"

// Orbit maps pointer gestures onto the chart's view options.
type Orbit struct {
	// DragDegPerPx converts drag distance to rotation degrees.
	DragDegPerPx float64
	// ZoomStep is the relative depth change per wheel notch.
	ZoomStep float64

	// Depth constraints.
	MinDepth float64
	MaxDepth float64
}

// NewOrbit returns an orbit control with default sensitivities.
func NewOrbit() *Orbit {
	return &Orbit{
		DragDegPerPx: 0.4,
		ZoomStep:     0.1,
		MinDepth:     10,
		MaxDepth:     500,
	}
}

// Drag spins the view: horizontal motion turns beta, vertical motion tilts
// alpha, with an upward drag lifting the viewpoint.
func (o *Orbit) Drag(opts *chart.Options3D, dx, dy float64) {
	opts.Beta += dx * o.DragDegPerPx
	opts.Alpha -= dy * o.DragDegPerPx
}

// Zoom scales the plot depth by the wheel delta, clamped to the usable
// range.
func (o *Orbit) Zoom(opts *chart.Options3D, delta float64) {
	d := opts.Depth + delta*opts.Depth*o.ZoomStep
	if d < o.MinDepth {
		d = o.MinDepth
	}
	if d > o.MaxDepth {
		d = o.MaxDepth
	}
	opts.Depth = d
}
