package frame

import (
	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
)

// orientationMargin absorbs sub-pixel rounding when classifying a face's
// projected winding: areas within half a square pixel of zero count as
// edge-on.
const orientationMargin = 0.5

// ResolvedFace is the renderer-ready state of one frame face.
type ResolvedFace struct {
	Size  float64
	Color string
	// Orientation classifies the face's projected winding: +1 when its
	// outer side points away from the viewer (the face sits behind the
	// plot volume showing its inner wall), -1 when the outer side points
	// at the viewer, 0 when the face projects edge-on.
	Orientation int
	Visible     bool
}

// FrontFacing reports whether the face sits behind the plot volume with its
// inner wall toward the viewer. Edge-on faces are not front-facing.
func (f ResolvedFace) FrontFacing() bool {
	return f.Orientation > 0
}

// Edge anchors one side of an axis's labels on the frame.
type Edge struct {
	// Pos is the midpoint of the edge in chart-local 3D space.
	Pos geom.Point3D
	// Dir points away from the plot volume; labels extend along it.
	Dir geom.Vec3
}

// Axes holds the chosen label anchor per axis side. A nil entry means the
// current face configuration leaves that side without a usable edge and its
// labels stay hidden.
type Axes struct {
	YLeft   *Edge
	YRight  *Edge
	XTop    *Edge
	XBottom *Edge
	ZTop    *Edge
	ZBottom *Edge
}

// Frame is the resolved six-face bounding frame plus axis label anchors.
type Frame struct {
	Bottom ResolvedFace
	Top    ResolvedFace
	Left   ResolvedFace
	Right  ResolvedFace
	Front  ResolvedFace
	Back   ResolvedFace

	Axes Axes
}

// At returns the resolved state of face f.
func (fr *Frame) At(f Face) *ResolvedFace {
	switch f {
	case Bottom:
		return &fr.Bottom
	case Top:
		return &fr.Top
	case Left:
		return &fr.Left
	case Right:
		return &fr.Right
	case Front:
		return &fr.Front
	default:
		return &fr.Back
	}
}

// AxisInfo describes one chart axis for the structural visibility scan.
type AxisInfo struct {
	// Horizontal axes claim the bottom face (top when opposite);
	// vertical axes claim the left face (right when opposite).
	Horizontal bool
	Opposite   bool
}

// structuralDefaults is the per-face default visibility derived from the
// chart's axes. Back always defaults to visible and front to hidden.
type structuralDefaults struct {
	bottom, top, left, right bool
}

func scanAxes(axes []AxisInfo) structuralDefaults {
	var d structuralDefaults
	for _, ax := range axes {
		if ax.Horizontal {
			if ax.Opposite {
				d.top = true
			} else {
				d.bottom = true
			}
		} else {
			if ax.Opposite {
				d.right = true
			} else {
				d.left = true
			}
		}
	}
	return d
}

func (d structuralDefaults) forFace(f Face) bool {
	switch f {
	case Bottom:
		return d.bottom
	case Top:
		return d.top
	case Left:
		return d.left
	case Right:
		return d.right
	case Back:
		return true
	default:
		return false
	}
}

// cuboid is the extruded plot volume before projection: the plot rectangle
// at z=0 through z=depth.
type cuboid struct {
	xm, xp float64
	ym, yp float64
	zm, zp float64
}

func newCuboid(view perspective.View) cuboid {
	return cuboid{
		xm: view.PlotLeft,
		xp: view.PlotLeft + view.PlotWidth,
		ym: view.PlotTop,
		yp: view.PlotTop + view.PlotHeight,
		zm: 0,
		zp: view.Depth,
	}
}

// loop returns the canonical vertex loop of face f, wound so the right-hand
// normal points out of the plot volume. The winding fixes the orientation
// sign; callers must not reorder it.
func (c cuboid) loop(f Face) []geom.Point3D {
	switch f {
	case Bottom:
		return []geom.Point3D{
			{X: c.xm, Y: c.yp, Z: c.zp},
			{X: c.xp, Y: c.yp, Z: c.zp},
			{X: c.xp, Y: c.yp, Z: c.zm},
			{X: c.xm, Y: c.yp, Z: c.zm},
		}
	case Top:
		return []geom.Point3D{
			{X: c.xm, Y: c.ym, Z: c.zm},
			{X: c.xp, Y: c.ym, Z: c.zm},
			{X: c.xp, Y: c.ym, Z: c.zp},
			{X: c.xm, Y: c.ym, Z: c.zp},
		}
	case Left:
		return []geom.Point3D{
			{X: c.xm, Y: c.ym, Z: c.zm},
			{X: c.xm, Y: c.ym, Z: c.zp},
			{X: c.xm, Y: c.yp, Z: c.zp},
			{X: c.xm, Y: c.yp, Z: c.zm},
		}
	case Right:
		return []geom.Point3D{
			{X: c.xp, Y: c.ym, Z: c.zp},
			{X: c.xp, Y: c.ym, Z: c.zm},
			{X: c.xp, Y: c.yp, Z: c.zm},
			{X: c.xp, Y: c.yp, Z: c.zp},
		}
	case Front:
		return []geom.Point3D{
			{X: c.xm, Y: c.yp, Z: c.zm},
			{X: c.xp, Y: c.yp, Z: c.zm},
			{X: c.xp, Y: c.ym, Z: c.zm},
			{X: c.xm, Y: c.ym, Z: c.zm},
		}
	default: // Back
		return []geom.Point3D{
			{X: c.xm, Y: c.ym, Z: c.zp},
			{X: c.xp, Y: c.ym, Z: c.zp},
			{X: c.xp, Y: c.yp, Z: c.zp},
			{X: c.xm, Y: c.yp, Z: c.zp},
		}
	}
}

// classify maps a signed projected area onto the orientation classes.
func classify(area float64) int {
	switch {
	case area > orientationMargin:
		return 1
	case area < -orientationMargin:
		return -1
	default:
		return 0
	}
}

// Resolve computes the frame state for the current view: each face's
// options through the layered sources, its orientation from the projected
// winding, the structural visibility defaults from the axis scan, and the
// axis label anchors. autoLabels selects winding-driven edge picking;
// otherwise the fixed default anchors apply. Resolve is pure: equal inputs
// produce equal frames.
func Resolve(view perspective.View, opts Options, axes []AxisInfo, autoLabels bool) *Frame {
	c := newCuboid(view)
	d := scanAxes(axes)

	fr := &Frame{}
	for _, f := range Faces {
		orientation := classify(view.SignedArea(c.loop(f)))
		*fr.At(f) = resolveFace(opts.sources(f), orientation, d.forFace(f))
	}

	if autoLabels {
		fr.Axes = selectEdges(fr, c, view)
	} else {
		fr.Axes = fixedAxes(c, d)
	}
	return fr
}
