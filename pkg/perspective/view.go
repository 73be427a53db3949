// Package perspective maps chart-local 3D coordinates onto the 2D drawing
// surface: rotation about the plot center, a distance-based perspective
// divide and the fit-to-plot scale.
package perspective

import (
	"math"

	"github.com/plotforge/chart3d/pkg/geom"
)

// nearZero guards divisions against degenerate view geometry.
const nearZero = 1e-9

// View is the projection context for one render cycle. It is a plain value:
// callers rebuild or copy it instead of mutating a shared instance.
type View struct {
	// Alpha tilts the scene about the horizontal axis, Beta rotates it
	// about the vertical axis. Both are in degrees.
	Alpha float64
	Beta  float64

	// Depth is the z extrusion of the plot volume in pixels; the front
	// plane sits at z=0 and the back plane at z=Depth.
	Depth float64

	// ViewDistance controls perspective strength. The effective camera
	// distance is Depth*ViewDistance; zero disables the perspective
	// divide and the projection turns orthographic.
	ViewDistance float64

	// Plot rectangle in absolute chart pixels.
	PlotLeft   float64
	PlotTop    float64
	PlotWidth  float64
	PlotHeight float64

	// Scale is the fit-to-plot shrink factor applied about the view
	// origin when projecting with applyScale. Zero or negative values
	// fall back to 1.
	Scale float64

	// Inverted swaps the x and y axes for horizontal chart layouts.
	Inverted bool
}

// Origin returns the rotation origin: the plot center at half depth.
func (v View) Origin() geom.Point3D {
	return geom.Point3D{
		X: v.PlotLeft + v.PlotWidth/2,
		Y: v.PlotTop + v.PlotHeight/2,
		Z: v.Depth / 2,
	}
}

// Distance returns the effective view distance in pixels.
func (v View) Distance() float64 {
	return v.Depth * v.ViewDistance
}

// angles caches the trigonometry of the view rotation. Inverted layouts
// negate both angles, mirroring the swapped axes.
type angles struct {
	sinA, cosA float64
	sinB, cosB float64
}

func (v View) rotation() angles {
	sign := 1.0
	if v.Inverted {
		sign = -1
	}
	a := sign * v.Alpha * math.Pi / 180
	b := sign * v.Beta * math.Pi / 180
	return angles{
		sinA: math.Sin(a), cosA: math.Cos(a),
		sinB: math.Sin(b), cosB: math.Cos(b),
	}
}

// rotate applies the beta-then-alpha rotation to origin-relative
// coordinates. Positive beta orbits the viewer toward the box's right side,
// positive alpha lifts the viewer above it; at the stock 15/15 view the
// bottom, left and back faces turn their inner walls toward the viewer.
func (an angles) rotate(x, y, z float64) (rx, ry, rz float64) {
	rx = an.cosB*x + an.sinB*z
	ry = an.sinA*an.sinB*x + an.cosA*y - an.cosB*an.sinA*z
	rz = -an.cosA*an.sinB*x + an.sinA*y + an.cosA*an.cosB*z
	return rx, ry, rz
}

// Project maps points from chart-local 3D space to the drawing surface,
// preserving order 1:1. X/Y of the results are screen coordinates; Z is the
// rotated depth, kept for painter ordering and tie-breaks. With applyScale
// the fit-to-plot scale shrinks the result about the view origin; the scale
// fitter itself projects without it so the scale never feeds back into its
// own input.
func (v View) Project(points []geom.Point3D, applyScale bool) []geom.Point3D {
	an := v.rotation()
	origin := v.Origin()
	vd := v.Distance()
	scale := 1.0
	if applyScale && v.Scale > 0 {
		scale = v.Scale
	}

	out := make([]geom.Point3D, len(points))
	for i, p := range points {
		px, py := p.X, p.Y
		if v.Inverted {
			px, py = py, px
		}

		rx, ry, rz := an.rotate(px-origin.X, py-origin.Y, p.Z-origin.Z)

		// Points farther along z shrink toward the origin. A degenerate
		// denominator (the point collapsing onto the camera plane)
		// falls back to a neutral 1 instead of blowing up.
		proj := 1.0
		if vd > 0 && !math.IsInf(vd, 1) {
			denom := rz + origin.Z + vd
			if math.Abs(denom) > nearZero {
				proj = vd / denom
			}
		}

		x := rx*proj*scale + origin.X
		y := ry*proj*scale + origin.Y
		if v.Inverted {
			x, y = y, x
		}
		out[i] = geom.Point3D{X: x, Y: y, Z: rz*scale + origin.Z}
	}
	return out
}

// ProjectOne projects a single point.
func (v View) ProjectOne(p geom.Point3D, applyScale bool) geom.Point3D {
	return v.Project([]geom.Point3D{p}, applyScale)[0]
}

// SignedArea projects the vertex loop and returns its signed screen area in
// square pixels. Under the frame's outward winding convention a positive
// area means the loop's outer side points away from the viewer.
func (v View) SignedArea(vertices []geom.Point3D) float64 {
	if len(vertices) < 3 {
		return 0
	}
	projected := v.Project(vertices, true)
	flat := make([]geom.Point2D, len(projected))
	for i, p := range projected {
		flat[i] = p.XY()
	}
	return geom.Area(flat)
}
