package frame

import (
	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
	"github.com/plotforge/chart3d/pkg/render"
)

// Every face slab is built by the same parameterized path: an outer and an
// inner main quad on the face's axis plus four skirt quads toward the
// neighboring faces. Quads are wound with their right-hand normal pointing
// into the slab so sink-side culling shows exactly the surfaces turned
// toward the viewer.

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// axisOf returns a face's main axis and which end of it the face sits on
// (0 = min, 1 = max). Screen y grows downward, so top is the y minimum.
func axisOf(f Face) (axis, side int) {
	switch f {
	case Left:
		return axisX, 0
	case Right:
		return axisX, 1
	case Top:
		return axisY, 0
	case Bottom:
		return axisY, 1
	case Front:
		return axisZ, 0
	default:
		return axisZ, 1
	}
}

// faceAt is the inverse of axisOf.
func faceAt(axis, side int) Face {
	switch axis {
	case axisX:
		if side == 0 {
			return Left
		}
		return Right
	case axisY:
		if side == 0 {
			return Top
		}
		return Bottom
	default:
		if side == 0 {
			return Front
		}
		return Back
	}
}

// outward returns the unit vector leaving the plot volume through the face
// at (axis, side).
func outward(axis, side int) geom.Vec3 {
	sign := -1.0
	if side == 1 {
		sign = 1
	}
	var v geom.Vec3
	switch axis {
	case axisX:
		v.X = sign
	case axisY:
		v.Y = sign
	default:
		v.Z = sign
	}
	return v
}

// extents carries, per axis, the inner plot-volume bounds and the outer
// bounds grown by each visible face's slab size.
type extents struct {
	inner [3][2]float64
	outer [3][2]float64
}

func frameExtents(fr *Frame, c cuboid) extents {
	off := func(rf ResolvedFace) float64 {
		if rf.Visible {
			return rf.Size
		}
		return 0
	}
	var e extents
	e.inner[axisX] = [2]float64{c.xm, c.xp}
	e.inner[axisY] = [2]float64{c.ym, c.yp}
	e.inner[axisZ] = [2]float64{c.zm, c.zp}
	e.outer[axisX] = [2]float64{c.xm - off(fr.Left), c.xp + off(fr.Right)}
	e.outer[axisY] = [2]float64{c.ym - off(fr.Top), c.yp + off(fr.Bottom)}
	e.outer[axisZ] = [2]float64{c.zm - off(fr.Front), c.zp + off(fr.Back)}
	return e
}

// pt assembles a point from per-axis coordinates.
func pt(vals [3]float64) geom.Point3D {
	return geom.Point3D{X: vals[axisX], Y: vals[axisY], Z: vals[axisZ]}
}

// orientQuad winds the loop so its right-hand normal points along want.
// Degenerate quads (zero normal) pass through unchanged.
func orientQuad(quad [4]geom.Point3D, want geom.Vec3) []geom.Point3D {
	loop := []geom.Point3D{quad[0], quad[1], quad[2], quad[3]}
	if geom.Normal(loop).Dot(want) < 0 {
		loop = []geom.Point3D{quad[0], quad[3], quad[2], quad[1]}
	}
	return loop
}

// mainQuad builds the rectangle of the slab at the given main-axis
// coordinate, spanning the chosen bounds on the two cross axes.
func mainQuad(axis int, at float64, bounds *[3][2]float64) [4]geom.Point3D {
	b, c := crossAxes(axis)
	var quad [4]geom.Point3D
	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, bc := range corners {
		var vals [3]float64
		vals[axis] = at
		vals[b] = bounds[b][bc[0]]
		vals[c] = bounds[c][bc[1]]
		quad[i] = pt(vals)
	}
	return quad
}

// skirtQuad builds the trapezoid joining the slab's outer rim to the plot
// volume along the neighbor face at (nAxis, nSide).
func skirtQuad(axis, side, nAxis, nSide int, e extents) [4]geom.Point3D {
	free := freeAxis(axis, nAxis)
	var quad [4]geom.Point3D
	for i, stop := range [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}} {
		// stop[0]: 0 = outer rim, 1 = inner rim; stop[1]: end of the
		// free axis.
		bounds := &e.outer
		mainAt := e.outer[axis][side]
		if stop[0] == 1 {
			bounds = &e.inner
			mainAt = e.inner[axis][side]
		}
		var vals [3]float64
		vals[axis] = mainAt
		vals[nAxis] = bounds[nAxis][nSide]
		vals[free] = bounds[free][stop[1]]
		quad[i] = pt(vals)
	}
	return quad
}

// crossAxes returns the two axes other than a, in x,y,z order.
func crossAxes(a int) (int, int) {
	switch a {
	case axisX:
		return axisY, axisZ
	case axisY:
		return axisX, axisZ
	default:
		return axisX, axisY
	}
}

// freeAxis returns the axis that is neither a nor b.
func freeAxis(a, b int) int {
	for _, ax := range [3]int{axisX, axisY, axisZ} {
		if ax != a && ax != b {
			return ax
		}
	}
	return axisX
}

// quadClass tags a sub-quad by the axis it nominally faces: horizontal
// quads shade brighter, vertical quads off the slab's main axis shade
// darker, main-axis quads keep the face color.
func quadClass(quadAxis, mainAxis int) (class string, shade float64) {
	switch {
	case quadAxis == axisY:
		return render.ClassTop, 0.1
	case quadAxis == mainAxis:
		return render.ClassMain, 0
	default:
		return render.ClassSide, -0.1
	}
}

// buildSlab assembles the six-quad slab for face f.
func buildSlab(f Face, fr *Frame, e extents) render.Polyhedron {
	rf := fr.At(f)
	axis, side := axisOf(f)

	zIndex := 1000.0
	if rf.FrontFacing() {
		zIndex = -1000
	}
	p := render.Polyhedron{
		Name:   "frame-" + f.String(),
		ZIndex: zIndex,
		Faces:  make([]render.Face, 0, 6),
	}

	addQuad := func(quad [4]geom.Point3D, inward geom.Vec3, quadAxis int, enabled bool) {
		class, shade := quadClass(quadAxis, axis)
		fill := rf.Color
		if shade != 0 {
			fill = render.Brighten(fill, shade)
		}
		p.Faces = append(p.Faces, render.Face{
			Vertices: orientQuad(quad, inward),
			Fill:     fill,
			Class:    class,
			Enabled:  enabled,
		})
	}

	out := outward(axis, side)

	// Main pair: the outer quad spans the rim bounds, the inner quad the
	// plot bounds. Into-slab is toward the plot for the outer quad and
	// away from it for the inner one.
	addQuad(mainQuad(axis, e.outer[axis][side], &e.outer), out.Scale(-1), axis, rf.Visible)
	addQuad(mainQuad(axis, e.inner[axis][side], &e.inner), out, axis, rf.Visible)

	// Skirts close the slab toward each neighbor, but only where that
	// neighbor's own slab is absent.
	for _, nAxis := range [3]int{axisX, axisY, axisZ} {
		if nAxis == axis {
			continue
		}
		for nSide := 0; nSide < 2; nSide++ {
			neighbor := fr.At(faceAt(nAxis, nSide))
			enabled := rf.Visible && !neighbor.Visible
			inward := outward(nAxis, nSide).Scale(-1)
			addQuad(skirtQuad(axis, side, nAxis, nSide, e), inward, nAxis, enabled)
		}
	}
	return p
}

// BuildShapes assembles the renderable slabs for all six faces. Sub-quads
// keep their winding so sink-side culling shows only surfaces turned toward
// the viewer; slabs behind the plot volume carry a z-index hint that layers
// them under the series, the rest above.
func BuildShapes(fr *Frame, view perspective.View) []render.Polyhedron {
	c := newCuboid(view)
	e := frameExtents(fr, c)
	order := [6]Face{Bottom, Top, Left, Right, Back, Front}
	shapes := make([]render.Polyhedron, 0, len(order))
	for _, f := range order {
		shapes = append(shapes, buildSlab(f, fr, e))
	}
	return shapes
}
