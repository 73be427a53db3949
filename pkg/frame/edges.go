package frame

import (
	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
)

// validEdge reports whether the boundary between two adjacent faces can
// carry axis labels: exactly one of the faces shows, or both show with
// opposite orientation so the boundary reads as a silhouette crease.
func validEdge(a, b ResolvedFace) bool {
	if a.Visible != b.Visible {
		return true
	}
	return a.Visible && b.Visible && a.FrontFacing() != b.FrontFacing()
}

// screenAxis selects which projected coordinate pickEdge compares.
type screenAxis int

const (
	alongX screenAxis = iota
	alongY
)

// pickEdge chooses the candidate whose projection lies extreme along the
// given screen axis: sign +1 maximizes, -1 minimizes, ties prefer the edge
// nearer the viewer. A single candidate wins unconditionally, without
// projecting; no candidate yields nil.
func pickEdge(view perspective.View, candidates []Edge, axis screenAxis, sign float64) *Edge {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		e := candidates[0]
		return &e
	}

	pts := make([]geom.Point3D, len(candidates))
	for i, e := range candidates {
		pts[i] = e.Pos
	}
	projected := view.Project(pts, true)

	coord := func(p geom.Point3D) float64 {
		if axis == alongY {
			return p.Y
		}
		return p.X
	}

	best := 0
	for i := 1; i < len(projected); i++ {
		cur, top := sign*coord(projected[i]), sign*coord(projected[best])
		if cur > top || (cur == top && projected[i].Z < projected[best].Z) {
			best = i
		}
	}
	e := candidates[best]
	return &e
}

// selectEdges picks label anchors from the faces' visibility and
// orientation. Each axis side draws its candidates from the face pairs that
// could border empty space, then keeps the one projecting outermost on the
// relevant screen axis.
func selectEdges(fr *Frame, c cuboid, view perspective.View) Axes {
	midY := (c.ym + c.yp) / 2
	midX := (c.xm + c.xp) / 2
	midZ := (c.zm + c.zp) / 2

	var yEdges []Edge
	addY := func(side, depth ResolvedFace, x, z float64, dir geom.Vec3) {
		if validEdge(side, depth) {
			yEdges = append(yEdges, Edge{Pos: geom.Point3D{X: x, Y: midY, Z: z}, Dir: dir})
		}
	}
	addY(fr.Left, fr.Front, c.xm, c.zm, geom.Vec3{X: -1})
	addY(fr.Left, fr.Back, c.xm, c.zp, geom.Vec3{X: -1})
	addY(fr.Right, fr.Front, c.xp, c.zm, geom.Vec3{X: 1})
	addY(fr.Right, fr.Back, c.xp, c.zp, geom.Vec3{X: 1})

	var xBottom, xTop []Edge
	if validEdge(fr.Bottom, fr.Front) {
		xBottom = append(xBottom, Edge{Pos: geom.Point3D{X: midX, Y: c.yp, Z: c.zm}, Dir: geom.Vec3{Y: 1}})
	}
	if validEdge(fr.Bottom, fr.Back) {
		xBottom = append(xBottom, Edge{Pos: geom.Point3D{X: midX, Y: c.yp, Z: c.zp}, Dir: geom.Vec3{Y: 1}})
	}
	if validEdge(fr.Top, fr.Front) {
		xTop = append(xTop, Edge{Pos: geom.Point3D{X: midX, Y: c.ym, Z: c.zm}, Dir: geom.Vec3{Y: -1}})
	}
	if validEdge(fr.Top, fr.Back) {
		xTop = append(xTop, Edge{Pos: geom.Point3D{X: midX, Y: c.ym, Z: c.zp}, Dir: geom.Vec3{Y: -1}})
	}

	var zBottom, zTop []Edge
	if validEdge(fr.Bottom, fr.Left) {
		zBottom = append(zBottom, Edge{Pos: geom.Point3D{X: c.xm, Y: c.yp, Z: midZ}, Dir: geom.Vec3{X: -1}})
	}
	if validEdge(fr.Bottom, fr.Right) {
		zBottom = append(zBottom, Edge{Pos: geom.Point3D{X: c.xp, Y: c.yp, Z: midZ}, Dir: geom.Vec3{X: 1}})
	}
	if validEdge(fr.Top, fr.Left) {
		zTop = append(zTop, Edge{Pos: geom.Point3D{X: c.xm, Y: c.ym, Z: midZ}, Dir: geom.Vec3{X: -1}})
	}
	if validEdge(fr.Top, fr.Right) {
		zTop = append(zTop, Edge{Pos: geom.Point3D{X: c.xp, Y: c.ym, Z: midZ}, Dir: geom.Vec3{X: 1}})
	}

	return Axes{
		YLeft:   pickEdge(view, yEdges, alongX, -1),
		YRight:  pickEdge(view, yEdges, alongX, 1),
		XBottom: pickEdge(view, xBottom, alongY, 1),
		XTop:    pickEdge(view, xTop, alongY, -1),
		ZBottom: pickEdge(view, zBottom, alongY, 1),
		ZTop:    pickEdge(view, zTop, alongY, -1),
	}
}

// fixedAxes returns the legacy anchors used when the label position is not
// "auto": y labels at the front corners, x labels at the front top and
// bottom, z labels on whichever vertical side the structural defaults leave
// free of the y labels.
func fixedAxes(c cuboid, d structuralDefaults) Axes {
	midY := (c.ym + c.yp) / 2
	midX := (c.xm + c.xp) / 2
	midZ := (c.zm + c.zp) / 2

	zSideX := c.xm
	zDir := geom.Vec3{X: -1}
	if d.left {
		zSideX = c.xp
		zDir = geom.Vec3{X: 1}
	}

	return Axes{
		YLeft:   &Edge{Pos: geom.Point3D{X: c.xm, Y: midY, Z: c.zm}, Dir: geom.Vec3{X: -1}},
		YRight:  &Edge{Pos: geom.Point3D{X: c.xp, Y: midY, Z: c.zm}, Dir: geom.Vec3{X: 1}},
		XTop:    &Edge{Pos: geom.Point3D{X: midX, Y: c.ym, Z: c.zm}, Dir: geom.Vec3{Y: -1}},
		XBottom: &Edge{Pos: geom.Point3D{X: midX, Y: c.yp, Z: c.zm}, Dir: geom.Vec3{Y: 1}},
		ZTop:    &Edge{Pos: geom.Point3D{X: zSideX, Y: c.ym, Z: midZ}, Dir: zDir},
		ZBottom: &Edge{Pos: geom.Point3D{X: zSideX, Y: c.yp, Z: midZ}, Dir: zDir},
	}
}
