// Package render models the drawing side of the 3D pipeline: polyhedron
// shapes handed over by the frame builder, paint handling, transition
// tweens and the sinks that turn shapes into SVG or raster output.
package render

import (
	"sort"

	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
)

// Shading classes carried by polyhedron faces. Sinks that style via CSS can
// hook them; the baked Fill already includes the matching brightness shift.
const (
	ClassMain = "main"
	ClassTop  = "top"
	ClassSide = "side"
)

// Face is one planar quad of a polyhedron. The vertex winding is
// significant: sinks cull faces whose projected loop runs counter to the
// visible side, so reordering vertices flips which side shows.
type Face struct {
	Vertices []geom.Point3D
	Fill     string
	Class    string
	Enabled  bool
}

// Polyhedron is a named group of faces drawn as one unit.
type Polyhedron struct {
	Name   string
	ZIndex float64
	Faces  []Face
}

// Lerp blends the polyhedron's vertex coordinates toward target: below 1
// the loops interpolate linearly, at 1 and beyond the target is returned
// exactly. Shapes whose face or vertex counts differ cannot tween and snap
// to the target immediately. Fill, class and enabled state always come from
// the target.
func (p Polyhedron) Lerp(target Polyhedron, pos float64) Polyhedron {
	if pos >= 1 || len(p.Faces) != len(target.Faces) {
		return target
	}
	out := target
	out.Faces = make([]Face, len(target.Faces))
	for i, tf := range target.Faces {
		pf := p.Faces[i]
		out.Faces[i] = tf
		if len(pf.Vertices) != len(tf.Vertices) {
			continue
		}
		verts := make([]geom.Point3D, len(tf.Vertices))
		for j, tv := range tf.Vertices {
			pv := pf.Vertices[j]
			verts[j] = geom.Point3D{
				X: pos*tv.X + (1-pos)*pv.X,
				Y: pos*tv.Y + (1-pos)*pv.Y,
				Z: pos*tv.Z + (1-pos)*pv.Z,
			}
		}
		out.Faces[i].Vertices = verts
	}
	return out
}

// ProjectedFace is a face after projection, culling and depth sorting,
// ready to paint.
type ProjectedFace struct {
	Outline []geom.Point2D
	Fill    string
	Class   string
	Group   string

	zIndex float64
	depth  float64
}

// DrawList projects the polyhedra through view and returns the faces a
// painter should draw, back to front. Faces are dropped when disabled or
// when their projected winding shows the hidden side; the survivors sort by
// z-index hint first and mean projected depth second.
func DrawList(view perspective.View, polyhedra []Polyhedron) []ProjectedFace {
	var list []ProjectedFace
	for _, p := range polyhedra {
		for _, f := range p.Faces {
			if !f.Enabled || len(f.Vertices) < 3 {
				continue
			}
			projected := view.Project(f.Vertices, true)
			outline := make([]geom.Point2D, len(projected))
			for i, v := range projected {
				outline[i] = v.XY()
			}
			if geom.Area(outline) <= 0 {
				continue
			}
			list = append(list, ProjectedFace{
				Outline: outline,
				Fill:    f.Fill,
				Class:   f.Class,
				Group:   p.Name,
				zIndex:  p.ZIndex,
				depth:   geom.MeanDepth(projected),
			})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].zIndex != list[j].zIndex {
			return list[i].zIndex < list[j].zIndex
		}
		return list[i].depth > list[j].depth
	})
	return list
}
