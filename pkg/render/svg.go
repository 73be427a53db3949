package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
)

// SVG is a document sink: it accumulates polyhedron updates and writes a
// standalone SVG file. As a one-shot writer it has no animation timeline,
// so animated updates apply immediately.
type SVG struct {
	Width      int
	Height     int
	Background string

	view   perspective.View
	shapes map[string]Polyhedron
	order  []string
}

// NewSVG returns a document sink of the given pixel size projecting through
// view.
func NewSVG(width, height int, view perspective.View) *SVG {
	return &SVG{
		Width:  width,
		Height: height,
		view:   view,
		shapes: make(map[string]Polyhedron),
	}
}

// SetView replaces the projection context used when writing.
func (s *SVG) SetView(view perspective.View) {
	s.view = view
}

// Update stores the latest state of a shape.
func (s *SVG) Update(p Polyhedron, _ UpdateMode) {
	if _, ok := s.shapes[p.Name]; !ok {
		s.order = append(s.order, p.Name)
	}
	s.shapes[p.Name] = p
}

// WriteTo writes the accumulated scene as an SVG document. Shape groups are
// ordered back to front by z-index hint and mean projected depth; faces
// within a group are culled and depth sorted the same way.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		s.Width, s.Height, s.Width, s.Height)
	if s.Background != "" && s.Background != None {
		fmt.Fprintf(&buf, "  <rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", s.Width, s.Height, s.Background)
	}

	for _, name := range s.shapeOrder() {
		p := s.shapes[name]
		faces := DrawList(s.view, []Polyhedron{p})
		if len(faces) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  <g class=\"%s\">\n", p.Name)
		for _, f := range faces {
			fill := f.Fill
			if fill == "" {
				fill = None
			}
			fmt.Fprintf(&buf, "    <path d=\"%s\" fill=\"%s\" class=\"%s\"/>\n", pathData(f.Outline), fill, f.Class)
		}
		fmt.Fprintf(&buf, "  </g>\n")
	}

	fmt.Fprintf(&buf, "</svg>\n")
	return buf.WriteTo(w)
}

// shapeOrder sorts shape names back to front for document order painting.
func (s *SVG) shapeOrder() []string {
	type depthed struct {
		name   string
		zIndex float64
		depth  float64
	}
	list := make([]depthed, 0, len(s.order))
	for _, name := range s.order {
		p := s.shapes[name]
		var pts []geom.Point3D
		for _, f := range p.Faces {
			if f.Enabled {
				pts = append(pts, s.view.Project(f.Vertices, true)...)
			}
		}
		list = append(list, depthed{name: name, zIndex: p.ZIndex, depth: geom.MeanDepth(pts)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].zIndex != list[j].zIndex {
			return list[i].zIndex < list[j].zIndex
		}
		return list[i].depth > list[j].depth
	})
	out := make([]string, len(list))
	for i, d := range list {
		out[i] = d.name
	}
	return out
}

// pathData renders an outline as an SVG path string.
func pathData(outline []geom.Point2D) string {
	var b bytes.Buffer
	for i, p := range outline {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %.2f %.2f ", cmd, p.X, p.Y)
	}
	b.WriteString("Z")
	return b.String()
}
