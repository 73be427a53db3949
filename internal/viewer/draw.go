package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/plotforge/chart3d/pkg/geom"
	"github.com/plotforge/chart3d/pkg/perspective"
	"github.com/plotforge/chart3d/pkg/render"
)

// draw paints the current scene into the window.
func (v *Viewer) draw() error {
	v.win.Clear(v.background.R, v.background.G, v.background.B, v.background.A)
	return drawShapes(v.win.Renderer(), v.chart.View(), v.sink.Snapshot())
}

// drawShapes projects the polyhedra and fills each visible face as a
// triangle fan, back to front.
func drawShapes(ren *sdl.Renderer, view perspective.View, shapes []render.Polyhedron) error {
	for _, f := range render.DrawList(view, shapes) {
		c, err := render.RGBA(f.Fill)
		if err != nil || c.A == 0 {
			continue
		}
		col := sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}

		verts := make([]sdl.Vertex, 0, (len(f.Outline)-2)*3)
		for i := 1; i+1 < len(f.Outline); i++ {
			verts = append(verts,
				vertex(f.Outline[0], col),
				vertex(f.Outline[i], col),
				vertex(f.Outline[i+1], col),
			)
		}
		if err := ren.RenderGeometry(nil, verts, nil); err != nil {
			return fmt.Errorf("rendering %s: %w", f.Group, err)
		}
	}
	return nil
}

func vertex(p geom.Point2D, c sdl.Color) sdl.Vertex {
	return sdl.Vertex{
		Position: sdl.FPoint{X: float32(p.X), Y: float32(p.Y)},
		Color:    c,
	}
}
