package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/plotforge/chart3d/pkg/perspective"
)

// Raster rasterizes the accumulated scene into an RGBA image. Like the SVG
// sink it is a one-shot writer, so animated updates apply immediately.
type Raster struct {
	// Background fills the canvas before any face is painted.
	Background color.Color

	width  int
	height int
	view   perspective.View
	shapes map[string]Polyhedron
	order  []string
}

// NewRaster returns a raster sink of the given pixel size projecting
// through view.
func NewRaster(width, height int, view perspective.View) *Raster {
	return &Raster{
		Background: color.White,
		width:      width,
		height:     height,
		view:       view,
		shapes:     make(map[string]Polyhedron),
	}
}

// SetView replaces the projection context used when painting.
func (r *Raster) SetView(view perspective.View) {
	r.view = view
}

// Update stores the latest state of a shape.
func (r *Raster) Update(p Polyhedron, _ UpdateMode) {
	if _, ok := r.shapes[p.Name]; !ok {
		r.order = append(r.order, p.Name)
	}
	r.shapes[p.Name] = p
}

// Image paints the scene back to front and returns the result.
func (r *Raster) Image() (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	scene := make([]Polyhedron, 0, len(r.order))
	for _, name := range r.order {
		scene = append(scene, r.shapes[name])
	}

	ras := vector.NewRasterizer(r.width, r.height)
	for _, f := range DrawList(r.view, scene) {
		c, err := RGBA(f.Fill)
		if err != nil {
			return nil, fmt.Errorf("rasterize %s: %w", f.Group, err)
		}
		if c.A == 0 {
			continue
		}
		ras.Reset(r.width, r.height)
		ras.DrawOp = draw.Over
		for i, p := range f.Outline {
			if i == 0 {
				ras.MoveTo(float32(p.X), float32(p.Y))
			} else {
				ras.LineTo(float32(p.X), float32(p.Y))
			}
		}
		ras.ClosePath()
		ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}
	return dst, nil
}

// EncodePNG paints the scene and writes it as a PNG stream.
func (r *Raster) EncodePNG(w io.Writer) error {
	img, err := r.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
