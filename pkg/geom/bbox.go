package geom

import "math"

// BBox is an expanding 2D bounding box.
type BBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBBox returns an empty box that any first point will initialize.
func NewBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
}

// Extend grows the box to cover p.
func (b *BBox) Extend(p Point2D) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Empty reports whether no point has been added yet.
func (b BBox) Empty() bool {
	return b.MinX > b.MaxX
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b BBox) Height() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}
