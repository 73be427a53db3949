package chart

// Flat and 3D charts fork on a few host behaviors. Each fork is a small
// strategy chosen once in New, so no method needs to branch on the mode.

// PlotBoundsChecker decides whether a plot-relative point belongs to the
// plot area.
type PlotBoundsChecker interface {
	InsidePlot(c *Chart, x, y float64) bool
}

// SeriesRenderOrder arranges series for drawing.
type SeriesRenderOrder interface {
	RenderOrder(series []*Series) []*Series
}

// ClassNameProvider contributes the chart's styling class.
type ClassNameProvider interface {
	ClassName() string
}

// planeBounds is the flat-chart rectangle test.
type planeBounds struct{}

func (planeBounds) InsidePlot(c *Chart, x, y float64) bool {
	return x >= 0 && x <= c.plotWidth && y >= 0 && y <= c.plotHeight
}

// volumeBounds accepts every point: projected 3D geometry may land outside
// the flat plot rectangle and still belong to the scene.
type volumeBounds struct{}

func (volumeBounds) InsidePlot(*Chart, float64, float64) bool { return true }

// naturalOrder draws series in index order.
type naturalOrder struct{}

func (naturalOrder) RenderOrder(series []*Series) []*Series {
	out := make([]*Series, len(series))
	copy(out, series)
	return out
}

// depthOrder draws series back to front, so the deepest layer paints first.
type depthOrder struct{}

func (depthOrder) RenderOrder(series []*Series) []*Series {
	out := make([]*Series, len(series))
	for i, s := range series {
		out[len(series)-1-i] = s
	}
	return out
}

type classFlat struct{}

func (classFlat) ClassName() string { return "" }

type class3D struct{}

func (class3D) ClassName() string { return "chart-3d" }
