package chart

import (
	"math"

	"github.com/plotforge/chart3d/pkg/geom"
)

// nearZero guards the fit ratios against division blow-ups.
const nearZero = 1e-9

// computeScale fits the extruded plot cuboid's projection into the plot
// rectangle. The eight cuboid corners are projected with scaling disabled,
// their bounding box is compared against the plot edges, and each
// overflowing edge tightens the result. The scale never exceeds 1; an edge
// whose ratio would divide by a near-zero denominator contributes nothing.
func (c *Chart) computeScale(depth float64) float64 {
	view := c.View()

	plotLeft := c.plotLeft
	plotRight := c.plotLeft + c.plotWidth
	plotTop := c.plotTop
	plotBottom := c.plotTop + c.plotHeight
	originX := plotLeft + c.plotWidth/2
	originY := plotTop + c.plotHeight/2

	corners := []geom.Point3D{
		{X: plotLeft, Y: plotTop, Z: 0},
		{X: plotLeft, Y: plotTop, Z: depth},
		{X: plotRight, Y: plotTop, Z: 0},
		{X: plotRight, Y: plotTop, Z: depth},
		{X: plotLeft, Y: plotBottom, Z: 0},
		{X: plotLeft, Y: plotBottom, Z: depth},
		{X: plotRight, Y: plotBottom, Z: 0},
		{X: plotRight, Y: plotBottom, Z: depth},
	}

	bbox := geom.NewBBox()
	for _, p := range view.Project(corners, false) {
		bbox.Extend(p.XY())
	}

	scale := 1.0
	tighten := func(ratio float64) {
		scale = math.Min(scale, ratio)
	}

	if plotLeft > bbox.MinX {
		if d := bbox.MinX + originX; math.Abs(d) > nearZero {
			tighten(1 - math.Mod(math.Abs((plotLeft+originX)/d), 1))
		}
	}
	if plotRight < bbox.MaxX {
		if d := bbox.MaxX - originX; math.Abs(d) > nearZero {
			tighten(math.Abs((plotRight - originX) / d))
		}
	}
	// The top edge branches on the sign of the projected minimum rather
	// than on overflow alone; the two ratio forms are not interchangeable.
	if bbox.MinY < 0 {
		if d := -bbox.MinY + plotTop + originY; math.Abs(d) > nearZero {
			tighten(math.Abs((plotTop + originY) / d))
		}
	} else if bbox.MinY < plotTop {
		if d := bbox.MinY + originY; math.Abs(d) > nearZero {
			tighten(1 - math.Mod(math.Abs((plotTop+originY)/d), 1))
		}
	}
	if bbox.MaxY > plotBottom {
		if d := bbox.MaxY - originY; math.Abs(d) > nearZero {
			tighten(math.Abs((plotBottom - originY) / d))
		}
	}
	return scale
}
