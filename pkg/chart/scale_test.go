package chart

import (
	"math"
	"testing"

	"github.com/plotforge/chart3d/pkg/geom"
)

func fitChart(alpha, beta float64, box [4]float64) *Chart {
	opts := DefaultOptions3D()
	opts.Enabled = true
	opts.Depth = 50
	opts.Alpha, opts.Beta = alpha, beta
	c := New(Config{Options: opts})
	c.SetPlotBox(box[0], box[1], box[2], box[3])
	c.AfterSetChartSize()
	return c
}

func TestScaleExactlyOneAtNullRotation(t *testing.T) {
	// An unrotated cuboid projects onto exactly the plot rectangle, so
	// no edge overflows and the scale must not move at all.
	c := fitChart(0, 0, [4]float64{0, 0, 100, 100})
	if got := c.Scale(); got != 1 {
		t.Errorf("scale = %v, want exactly 1", got)
	}
}

func TestScaleQuarterTurn(t *testing.T) {
	// At beta=90 the plot's left and right edges swing to the depth
	// axis; the top and bottom overflow symmetrically and the fit lands
	// on 1225/1250.
	c := fitChart(0, 90, [4]float64{0, 0, 100, 100})
	if got := c.Scale(); !near(got, 0.98) {
		t.Errorf("scale = %v, want 0.98", got)
	}
}

func TestScaleOverflowRatios(t *testing.T) {
	tests := []struct {
		name        string
		alpha, beta float64
		box         [4]float64
		want        float64
	}{
		{"stock view", 15, 15, [4]float64{0, 0, 100, 100}, 0.8650843372105599},
		{"steep tilt and turn", 45, 30, [4]float64{0, 0, 100, 100}, 0.7448571549927284},
		{"offset plot keeps the top ratio positive", 10, 0, [4]float64{0, 40, 100, 100}, 0.9399214662300861},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fitChart(tt.alpha, tt.beta, tt.box)
			if got := c.Scale(); !near(got, tt.want) {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleNeverExceedsOne(t *testing.T) {
	for _, angles := range [][2]float64{{0, 0}, {15, 15}, {90, 0}, {0, 270}, {200, 310}, {359, 181}} {
		c := fitChart(angles[0], angles[1], [4]float64{0, 0, 100, 100})
		if s := c.Scale(); s > 1 || math.IsNaN(s) {
			t.Errorf("alpha=%v beta=%v: scale = %v, want <= 1", angles[0], angles[1], s)
		}
	}
}

func TestScaleIdempotent(t *testing.T) {
	c := fitChart(45, 30, [4]float64{0, 0, 100, 100})
	first := c.Scale()
	c.AfterSetChartSize()
	if second := c.Scale(); second != first {
		t.Errorf("refit changed the scale: %v then %v", first, second)
	}
}

func TestScaleResetsOnRefit(t *testing.T) {
	c := fitChart(60, 0, [4]float64{0, 0, 100, 100})
	if c.Scale() >= 1 {
		t.Fatalf("rotated scale = %v, want < 1", c.Scale())
	}
	c.Options.Alpha = 0
	c.AfterSetChartSize()
	if got := c.Scale(); got != 1 {
		t.Errorf("scale after returning to null rotation = %v, want exactly 1", got)
	}
}

func TestScaleFitDisabled(t *testing.T) {
	opts := DefaultOptions3D()
	opts.Enabled = true
	opts.Depth = 50
	opts.Alpha = 60
	opts.FitToPlot = false
	c := New(Config{Options: opts})
	c.SetPlotBox(0, 0, 100, 100)
	c.AfterSetChartSize()
	if got := c.Scale(); got != 1 {
		t.Errorf("scale with fitting off = %v, want 1", got)
	}
}

func TestScaleDegeneratePlot(t *testing.T) {
	// A zero-size plot collapses the fit ratio; the result must stay
	// finite and the projection then treats a non-positive scale as
	// neutral.
	c := fitChart(30, 0, [4]float64{0, 0, 0, 0})
	s := c.Scale()
	if math.IsNaN(s) || s < 0 || s > 1 {
		t.Fatalf("scale = %v, want a finite value in [0, 1]", s)
	}
	p := c.View().ProjectOne(geom.Point3D{X: 10, Y: 10, Z: 0}, true)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Errorf("projection with degenerate scale = %v, want finite", p)
	}
}
