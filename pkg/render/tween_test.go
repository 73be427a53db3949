package render

import (
	"math"
	"testing"

	"github.com/plotforge/chart3d/pkg/geom"
)

func TestTweenAt(t *testing.T) {
	tw := Tween{Start: []float64{0, 10}, End: []float64{10, 30}}

	mid := tw.At(0.5)
	if mid[0] != 5 || mid[1] != 20 {
		t.Errorf("At(0.5) = %v, want [5 20]", mid)
	}

	end := tw.At(1)
	if end[0] != 10 || end[1] != 30 {
		t.Errorf("At(1) = %v, want the exact end state", end)
	}
}

func TestTweenMismatchedLengthsSnap(t *testing.T) {
	tw := Tween{Start: []float64{1}, End: []float64{2, 3}}
	got := tw.At(0.5)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("At(0.5) with mismatched keyframes = %v, want [2 3]", got)
	}
}

func TestMatrixTweenMidpoint(t *testing.T) {
	tw := MatrixTween{End: geom.Matrix{3, 0, 0, 3, 40, 60}}
	got := tw.At(0.5)
	want := geom.Matrix{2, 0, 0, 2, 20, 30}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("At(0.5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMatrixTweenSnapsAtOne(t *testing.T) {
	end := geom.Matrix{0.3, 0, 0, 0.7, 11, 13}
	tw := MatrixTween{Start: geom.Identity(), End: end}
	if got := tw.At(1); got != end {
		t.Errorf("At(1) = %v, want the exact target %v", got, end)
	}
}
