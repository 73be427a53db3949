package render

import "github.com/plotforge/chart3d/pkg/geom"

// Tween interpolates a flat numeric state between two keyframes. The host
// drives it with a progress value: below 1 the components blend linearly,
// at 1 the end state is returned exactly.
type Tween struct {
	Start []float64
	End   []float64
}

// At returns the state at progress pos. Mismatched keyframe lengths cannot
// blend and resolve to the end state.
func (t Tween) At(pos float64) []float64 {
	if pos >= 1 || len(t.Start) != len(t.End) {
		out := make([]float64, len(t.End))
		copy(out, t.End)
		return out
	}
	out := make([]float64, len(t.End))
	for i := range t.End {
		out[i] = pos*t.End[i] + (1-pos)*t.Start[i]
	}
	return out
}

// MatrixTween animates a 2D affine transform. Zero-value keyframes stand in
// for the identity, matching how untransformed elements animate.
type MatrixTween struct {
	Start geom.Matrix
	End   geom.Matrix
}

// At returns the transform at progress pos.
func (t MatrixTween) At(pos float64) geom.Matrix {
	start, end := t.Start, t.End
	if start == (geom.Matrix{}) {
		start = geom.Identity()
	}
	if end == (geom.Matrix{}) {
		end = geom.Identity()
	}
	return start.Lerp(end, pos)
}
