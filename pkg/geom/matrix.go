package geom

// Matrix is a 2D affine transform in SVG component order [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Apply transforms p.
func (m Matrix) Apply(p Point2D) Point2D {
	return Point2D{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Lerp blends m toward to componentwise: at pos values follow
// pos*to + (1-pos)*m, and pos >= 1 returns to exactly so a finished
// transition lands on the target with no rounding residue.
func (m Matrix) Lerp(to Matrix, pos float64) Matrix {
	if pos >= 1 {
		return to
	}
	var out Matrix
	for i := range m {
		out[i] = pos*to[i] + (1-pos)*m[i]
	}
	return out
}
