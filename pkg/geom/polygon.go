package geom

// Area returns the signed area of a 2D polygon via the shoelace formula.
// With screen coordinates (y growing downward) a loop that runs clockwise
// on screen yields a positive area.
func Area(points []Point2D) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Normal returns the Newell normal of a 3D polygon. The result follows the
// right-hand rule over the vertex order and is not normalized.
func Normal(points []Point3D) Vec3 {
	var n Vec3
	for i, p := range points {
		q := points[(i+1)%len(points)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}

// MeanDepth returns the average z of the points, used for painter ordering.
func MeanDepth(points []Point3D) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Z
	}
	return sum / float64(len(points))
}
