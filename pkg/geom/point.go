// Package geom provides geometry value types for pseudo-3D chart rendering.
package geom

// Point3D is a point in chart-local 3D space: x/y in plot pixels, z in
// depth pixels growing away from the viewer.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a projected point on the drawing surface.
type Point2D struct {
	X, Y float64
}

// XY returns the point with the depth component dropped.
func (p Point3D) XY() Point2D {
	return Point2D{p.X, p.Y}
}

// Translate returns p shifted by (dx, dy, dz).
func (p Point3D) Translate(dx, dy, dz float64) Point3D {
	return Point3D{p.X + dx, p.Y + dy, p.Z + dz}
}

// Add returns p offset by v.
func (p Point3D) Add(v Vec3) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p.
func (p Point3D) Sub(other Point3D) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}
