// Package frame resolves the six-face bounding frame drawn around a 3D
// chart's plot volume: per-face size, color and visibility through the
// layered option sources, viewer-relative orientation from the projected
// winding, axis label anchor edges, and the renderable slab geometry.
package frame

// Face identifies one of the six cuboid faces.
type Face int

const (
	Bottom Face = iota
	Top
	Left
	Right
	Front
	Back
)

// Faces lists all six faces in resolution order.
var Faces = [6]Face{Bottom, Top, Left, Right, Front, Back}

// String returns the lowercase face name.
func (f Face) String() string {
	switch f {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Opposite returns the face paired with f across the plot volume.
func (f Face) Opposite() Face {
	switch f {
	case Bottom:
		return Top
	case Top:
		return Bottom
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	default:
		return Front
	}
}

// Visibility is the tri-state visibility option of a face.
type Visibility int

const (
	// VisibilityUnset means the option carries no value and the resolver
	// falls through to the next source.
	VisibilityUnset Visibility = iota
	// VisibilityShown and VisibilityHidden force the face on or off.
	VisibilityShown
	VisibilityHidden
	// VisibilityAuto shows the face only while it sits behind the plot
	// volume, its inner side turned toward the viewer.
	VisibilityAuto
	// VisibilityDefault explicitly requests the structural default
	// derived from the chart's axes. Unlike VisibilityUnset it stops the
	// source scan, shadowing any outer source.
	VisibilityDefault
)

// String returns the option value name.
func (v Visibility) String() string {
	switch v {
	case VisibilityUnset:
		return "unset"
	case VisibilityShown:
		return "shown"
	case VisibilityHidden:
		return "hidden"
	case VisibilityAuto:
		return "auto"
	case VisibilityDefault:
		return "default"
	default:
		return "unknown"
	}
}
