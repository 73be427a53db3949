package frame

import "github.com/plotforge/chart3d/pkg/render"

// FaceOptions configures one face of the frame. Nil size, empty color and
// VisibilityUnset mean "no value here": the resolver keeps scanning the
// remaining sources for that attribute.
type FaceOptions struct {
	Size    *float64
	Color   string
	Visible Visibility
}

// Options is the full frame configuration: per-face overrides plus the
// frame-wide values that close every face's source list.
type Options struct {
	// Frame-wide fallbacks, consulted after the per-face sources.
	Size    *float64
	Color   string
	Visible Visibility

	Bottom FaceOptions
	Top    FaceOptions
	Left   FaceOptions
	Right  FaceOptions
	Front  FaceOptions
	Back   FaceOptions

	// Side is the legacy shorthand that once configured both vertical
	// side faces. It still participates in the left and right source
	// lists, after the face and its opposite but before the frame-wide
	// values.
	Side FaceOptions
}

// Size returns a size option value for literal option construction.
func Size(v float64) *float64 {
	return &v
}

func (o Options) frameWide() FaceOptions {
	return FaceOptions{Size: o.Size, Color: o.Color, Visible: o.Visible}
}

func (o Options) faceOptions(f Face) FaceOptions {
	switch f {
	case Bottom:
		return o.Bottom
	case Top:
		return o.Top
	case Left:
		return o.Left
	case Right:
		return o.Right
	case Front:
		return o.Front
	default:
		return o.Back
	}
}

// sources returns the ordered option sources for face f, nearest first.
func (o Options) sources(f Face) []FaceOptions {
	list := []FaceOptions{o.faceOptions(f), o.faceOptions(f.Opposite())}
	if f == Left || f == Right {
		list = append(list, o.Side)
	}
	return append(list, o.frameWide())
}

// resolveFace merges the option sources attribute by attribute, first
// defined value wins, then fills the defaults: size 1, transparent color,
// and the visibility rules against the face's orientation and structural
// default.
func resolveFace(sources []FaceOptions, orientation int, structuralDefault bool) ResolvedFace {
	var size *float64
	colorVal := ""
	visible := VisibilityUnset
	for _, src := range sources {
		if size == nil && src.Size != nil {
			size = src.Size
		}
		if colorVal == "" && src.Color != "" {
			colorVal = src.Color
		}
		if visible == VisibilityUnset && src.Visible != VisibilityUnset {
			visible = src.Visible
		}
	}

	out := ResolvedFace{
		Size:        1,
		Color:       render.None,
		Orientation: orientation,
		Visible:     structuralDefault,
	}
	if size != nil {
		out.Size = *size
	}
	if colorVal != "" {
		out.Color = colorVal
	}
	switch visible {
	case VisibilityShown:
		out.Visible = true
	case VisibilityHidden:
		out.Visible = false
	case VisibilityAuto:
		out.Visible = orientation > 0
	}
	// VisibilityDefault and VisibilityUnset keep the structural default.
	return out
}
