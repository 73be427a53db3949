package render

import (
	"errors"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// None is the transparent paint value, the default fill of frame faces that
// resolve without an explicit color.
const None = "none"

// ErrBadPaint reports a paint string that is neither "none" nor a hex
// color.
var ErrBadPaint = errors.New("unrecognized paint value")

// RGBA resolves a paint string to a color. "none" and the empty string are
// fully transparent; otherwise a 3- or 6-digit hex color is expected.
func RGBA(paint string) (color.RGBA, error) {
	if paint == "" || paint == None {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(paint)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadPaint, paint)
	}
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}, nil
}

// Brighten shifts every channel of a hex paint by f of the full scale:
// positive lightens, negative darkens, results clamp to the displayable
// range. Paints that carry no color ("none") and values that fail to parse
// pass through unchanged, so shading never turns a degenerate input into an
// error.
func Brighten(paint string, f float64) string {
	if paint == "" || paint == None {
		return paint
	}
	c, err := colorful.Hex(paint)
	if err != nil {
		return paint
	}
	shifted := colorful.Color{R: c.R + f, G: c.G + f, B: c.B + f}.Clamped()
	return shifted.Hex()
}
