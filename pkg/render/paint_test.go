package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		name  string
		paint string
		want  color.RGBA
	}{
		{"six digit", "#ff0000", color.RGBA{R: 255, A: 255}},
		{"three digit", "#abc", color.RGBA{R: 170, G: 187, B: 204, A: 255}},
		{"none", "none", color.RGBA{}},
		{"empty", "", color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBA(tt.paint)
			if err != nil {
				t.Fatalf("RGBA(%q) returned error: %v", tt.paint, err)
			}
			if got != tt.want {
				t.Errorf("RGBA(%q) = %v, want %v", tt.paint, got, tt.want)
			}
		})
	}
}

func TestRGBARejectsUnknownPaint(t *testing.T) {
	_, err := RGBA("blue")
	if !errors.Is(err, ErrBadPaint) {
		t.Errorf("RGBA(\"blue\") error = %v, want ErrBadPaint", err)
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name  string
		paint string
		f     float64
		want  string
	}{
		{"lighten black", "#000000", 0.1, "#1a1a1a"},
		{"darken gray", "#808080", -0.1, "#676767"},
		{"clamp high", "#ffffff", 0.1, "#ffffff"},
		{"clamp low", "#000000", -0.1, "#000000"},
		{"none passes through", "none", 0.1, "none"},
		{"garbage passes through", "chartreuse", 0.1, "chartreuse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brighten(tt.paint, tt.f); got != tt.want {
				t.Errorf("Brighten(%q, %v) = %q, want %q", tt.paint, tt.f, got, tt.want)
			}
		})
	}
}
