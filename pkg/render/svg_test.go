package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestSVGWriteTo(t *testing.T) {
	s := NewSVG(200, 150, testView())
	s.Background = "#ffffff"
	s.Update(Polyhedron{
		Name:   "frame-bottom",
		ZIndex: -1000,
		Faces: []Face{
			{Vertices: loopAt(50), Fill: "#404048", Class: ClassTop, Enabled: true},
			{Vertices: reverse(loopAt(50)), Fill: "#404048", Class: ClassTop, Enabled: true},
		},
	}, UpdateSet)
	s.Update(Polyhedron{
		Name:   "frame-back",
		ZIndex: 1000,
		Faces: []Face{
			{Vertices: loopAt(25), Fill: "#202028", Class: ClassMain, Enabled: true},
		},
	}, UpdateSet)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	doc := buf.String()

	if !strings.Contains(doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"200\" height=\"150\"") {
		t.Error("missing svg root element")
	}
	if !strings.Contains(doc, "fill=\"#ffffff\"") {
		t.Error("missing background rect")
	}
	if got := strings.Count(doc, "<path"); got != 2 {
		t.Errorf("document has %d paths, want 2 (one face per group is culled or absent)", got)
	}
	if !strings.Contains(doc, "class=\"frame-bottom\"") || !strings.Contains(doc, "class=\"frame-back\"") {
		t.Error("missing shape group classes")
	}

	// The -1000 z-index group must be painted (appear) first.
	if strings.Index(doc, "frame-bottom") > strings.Index(doc, "frame-back") {
		t.Error("frame-bottom should precede frame-back in document order")
	}
}

func TestSVGSkipsInvisibleShapes(t *testing.T) {
	s := NewSVG(100, 100, testView())
	s.Update(Polyhedron{
		Name:  "hidden",
		Faces: []Face{{Vertices: loopAt(0), Fill: "#111111", Enabled: false}},
	}, UpdateSet)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if strings.Contains(buf.String(), "<g") {
		t.Error("fully culled shapes should not emit a group")
	}
}
