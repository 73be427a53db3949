package frame

import (
	"testing"

	"github.com/plotforge/chart3d/pkg/geom"
)

func TestValidEdge(t *testing.T) {
	shown := ResolvedFace{Visible: true}
	shownBehind := ResolvedFace{Visible: true, Orientation: 1}
	hidden := ResolvedFace{Visible: false}

	tests := []struct {
		name string
		a, b ResolvedFace
		want bool
	}{
		{"visibility differs", shown, hidden, true},
		{"both hidden", hidden, hidden, false},
		{"both shown, same facing", shown, shown, false},
		{"both shown, opposite facing", shown, shownBehind, true},
		{"hidden pair ignores facing", hidden, ResolvedFace{Orientation: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validEdge(tt.a, tt.b); got != tt.want {
				t.Errorf("validEdge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickEdgeDegeneratePools(t *testing.T) {
	view := testView()

	if got := pickEdge(view, nil, alongX, -1); got != nil {
		t.Errorf("empty pool should pick nothing, got %+v", got)
	}

	only := Edge{Pos: geom.Point3D{X: 0, Y: 50, Z: 0}, Dir: geom.Vec3{X: -1}}
	got := pickEdge(view, []Edge{only}, alongX, -1)
	if got == nil || *got != only {
		t.Errorf("single candidate should win unconditionally, got %+v", got)
	}
}

func TestPickEdgeExtremes(t *testing.T) {
	view := testView()
	left := Edge{Pos: geom.Point3D{X: 0, Y: 50, Z: 0}}
	right := Edge{Pos: geom.Point3D{X: 100, Y: 50, Z: 0}}
	pool := []Edge{right, left}

	if got := pickEdge(view, pool, alongX, -1); got == nil || got.Pos != left.Pos {
		t.Errorf("sign -1 should pick the leftmost projection, got %+v", got)
	}
	if got := pickEdge(view, pool, alongX, 1); got == nil || got.Pos != right.Pos {
		t.Errorf("sign +1 should pick the rightmost projection, got %+v", got)
	}
}

func TestPickEdgeTieBreaksNearer(t *testing.T) {
	view := testView()
	// Both candidates sit on the plot's center line, so they project to
	// the same screen x; the front edge is nearer and must win.
	front := Edge{Pos: geom.Point3D{X: 50, Y: 50, Z: 0}}
	back := Edge{Pos: geom.Point3D{X: 50, Y: 50, Z: 50}}

	got := pickEdge(view, []Edge{back, front}, alongX, 1)
	if got == nil || got.Pos != front.Pos {
		t.Errorf("tie should break toward the nearer edge, got %+v", got)
	}
}

func TestSelectEdgesDefaultScene(t *testing.T) {
	// Structural default scene at null rotation: bottom, left and back
	// shown; top, right and front hidden.
	axes := []AxisInfo{{Horizontal: true}, {}}
	fr := Resolve(testView(), Options{}, axes, true)
	got := fr.Axes

	assertEdge := func(name string, e *Edge, pos geom.Point3D, dir geom.Vec3) {
		t.Helper()
		if e == nil {
			t.Errorf("%s: no edge selected, want %v", name, pos)
			return
		}
		if e.Pos != pos || e.Dir != dir {
			t.Errorf("%s = {%v %v}, want {%v %v}", name, e.Pos, e.Dir, pos, dir)
		}
	}

	// Boundaries between two shown walls have matching facing here and
	// drop out. The y pool keeps left-front and right-back, split by the
	// projected extremes; the x and z pools are left with one candidate.
	assertEdge("y left", got.YLeft, geom.Point3D{X: 0, Y: 50, Z: 0}, geom.Vec3{X: -1})
	assertEdge("y right", got.YRight, geom.Point3D{X: 100, Y: 50, Z: 50}, geom.Vec3{X: 1})
	assertEdge("x bottom", got.XBottom, geom.Point3D{X: 50, Y: 100, Z: 0}, geom.Vec3{Y: 1})
	assertEdge("x top", got.XTop, geom.Point3D{X: 50, Y: 0, Z: 50}, geom.Vec3{Y: -1})
	assertEdge("z bottom", got.ZBottom, geom.Point3D{X: 100, Y: 100, Z: 25}, geom.Vec3{X: 1})
	assertEdge("z top", got.ZTop, geom.Point3D{X: 0, Y: 0, Z: 25}, geom.Vec3{X: -1})
}

func TestSelectEdgesNoCandidates(t *testing.T) {
	hidden := FaceOptions{Visible: VisibilityHidden}
	opts := Options{Bottom: hidden, Top: hidden, Left: hidden, Right: hidden, Front: hidden, Back: hidden}
	fr := Resolve(testView(), opts, nil, true)

	if fr.Axes.YLeft != nil || fr.Axes.YRight != nil ||
		fr.Axes.XTop != nil || fr.Axes.XBottom != nil ||
		fr.Axes.ZTop != nil || fr.Axes.ZBottom != nil {
		t.Errorf("an all-hidden frame has no label edges, got %+v", fr.Axes)
	}
}

func TestFixedAxes(t *testing.T) {
	// Non-auto labeling pins y and x labels to the front corners; z
	// labels take the vertical side the y labels leave free.
	axes := []AxisInfo{{Horizontal: true}, {}}
	fr := Resolve(testView(), Options{}, axes, false)
	got := fr.Axes

	if got.YLeft == nil || got.YLeft.Pos != (geom.Point3D{X: 0, Y: 50, Z: 0}) || got.YLeft.Dir != (geom.Vec3{X: -1}) {
		t.Errorf("y left = %+v, want the front-left corner pointing out", got.YLeft)
	}
	if got.XBottom == nil || got.XBottom.Pos != (geom.Point3D{X: 50, Y: 100, Z: 0}) {
		t.Errorf("x bottom = %+v, want the front bottom edge", got.XBottom)
	}
	// Left is the default-shown side, so z labels move to the right.
	if got.ZTop == nil || got.ZTop.Pos != (geom.Point3D{X: 100, Y: 0, Z: 25}) || got.ZTop.Dir != (geom.Vec3{X: 1}) {
		t.Errorf("z top = %+v, want the right side", got.ZTop)
	}
	if got.ZBottom == nil || got.ZBottom.Pos != (geom.Point3D{X: 100, Y: 100, Z: 25}) {
		t.Errorf("z bottom = %+v, want the right side", got.ZBottom)
	}

	// With opposite axes the defaults flip and z labels return to the
	// left.
	fr = Resolve(testView(), Options{}, []AxisInfo{{Horizontal: true, Opposite: true}, {Opposite: true}}, false)
	if fr.Axes.ZTop == nil || fr.Axes.ZTop.Pos.X != 0 || fr.Axes.ZTop.Dir != (geom.Vec3{X: -1}) {
		t.Errorf("z top = %+v, want the left side when right is default shown", fr.Axes.ZTop)
	}
}
