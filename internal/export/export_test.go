package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotforge/chart3d/internal/config"
)

func testConfig(t *testing.T, format string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Format = format
	cfg.Output.Path = filepath.Join(t.TempDir(), "chart."+format)
	return cfg
}

func TestExportSVGFile(t *testing.T) {
	cfg := testConfig(t, "svg")

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400"`) {
		t.Error("missing svg root element with chart dimensions")
	}
	if !strings.Contains(doc, `<rect width="600" height="400" fill="#ffffff"/>`) {
		t.Error("missing background rect")
	}

	// The stock 15/15 view shows the three walls behind the plot volume.
	for _, want := range []string{"frame-bottom", "frame-left", "frame-back"} {
		if !strings.Contains(doc, `class="`+want+`"`) {
			t.Errorf("missing group %s", want)
		}
	}
	for _, hidden := range []string{"frame-top", "frame-right", "frame-front"} {
		if strings.Contains(doc, hidden) {
			t.Errorf("unexpected group %s for hidden face", hidden)
		}
	}

	if !strings.Contains(doc, `fill="#e0e0e0"`) {
		t.Error("missing configured frame color on main quads")
	}
}

func TestExportPNGFile(t *testing.T) {
	cfg := testConfig(t, "png")

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 600 || got.Dy() != 400 {
		t.Errorf("image size = %dx%d, want 600x400", got.Dx(), got.Dy())
	}

	at := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}

	// The chart corner lies outside every slab and keeps the background.
	if got, want := at(0, 0), (color.RGBA{R: 255, G: 255, B: 255, A: 255}); got != want {
		t.Errorf("corner pixel = %v, want background %v", got, want)
	}
	// The plot center sits in front of the back wall's main quad.
	if got, want := at(310, 200), (color.RGBA{R: 224, G: 224, B: 224, A: 255}); got != want {
		t.Errorf("plot center pixel = %v, want frame color %v", got, want)
	}
}

func TestExportFlatChart(t *testing.T) {
	cfg := testConfig(t, "svg")
	cfg.View.Enabled = false

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, "</svg>") {
		t.Error("flat chart should still produce a complete document")
	}
	if strings.Contains(doc, "frame-") {
		t.Error("flat chart must not draw frame slabs")
	}
}

func TestExportCreatesOutputDir(t *testing.T) {
	cfg := testConfig(t, "svg")
	cfg.Output.Path = filepath.Join(t.TempDir(), "nested", "deep", "chart.svg")
	cfg.Chart.Series = []config.SeriesConfig{
		{Name: "coal", Stack: "fossil"},
		{Name: "wind"},
	}

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(cfg.Output.Path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestExportRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t, "svg")
	cfg.Frame.Bottom.Color = "not-a-color"

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unparseable frame color")
	}
}
