package defectdoc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mariem115/defectdoc/pkg/compositor"
	"github.com/mariem115/defectdoc/pkg/imgio"
	"github.com/mariem115/defectdoc/pkg/layout"
	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

// createTestImage creates a simple test image with a bright center region
func createTestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > width/3 && x < 2*width/3 && y > height/3 && y < 2*height/3 {
				img.Set(x, y, color.NRGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.NRGBA{64, 64, 64, 255})
			}
		}
	}

	return img
}

func testMeta() types.Annotation {
	return types.Annotation{
		Description:    "Paint run on panel edge",
		ReferenceLabel: "PN-220",
		CreatedAt:      time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	composer := New()
	if composer == nil {
		t.Fatal("New() returned nil")
	}

	if composer.loader == nil {
		t.Error("loader component is nil")
	}
	if composer.compositor == nil {
		t.Error("compositor component is nil")
	}
	if composer.arrows == nil {
		t.Error("overlay renderer component is nil")
	}
}

func TestNewWithConfig(t *testing.T) {
	composer := NewWithConfig(
		imgio.Config{MinImageSize: 10},
		compositor.Config{Format: "webp", DateFormat: "02 Jan 2006"},
	)

	if composer == nil {
		t.Fatal("NewWithConfig() returned nil")
	}
	if composer.loader == nil || composer.compositor == nil || composer.arrows == nil {
		t.Error("components not initialized")
	}
}

func TestComposeToFile(t *testing.T) {
	composer := New()
	source := createTestImage(1200, 800)
	detail := createTestImage(400, 300)
	path := filepath.Join(t.TempDir(), "report.png")

	out, res, err := composer.ComposeToFile(source, detail, verdict.Good, testMeta(), path)
	if err != nil {
		t.Fatalf("ComposeToFile failed: %v", err)
	}
	if out != path {
		t.Errorf("returned path %q, want %q", out, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("composite not written: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written composite undecodable: %v", err)
	}
	if decoded.Bounds().Dx() != res.TotalWidth || decoded.Bounds().Dy() != res.TotalHeight {
		t.Errorf("composite %dx%d, layout says %dx%d",
			decoded.Bounds().Dx(), decoded.Bounds().Dy(), res.TotalWidth, res.TotalHeight)
	}
}

func TestComposeFiles(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "source.png")
	detailPath := filepath.Join(dir, "detail.png")
	outPath := filepath.Join(dir, "report.png")

	for _, w := range []struct {
		path string
		img  image.Image
	}{
		{sourcePath, createTestImage(800, 600)},
		{detailPath, createTestImage(200, 200)},
	} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, w.img); err != nil {
			t.Fatalf("encode fixture: %v", err)
		}
		if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	composer := New()
	_, res, err := composer.ComposeFiles(sourcePath, detailPath, verdict.Bad, testMeta(), outPath)
	if err != nil {
		t.Fatalf("ComposeFiles failed: %v", err)
	}

	if res.TotalWidth <= 0 || res.TotalHeight <= 0 {
		t.Errorf("degenerate layout result %+v", res)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("composite not written: %v", err)
	}
}

func TestComposeFilesMissingSource(t *testing.T) {
	composer := New()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.png")

	_, _, err := composer.ComposeFiles(
		filepath.Join(dir, "absent.png"), filepath.Join(dir, "also-absent.png"),
		verdict.Neutral, testMeta(), outPath)
	if err == nil {
		t.Fatal("expected error for missing source")
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("no output file may exist after a failed compose")
	}
}

// Two composes of the same inputs must produce byte-identical files.
func TestComposeIdempotent(t *testing.T) {
	composer := New()
	source := createTestImage(640, 480)
	detail := createTestImage(160, 120)
	meta := testMeta()
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.png")
	pathB := filepath.Join(dir, "b.png")

	if _, _, err := composer.ComposeToFile(source, detail, verdict.Neutral, meta, pathA); err != nil {
		t.Fatalf("first compose failed: %v", err)
	}
	if _, _, err := composer.ComposeToFile(source, detail, verdict.Neutral, meta, pathB); err != nil {
		t.Fatalf("second compose failed: %v", err)
	}

	a, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("same inputs must yield byte-identical composites")
	}
}

func TestArrowGeometry(t *testing.T) {
	composer := New()
	crop := types.CropRegion{Left: 300, Top: 200, Width: 120, Height: 90}

	geom, err := composer.ArrowGeometry(1200, 800, crop)
	if err != nil {
		t.Fatalf("ArrowGeometry failed: %v", err)
	}

	if geom.End.X <= geom.Start.X {
		t.Errorf("arrow should point rightward into the detail area: start=%v end=%v",
			geom.Start, geom.End)
	}
}

func TestArrowGeometryInvalidSource(t *testing.T) {
	composer := New()
	if _, err := composer.ArrowGeometry(0, 0, types.CropRegion{Width: 1, Height: 1}); err == nil {
		t.Error("expected error for zero source dimensions")
	}
}

func TestReviewOverlayGate(t *testing.T) {
	composer := New()
	source := createTestImage(800, 600)

	res, err := layout.Compute(800, 600, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	display := image.NewNRGBA(image.Rect(0, 0, res.TotalWidth, res.TotalHeight))

	ov := composer.NewReviewOverlay(verdict.Bad, types.CropRegion{Left: 100, Top: 100, Width: 50, Height: 50})
	if ov.Ready() {
		t.Error("overlay must not be ready before inputs arrive")
	}

	ov.SetSource("source.png", source)
	ov.SetComposite("report.png", display)
	if !ov.Ready() {
		t.Error("overlay should be ready once both inputs are set")
	}
	if err := ov.Render(display); err != nil {
		t.Errorf("Render failed: %v", err)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %s, want %s", GetVersion(), Version)
	}
}

func BenchmarkCompose(b *testing.B) {
	composer := New()
	source := createTestImage(1200, 800)
	detail := createTestImage(400, 300)
	meta := testMeta()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		composer.Compose(source, detail, verdict.Good, meta)
	}
}
