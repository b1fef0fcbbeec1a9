package textlayout

import (
	"image"
	"image/color"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"a", CharWidth},
		{"Ref: N/A", 8 * CharWidth},
		{"héllo", 5 * CharWidth}, // runes, not bytes
	}

	for _, tt := range tests {
		if got := Width(tt.input); got != tt.expected {
			t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestCenterX(t *testing.T) {
	// A 10-char string in a 400px band: (400 - 120) / 2.
	s := "0123456789"
	if got := CenterX(400, s); got != 140 {
		t.Errorf("CenterX = %d, want 140", got)
	}
}

func TestRightX(t *testing.T) {
	s := "abc"
	if got := RightX(400, s); got != 400-3*CharWidth {
		t.Errorf("RightX = %d, want %d", got, 400-3*CharWidth)
	}
}

func TestBaselineInsideBand(t *testing.T) {
	top, height := 100, 40
	y := Baseline(top, height)
	if y <= top || y >= top+height {
		t.Errorf("Baseline(%d, %d) = %d, outside band", top, height, y)
	}
}

func TestDrawSetsPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 30))
	Draw(img, "X", 10, 20, color.NRGBA{0, 0, 0, 255})

	touched := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			touched = true
			break
		}
	}
	if !touched {
		t.Error("Draw left the canvas untouched")
	}
}
