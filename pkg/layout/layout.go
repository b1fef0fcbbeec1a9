// Package layout computes the canvas geometry of a composite documentation
// image: where the original photo, the bordered detail crop, and the
// header/footer bands land, and at what scale.
//
// Compute is a pure function of the two bitmap sizes and the fixed constants
// below. Identical inputs always yield an identical Result; the review
// overlay relies on this to re-derive capture-time geometry on a different
// screen.
package layout

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Fixed layout constants, in pixels.
const (
	Padding       = 20
	BorderWidth   = 8
	HeaderHeight  = 50
	FooterHeight  = 40
	Spacing       = 16
	ContentHeight = 400
)

// Horizontal split of the content area between the original photo and the
// detail crop.
const (
	originalRatio = 0.4
	detailRatio   = 0.6
)

// ErrInvalidDimensions is returned when an input width or height is zero or
// negative.
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// Result holds every placement derived from one Compute call. It has no
// lifecycle of its own: recompute on demand, never mutate.
type Result struct {
	TotalWidth  int
	TotalHeight int

	ScaleOriginal float64
	ScaleDetail   float64

	ScaledOriginalWidth  int
	ScaledOriginalHeight int
	ScaledDetailWidth    int
	ScaledDetailHeight   int

	OriginalX int
	OriginalY int

	DetailAreaX int
	DetailAreaY int
}

// OriginalRect returns the placement of the scaled original photo.
func (r Result) OriginalRect() image.Rectangle {
	return image.Rect(r.OriginalX, r.OriginalY,
		r.OriginalX+r.ScaledOriginalWidth, r.OriginalY+r.ScaledOriginalHeight)
}

// DetailBorderRect returns the detail area bounding rectangle with the
// verdict border included on all four sides.
func (r Result) DetailBorderRect() image.Rectangle {
	return image.Rect(r.DetailAreaX, r.DetailAreaY,
		r.DetailAreaX+r.ScaledDetailWidth+2*BorderWidth,
		r.DetailAreaY+r.ScaledDetailHeight+2*BorderWidth)
}

// AvailableOriginalWidth returns the widest box the original photo may be
// scaled into.
func AvailableOriginalWidth() int {
	return int(math.Floor(float64(2*ContentHeight-Spacing)*originalRatio)) - Padding
}

// AvailableDetailWidth returns the widest box the detail crop may be scaled
// into, with the border subtracted on both sides.
func AvailableDetailWidth() int {
	return int(math.Floor(float64(2*ContentHeight-Spacing)*detailRatio)) - Padding - 2*BorderWidth
}

// MaxContentHeight returns the tallest box either image may be scaled into.
func MaxContentHeight() int {
	return ContentHeight - 2*Padding
}

// Compute derives the full composite geometry from the true pixel sizes of
// the source and detail bitmaps. The detail bitmap's own dimensions are used
// as-is: an external crop tool may have re-encoded or rescaled it, so they
// are not assumed to match the crop rectangle.
func Compute(sourceW, sourceH, detailW, detailH int) (Result, error) {
	if sourceW <= 0 || sourceH <= 0 {
		return Result{}, fmt.Errorf("source %dx%d: %w", sourceW, sourceH, ErrInvalidDimensions)
	}
	if detailW <= 0 || detailH <= 0 {
		return Result{}, fmt.Errorf("detail %dx%d: %w", detailW, detailH, ErrInvalidDimensions)
	}

	availOriginalW := AvailableOriginalWidth()
	availDetailW := AvailableDetailWidth()
	maxH := MaxContentHeight()

	scaleOriginal := math.Min(float64(availOriginalW)/float64(sourceW), float64(maxH)/float64(sourceH))
	scaleDetail := math.Min(float64(availDetailW)/float64(detailW), float64(maxH)/float64(detailH))

	scaledOriginalW := scaleDim(sourceW, scaleOriginal)
	scaledOriginalH := scaleDim(sourceH, scaleOriginal)
	scaledDetailW := scaleDim(detailW, scaleDetail)
	scaledDetailH := scaleDim(detailH, scaleDetail)

	totalWidth := Padding + scaledOriginalW + Spacing + 2*BorderWidth + scaledDetailW + Padding

	contentH := maxInt(scaledOriginalH, scaledDetailH+2*BorderWidth)
	totalHeight := HeaderHeight + Padding + contentH + Padding + FooterHeight

	// Vertical centering inside the content band. The numerators are
	// non-negative, so integer division is the floor the geometry needs.
	originalY := HeaderHeight + Padding + (contentH-scaledOriginalH)/2
	detailAreaY := HeaderHeight + Padding + (contentH-scaledDetailH-2*BorderWidth)/2

	return Result{
		TotalWidth:  totalWidth,
		TotalHeight: totalHeight,

		ScaleOriginal: scaleOriginal,
		ScaleDetail:   scaleDetail,

		ScaledOriginalWidth:  scaledOriginalW,
		ScaledOriginalHeight: scaledOriginalH,
		ScaledDetailWidth:    scaledDetailW,
		ScaledDetailHeight:   scaledDetailH,

		OriginalX: Padding,
		OriginalY: originalY,

		DetailAreaX: Padding + scaledOriginalW + Spacing,
		DetailAreaY: detailAreaY,
	}, nil
}

// scaleDim applies a scale factor to a dimension, rounding to the nearest
// pixel and clamping to a 1px minimum so extreme aspect ratios never
// degenerate to empty rectangles.
func scaleDim(dim int, scale float64) int {
	s := int(math.Round(float64(dim) * scale))
	if s < 1 {
		s = 1
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
