// Package overlay paints the directional indicator that links a crop region
// on the original photo to the bordered detail area of a composite.
//
// The overlay runs on the review screen, after the true detail bitmap has
// been discarded. Detail dimensions are therefore estimated as the full box
// the detail may scale into; when the real detail aspect ratio diverged from
// that box fit the arrow can land slightly off. This matches capture-time
// behavior and keeps the two screens on one geometry source.
package overlay

import (
	"errors"
	"image"
	"math"

	"github.com/mariem115/defectdoc/pkg/layout"
	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

// Drawing constants.
const (
	StrokeWidth   = 4
	HeadLength    = 12
	HeadHalfAngle = 0.5 // radians
)

// ErrNotReady is returned when Render is called before both the source and
// the composite have been supplied.
var ErrNotReady = errors.New("overlay inputs not ready")

// Point is a position in composite pixel space.
type Point struct {
	X, Y float64
}

// Geometry is a fully derived arrow placement: the stroked segment from the
// crop center to the detail border, plus the arrowhead triangle. Ephemeral,
// recomputed on demand, never persisted.
type Geometry struct {
	Start Point
	End   Point
	Angle float64
	Head  [3]Point
}

// Renderer derives and draws arrow geometry.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// EstimatedDetailSize returns the detail dimensions assumed once the true
// bitmap is gone: the full box a detail may scale into.
func EstimatedDetailSize() (w, h int) {
	return layout.AvailableDetailWidth(), layout.MaxContentHeight()
}

// Geometry recomputes the arrow placement for a crop region by re-deriving
// the composite layout from the source dimensions and the estimated detail
// size.
func (r *Renderer) Geometry(sourceW, sourceH int, crop types.CropRegion) (Geometry, error) {
	estW, estH := EstimatedDetailSize()
	res, err := layout.Compute(sourceW, sourceH, estW, estH)
	if err != nil {
		return Geometry{}, err
	}

	ccx, ccy := crop.Center()
	start := Point{
		X: float64(res.OriginalX) + ccx*res.ScaleOriginal,
		Y: float64(res.OriginalY) + ccy*res.ScaleOriginal,
	}

	border := res.DetailBorderRect()
	target := Point{
		X: float64(border.Min.X+border.Max.X) / 2,
		Y: float64(border.Min.Y+border.Max.Y) / 2,
	}

	end := clipToBorder(start, target,
		float64(border.Min.X), float64(border.Min.Y), float64(border.Max.Y))

	angle := math.Atan2(end.Y-start.Y, end.X-start.X)

	head := [3]Point{
		end,
		{
			X: end.X - HeadLength*math.Cos(angle-HeadHalfAngle),
			Y: end.Y - HeadLength*math.Sin(angle-HeadHalfAngle),
		},
		{
			X: end.X - HeadLength*math.Cos(angle+HeadHalfAngle),
			Y: end.Y - HeadLength*math.Sin(angle+HeadHalfAngle),
		},
	}

	return Geometry{Start: start, End: end, Angle: angle, Head: head}, nil
}

// clipToBorder clips the segment from start toward target to the border
// rectangle's left edge, clamping the Y coordinate into [top, bottom]. A
// vertical segment keeps the start's Y, clamped to the same range.
func clipToBorder(start, target Point, left, top, bottom float64) Point {
	dx := target.X - start.X
	if dx == 0 {
		return Point{X: left, Y: clamp(start.Y, top, bottom)}
	}

	dy := target.Y - start.Y
	y := start.Y + dy*(left-start.X)/dx
	return Point{X: left, Y: clamp(y, top, bottom)}
}

// Draw strokes the arrow onto the display layer in the verdict color.
func (r *Renderer) Draw(dst *image.NRGBA, geom Geometry, v verdict.Verdict) {
	c := verdict.Color(v)
	strokeLine(dst, geom.Start, geom.End, StrokeWidth, c)
	fillTriangle(dst, geom.Head, c)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
