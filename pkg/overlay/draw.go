package overlay

import (
	"image"
	"image/color"
	"math"
)

// strokeLine paints a segment of the given width with round caps: every
// pixel whose center lies within width/2 of the segment is set.
func strokeLine(img *image.NRGBA, a, b Point, width float64, c color.NRGBA) {
	r := width / 2
	minX := int(math.Floor(math.Min(a.X, b.X) - r))
	maxX := int(math.Ceil(math.Max(a.X, b.X) + r))
	minY := int(math.Floor(math.Min(a.Y, b.Y) - r))
	maxY := int(math.Ceil(math.Max(a.Y, b.Y) + r))

	bounds := img.Bounds()
	minX = maxInt(minX, bounds.Min.X)
	minY = maxInt(minY, bounds.Min.Y)
	maxX = minInt(maxX, bounds.Max.X-1)
	maxY = minInt(maxY, bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if distToSegment(p, a, b) <= r {
				setPix(img, x, y, c)
			}
		}
	}
}

// fillTriangle paints a solid triangle, winding-independent.
func fillTriangle(img *image.NRGBA, p [3]Point, c color.NRGBA) {
	minX := int(math.Floor(math.Min(p[0].X, math.Min(p[1].X, p[2].X))))
	maxX := int(math.Ceil(math.Max(p[0].X, math.Max(p[1].X, p[2].X))))
	minY := int(math.Floor(math.Min(p[0].Y, math.Min(p[1].Y, p[2].Y))))
	maxY := int(math.Ceil(math.Max(p[0].Y, math.Max(p[1].Y, p[2].Y))))

	bounds := img.Bounds()
	minX = maxInt(minX, bounds.Min.X)
	minY = maxInt(minY, bounds.Min.Y)
	maxX = minInt(maxX, bounds.Max.X-1)
	maxY = minInt(maxY, bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pt := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			d0 := edgeSign(pt, p[0], p[1])
			d1 := edgeSign(pt, p[1], p[2])
			d2 := edgeSign(pt, p[2], p[0])

			hasNeg := d0 < 0 || d1 < 0 || d2 < 0
			hasPos := d0 > 0 || d1 > 0 || d2 > 0
			if !(hasNeg && hasPos) {
				setPix(img, x, y, c)
			}
		}
	}
}

func edgeSign(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(apx, apy)
	}

	t := clamp((apx*abx+apy*aby)/lenSq, 0, 1)
	cx := a.X + t*abx
	cy := a.Y + t*aby
	return math.Hypot(p.X-cx, p.Y-cy)
}

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
