// Package textlayout places short metadata strings on a composite image.
//
// Positions come from an approximate fixed-width metric of 12px per
// character, not from glyph shaping. The strings involved are short header
// and footer labels; exact advance widths do not matter for them, and the
// approximation keeps placement independent of the face actually used to
// rasterize the glyphs.
package textlayout

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CharWidth is the assumed advance of one character, in pixels.
const CharWidth = 12

// Width returns the approximate rendered width of s.
func Width(s string) int {
	return CharWidth * utf8.RuneCountInString(s)
}

// CenterX returns the x position that horizontally centers s across
// totalWidth pixels.
func CenterX(totalWidth int, s string) int {
	return (totalWidth - Width(s)) / 2
}

// RightX returns the x position that right-aligns s against rightEdge.
func RightX(rightEdge int, s string) int {
	return rightEdge - Width(s)
}

// Baseline returns a text baseline that vertically centers a single line in
// the horizontal band starting at top with the given height.
func Baseline(top, height int) int {
	face := basicfont.Face7x13
	return top + (height+face.Ascent-face.Descent)/2
}

// Draw rasterizes s with its baseline at (x, y).
func Draw(dst draw.Image, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
