package types

import "time"

// CropRegion is an axis-aligned rectangle in source-image pixel space,
// selected by the inspector on the capture screen. Regions are produced and
// validated upstream; the rendering core takes them as given.
type CropRegion struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center of the region in source pixels.
func (c CropRegion) Center() (x, y float64) {
	return float64(c.Left) + float64(c.Width)/2, float64(c.Top) + float64(c.Height)/2
}

// Within reports whether the region lies fully inside a w×h image.
func (c CropRegion) Within(w, h int) bool {
	return c.Left >= 0 && c.Top >= 0 &&
		c.Left+c.Width <= w && c.Top+c.Height <= h
}

// Annotation carries the metadata rendered onto a composite image.
// Description and ReferenceLabel may be empty.
type Annotation struct {
	Description    string    `json:"description"`
	ReferenceLabel string    `json:"reference_label"`
	CreatedAt      time.Time `json:"created_at"`
}
