// Package verdict defines the tri-state inspection outcome and the color it
// maps to on rendered output. Both the compositor and the review overlay
// take their colors from here so the two can never disagree.
package verdict

import (
	"image/color"
	"strings"
)

// Verdict is the inspection outcome for a detail region.
type Verdict string

const (
	Good    Verdict = "good"
	Bad     Verdict = "bad"
	Neutral Verdict = "neutral"
)

// Parse maps a free-form verdict code to a Verdict. Unrecognized codes
// fall back to Neutral.
func Parse(s string) Verdict {
	switch Verdict(strings.ToLower(strings.TrimSpace(s))) {
	case Good:
		return Good
	case Bad:
		return Bad
	default:
		return Neutral
	}
}

// Color returns the border/indicator color for a verdict. The function is
// total: anything other than Good or Bad gets the neutral blue.
func Color(v Verdict) color.NRGBA {
	switch v {
	case Good:
		return color.NRGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}
	case Bad:
		return color.NRGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}
	default:
		return color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	}
}
