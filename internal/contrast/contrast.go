// Package contrast grades text legibility using the WCAG relative-luminance
// contrast metric, the same figure Chrome shows in its developer tools.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a color that is not a 6-hex-digit value.
var ErrInvalidColor = errors.New("invalid color")

// Ratings returned by Rating.
const (
	RatingAAA  = "AAA"
	RatingAA   = "AA"
	RatingFail = "FAIL"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RelativeLuminance computes the WCAG relative luminance of a color,
// in [0, 1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), nil
}

// Ratio computes the WCAG contrast ratio between two colors. The result is
// at least 1.0 and symmetric in its arguments.
func Ratio(fg, bg string) (float64, error) {
	fgLum, err := RelativeLuminance(fg)
	if err != nil {
		return 0, err
	}
	bgLum, err := RelativeLuminance(bg)
	if err != nil {
		return 0, err
	}

	lighter := math.Max(fgLum, bgLum)
	darker := math.Min(fgLum, bgLum)
	return (lighter + 0.05) / (darker + 0.05), nil
}

// Rating maps a contrast ratio onto the WCAG conformance levels.
func Rating(ratio float64) string {
	switch {
	case ratio >= 7.0:
		return RatingAAA
	case ratio >= 4.5:
		return RatingAA
	default:
		return RatingFail
	}
}

func parse(hex string) (colorful.Color, error) {
	if !hexColorPattern.MatchString(hex) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return c, nil
}

// sRGB gamma expansion per WCAG 2.x.
func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}
