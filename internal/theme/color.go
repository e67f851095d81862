package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex converts a #rrggbb string to an opaque NRGBA color.
func ParseHex(value string) (color.NRGBA, error) {
	if !strings.HasPrefix(value, "#") {
		return color.NRGBA{}, fmt.Errorf("color %q must start with #", value)
	}
	hex := value[1:]
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q must have 6 hex digits", value)
	}

	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q is not hexadecimal", value)
	}

	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 0xff,
	}, nil
}

// AdjustBrightness scales a color's channels by factor, clamping at full
// intensity. Factors below 1 darken, above 1 lighten.
func AdjustBrightness(c color.NRGBA, factor float64) color.NRGBA {
	scale := func(channel uint8) uint8 {
		v := int(float64(channel) * factor)
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		return uint8(v)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// ForegroundFor picks white or black text for the given background using
// perceived luminance.
func ForegroundFor(bg color.NRGBA) color.NRGBA {
	luminance := (0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)) / 255
	if luminance < 0.5 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBA{A: 0xff}
}
