// Package theme renders the application's five-color palettes through Fyne's
// theme API and loads custom palettes from JSON files.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidPalette reports a palette file that is missing colors or uses a
// malformed color value.
var ErrInvalidPalette = errors.New("invalid palette")

// Palette is the color scheme the GUI is drawn from. Every value is a
// #rrggbb hex string.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Neutral   string `json:"neutral"`
	Accent    string `json:"accent"`
	Status    string `json:"status"`
}

// DarkPalette is the built-in dark color scheme.
func DarkPalette() Palette {
	return Palette{
		Primary:   "#1a202c",
		Secondary: "#2d3748",
		Neutral:   "#718096",
		Accent:    "#48bb78",
		Status:    "#e2e8f0",
	}
}

// LightPalette is the built-in light color scheme.
func LightPalette() Palette {
	return Palette{
		Primary:   "#ffffff",
		Secondary: "#f7fafc",
		Neutral:   "#2d3748",
		Accent:    "#48bb78",
		Status:    "#2d3748",
	}
}

// Validate checks that every palette color is a #-prefixed 6-digit hex value.
func (p Palette) Validate() error {
	colors := map[string]string{
		"primary":   p.Primary,
		"secondary": p.Secondary,
		"neutral":   p.Neutral,
		"accent":    p.Accent,
		"status":    p.Status,
	}
	for name, value := range colors {
		if _, err := ParseHex(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPalette, name, err)
		}
	}
	return nil
}

// LoadPalette reads and validates a palette from a JSON file.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read palette file: %w", err)
	}

	var palette Palette
	if err := json.Unmarshal(data, &palette); err != nil {
		return Palette{}, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	if err := palette.Validate(); err != nil {
		return Palette{}, err
	}
	return palette, nil
}
