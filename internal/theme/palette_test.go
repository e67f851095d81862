package theme_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gometrics/internal/theme"
)

func TestParseHex(t *testing.T) {
	c, err := theme.ParseHex("#48bb78")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x48, G: 0xbb, B: 0x78, A: 0xff}, c)

	for _, bad := range []string{"", "48bb78", "#48bb7", "#48bb789", "#48bb7g"} {
		_, err := theme.ParseHex(bad)
		assert.Error(t, err, "value %q", bad)
	}
}

func TestAdjustBrightness(t *testing.T) {
	base := color.NRGBA{R: 100, G: 200, B: 50, A: 0xff}

	darker := theme.AdjustBrightness(base, 0.5)
	assert.Equal(t, color.NRGBA{R: 50, G: 100, B: 25, A: 0xff}, darker)

	// Channels clamp instead of wrapping.
	brighter := theme.AdjustBrightness(base, 2)
	assert.Equal(t, uint8(255), brighter.G)
	assert.Equal(t, uint8(200), brighter.R)
}

func TestForegroundFor(t *testing.T) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.NRGBA{A: 0xff}

	assert.Equal(t, white, theme.ForegroundFor(color.NRGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff}))
	assert.Equal(t, black, theme.ForegroundFor(white))
}

func TestPaletteValidate(t *testing.T) {
	assert.NoError(t, theme.DarkPalette().Validate())
	assert.NoError(t, theme.LightPalette().Validate())

	bad := theme.DarkPalette()
	bad.Accent = "green"
	assert.ErrorIs(t, bad.Validate(), theme.ErrInvalidPalette)

	missing := theme.Palette{Primary: "#1a202c"}
	assert.ErrorIs(t, missing.Validate(), theme.ErrInvalidPalette)
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "palette.json")
	data := `{
		"primary":   "#667eea",
		"secondary": "#764ba2",
		"neutral":   "#4a5568",
		"accent":    "#48bb78",
		"status":    "#ffffff"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	palette, err := theme.LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "#667eea", palette.Primary)
	assert.Equal(t, "#ffffff", palette.Status)
}

func TestLoadPalette_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := theme.LoadPalette(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)

	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{not json"), 0o644))
	_, err = theme.LoadPalette(garbled)
	assert.ErrorIs(t, err, theme.ErrInvalidPalette)

	partial := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(partial, []byte(`{"primary": "#667eea"}`), 0o644))
	_, err = theme.LoadPalette(partial)
	assert.ErrorIs(t, err, theme.ErrInvalidPalette)
}
