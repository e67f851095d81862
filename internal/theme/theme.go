package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// AppTheme maps a Palette onto Fyne's named theme colors. Fonts, icons, and
// sizes come from the default theme untouched.
type AppTheme struct {
	background color.NRGBA
	surface    color.NRGBA
	neutral    color.NRGBA
	accent     color.NRGBA
	foreground color.NRGBA
	variant    fyne.ThemeVariant
}

var _ fyne.Theme = (*AppTheme)(nil)

// New builds a theme from a validated palette. dark selects which variant
// the fallback colors are resolved against.
func New(palette Palette, dark bool) *AppTheme {
	background, _ := ParseHex(palette.Primary)
	surface, _ := ParseHex(palette.Secondary)
	neutral, _ := ParseHex(palette.Neutral)
	accent, _ := ParseHex(palette.Accent)
	foreground, _ := ParseHex(palette.Status)

	variant := fynetheme.VariantDark
	if !dark {
		variant = fynetheme.VariantLight
	}

	return &AppTheme{
		background: background,
		surface:    surface,
		neutral:    neutral,
		accent:     accent,
		foreground: foreground,
		variant:    variant,
	}
}

func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.background
	case fynetheme.ColorNameButton:
		return t.surface
	case fynetheme.ColorNameInputBackground:
		return t.surface
	case fynetheme.ColorNameForeground:
		return t.foreground
	case fynetheme.ColorNamePlaceHolder:
		return t.neutral
	case fynetheme.ColorNameSeparator:
		return t.neutral
	case fynetheme.ColorNamePrimary:
		return t.accent
	case fynetheme.ColorNameHover:
		return AdjustBrightness(t.accent, 0.9)
	case fynetheme.ColorNamePressed:
		return AdjustBrightness(t.accent, 0.8)
	case fynetheme.ColorNameSelection:
		return AdjustBrightness(t.surface, 1.2)
	case fynetheme.ColorNameScrollBar:
		return t.neutral
	default:
		return fynetheme.DefaultTheme().Color(name, t.variant)
	}
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
