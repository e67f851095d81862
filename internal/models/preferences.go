package models

import "sync"

// ThemeMode selects which palette the application renders with.
type ThemeMode string

const (
	ThemeDark   ThemeMode = "dark"
	ThemeLight  ThemeMode = "light"
	ThemeCustom ThemeMode = "custom"
)

// ParseThemeMode maps a configuration string to a ThemeMode, defaulting to
// dark for unknown values.
func ParseThemeMode(mode string) ThemeMode {
	switch ThemeMode(mode) {
	case ThemeLight:
		return ThemeLight
	case ThemeCustom:
		return ThemeCustom
	default:
		return ThemeDark
	}
}

// Preferences holds runtime-mutable UI settings.
type Preferences struct {
	mu              sync.RWMutex
	themeMode       ThemeMode
	customThemePath string
}

func NewPreferences(mode ThemeMode, customThemePath string) *Preferences {
	return &Preferences{
		themeMode:       mode,
		customThemePath: customThemePath,
	}
}

func (p *Preferences) ThemeMode() ThemeMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.themeMode
}

func (p *Preferences) SetThemeMode(mode ThemeMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.themeMode = mode
}

func (p *Preferences) CustomThemePath() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.customThemePath
}

func (p *Preferences) SetCustomThemePath(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.customThemePath = path
}
