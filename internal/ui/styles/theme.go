// Package styles provides the lipgloss styles and symbols used for status
// lines on stderr.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/hdcodedev/gh-context/internal/config"
)

// Theme defines the color palette for status output
type Theme struct {
	Primary color.Color // progress bar fill start
	Accent  color.Color // progress bar fill end
	Success color.Color // generated files
	Error   color.Color // error messages
	Warning color.Color // non-fatal problems (clipboard)
	Muted   color.Color // hints and empty results
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Muted:   lipgloss.Color("240"), // dark gray
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#ffb86c"),
		Muted:   lipgloss.Color("#6272a4"),
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#ebcb8b"),
		Muted:   lipgloss.Color("#4c566a"),
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var presets = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// Active colors, updated by Init.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
)

// Active styles, updated by Init.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(DefaultTheme.Error).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)
)

var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init applies the theme named in cfg. Unknown names fall back to default;
// config validation rejects them before this point.
func Init(cfg config.ThemeConfig) {
	theme, ok := presets[cfg.Name]
	if !ok {
		theme = DefaultTheme
	}
	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent

	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}
