package ui

import (
	"github.com/TheNeikos/diary/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds resolved lipgloss colors for terminal output.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary: lipgloss.Color("15"),
		Accent:  lipgloss.Color("33"),
		Muted:   lipgloss.Color("241"),
	},
	"default-light": {
		Primary: lipgloss.Color("0"),
		Accent:  lipgloss.Color("27"),
		Muted:   lipgloss.Color("245"),
	},
	"dracula": {
		Primary: lipgloss.Color("#F8F8F2"),
		Accent:  lipgloss.Color("#BD93F9"),
		Muted:   lipgloss.Color("#6272A4"),
	},
	"gruvbox-dark": {
		Primary: lipgloss.Color("#EBDBB2"),
		Accent:  lipgloss.Color("#FABD2F"),
		Muted:   lipgloss.Color("#928374"),
	},
	"gruvbox-light": {
		Primary: lipgloss.Color("#3C3836"),
		Accent:  lipgloss.Color("#D79921"),
		Muted:   lipgloss.Color("#928374"),
	},
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets["default-dark"]
	}

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	return theme
}

// HashStyle is used for entry hashes.
func (t Theme) HashStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

// HeaderStyle is used for entry headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// HelpStyle is used for footers and hints.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
