package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Normal    lipgloss.Color
	Highlight lipgloss.Color
	Marker    lipgloss.Color
	Axis      lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Normal:    lipgloss.Color("#00ffff"), // Cyan
		Highlight: lipgloss.Color("#ff0000"),
		Marker:    lipgloss.Color("#ffffff"),
		Axis:      lipgloss.Color("#646464"),
		Accent:    lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Normal:    lipgloss.Color("#ff00ff"), // Magenta
		Highlight: lipgloss.Color("#ffff00"),
		Marker:    lipgloss.Color("#00ffff"),
		Axis:      lipgloss.Color("#444466"),
		Accent:    lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Normal:    lipgloss.Color("#00cc00"), // Green phosphor
		Highlight: lipgloss.Color("#88ff88"),
		Marker:    lipgloss.Color("#ffffff"),
		Axis:      lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Normal:    lipgloss.Color("#00a8cc"),
		Highlight: lipgloss.Color("#ffd700"),
		Marker:    lipgloss.Color("#e0f0ff"),
		Axis:      lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#0077be"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	// Themes lists every theme in cycling order; the first is the default.
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
