package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of one animation palette.
type Theme struct {
	Name   string
	Trail  lipgloss.Color
	Marker lipgloss.Color
	Ground lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:   "ember",
		Trail:  lipgloss.Color("#ff8c00"), // Orange
		Marker: lipgloss.Color("#ff3b1f"),
		Ground: lipgloss.Color("#5c4033"),
		Accent: lipgloss.Color("#ffb347"),
		Text:   lipgloss.Color("#f5f5f5"),
		Muted:  lipgloss.Color("#777777"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Trail:  lipgloss.Color("#ff8c00"),
		Marker: lipgloss.Color("#00a8cc"),
		Ground: lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Trail:  lipgloss.Color("#ffaa00"), // Amber phosphor
		Marker: lipgloss.Color("#00ff00"),
		Ground: lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#338833"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Trail:  lipgloss.Color("#cccccc"),
		Marker: lipgloss.Color("#ffffff"),
		Ground: lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}

	Themes = []Theme{
		ThemeEmber,
		ThemeOcean,
		ThemeRetro,
		ThemeMono,
	}
)

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
