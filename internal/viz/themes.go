package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the scene and the surrounding panels.
type Theme struct {
	Name       string
	Box        lipgloss.Color
	Sphere     lipgloss.Color
	Ray        lipgloss.Color
	Point      lipgloss.Color
	Origin     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Box:        lipgloss.Color("#ff00ff"), // Magenta
		Sphere:     lipgloss.Color("#3a3a5a"),
		Ray:        lipgloss.Color("#00ffff"), // Cyan
		Point:      lipgloss.Color("#ffff00"), // Yellow
		Origin:     lipgloss.Color("#ff0000"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#00ffff"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Box:        lipgloss.Color("#00cc00"), // Green phosphor
		Sphere:     lipgloss.Color("#004400"),
		Ray:        lipgloss.Color("#00aa00"),
		Point:      lipgloss.Color("#88ff88"),
		Origin:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Box:        lipgloss.Color("#cccccc"),
		Sphere:     lipgloss.Color("#444444"),
		Ray:        lipgloss.Color("#0088ff"),
		Point:      lipgloss.Color("#ffffff"),
		Origin:     lipgloss.Color("#ff0000"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Box:        lipgloss.Color("#0077be"), // Ocean blue
		Sphere:     lipgloss.Color("#1d4466"),
		Ray:        lipgloss.Color("#00a8cc"),
		Point:      lipgloss.Color("#ffd700"),
		Origin:     lipgloss.Color("#ff4444"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Box:        lipgloss.Color("#feca57"),
		Sphere:     lipgloss.Color("#5a3b5c"),
		Ray:        lipgloss.Color("#ff9ff3"),
		Point:      lipgloss.Color("#ff6b6b"), // Coral
		Origin:     lipgloss.Color("#5fd068"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) LayerColor(l Layer) lipgloss.Color {
	switch l {
	case LayerSphere:
		return t.Sphere
	case LayerBox:
		return t.Box
	case LayerRay:
		return t.Ray
	case LayerPoint:
		return t.Point
	case LayerOrigin:
		return t.Origin
	}
	return t.Text
}

func (t Theme) LayerStyle(l Layer) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.LayerColor(l))
	if l == LayerPoint || l == LayerOrigin {
		s = s.Bold(true)
	}
	return s
}
