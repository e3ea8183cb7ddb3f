package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	// ThemeChalkboard mimics chalk on a dark green board, easy on
	// projectors in a dim classroom.
	ThemeChalkboard = Theme{
		Name:       "chalkboard",
		Primary:    lipgloss.Color("#f5f0e1"), // Chalk white
		Secondary:  lipgloss.Color("#ffe08a"), // Yellow chalk
		Accent:     lipgloss.Color("#8fd8a0"), // Pale green
		Background: lipgloss.Color("#1e3a2f"),
		Text:       lipgloss.Color("#f5f0e1"),
		Muted:      lipgloss.Color("#5a7d6e"),
		Success:    lipgloss.Color("#8fd8a0"),
		Warning:    lipgloss.Color("#ffe08a"),
		Error:      lipgloss.Color("#ff8a80"),
	}

	// ThemeDaylight is a high-contrast light-on-dark palette for bright rooms.
	ThemeDaylight = Theme{
		Name:       "daylight",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#87ceeb"), // Sky blue
		Accent:     lipgloss.Color("#ffd54f"), // Sun yellow
		Background: lipgloss.Color("#0d1b2a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#778da9"),
		Success:    lipgloss.Color("#7cb342"),
		Warning:    lipgloss.Color("#ffb300"),
		Error:      lipgloss.Color("#e53935"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	// Default theme
	CurrentTheme = ThemeChalkboard

	// All available themes
	Themes = []Theme{
		ThemeChalkboard,
		ThemeDaylight,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the chalkboard.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeChalkboard
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles to the theme after the current one and returns its name.
func NextTheme() string {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme.Name
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme.Name
}
