package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text      string
	Muted     string
	Accent    string
	Success   string
	Danger    string
	Selection string
	Border    string
}

var themes = []Theme{
	{
		Name:      "Dracula",
		Text:      "#F8F8F2",
		Muted:     "#6272A4",
		Accent:    "#BD93F9",
		Success:   "#50FA7B",
		Danger:    "#FF5555",
		Selection: "#44475A",
		Border:    "#6272A4",
	},
	{
		Name:      "Neon",
		Text:      "#EAEAEA",
		Muted:     "#777777",
		Accent:    "#39FF14",
		Success:   "#00FFC8",
		Danger:    "#FF3366",
		Selection: "#222244",
		Border:    "#39FF14",
	},
	{
		Name:      "Pastel",
		Text:      "#4A4A4A",
		Muted:     "#9A9A9A",
		Accent:    "#F48FB1",
		Success:   "#A5D6A7",
		Danger:    "#EF9A9A",
		Selection: "#E1BEE7",
		Border:    "#CE93D8",
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Box      lipgloss.Style
	Badge    lipgloss.Style
}

// Styles returns the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Selection)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
	}
}
