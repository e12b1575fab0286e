package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette for the UI.
type Theme struct {
	Name      string
	Primary   string
	Accent    string
	Text      string
	Subtle    string
	Error     string
	Warning   string
	Success   string
	StatusFg  string
	StatusBg  string
	BorderDim string
}

// CybexTheme is the default palette (Catppuccin Mocha derived).
func CybexTheme() Theme {
	return Theme{
		Name:      "cybex",
		Primary:   "#cba6f7",
		Accent:    "#f5c2e7",
		Text:      "#cdd6f4",
		Subtle:    "#a6adc8",
		Error:     "#f38ba8",
		Warning:   "#f9e2af",
		Success:   "#a6e3a1",
		StatusFg:  "#1e1e2e",
		StatusBg:  "#cba6f7",
		BorderDim: "#585b70",
	}
}

// MonoTheme is a low-color fallback palette.
func MonoTheme() Theme {
	return Theme{
		Name:      "mono",
		Primary:   "15",
		Accent:    "15",
		Text:      "7",
		Subtle:    "8",
		Error:     "9",
		Warning:   "11",
		Success:   "10",
		StatusFg:  "0",
		StatusBg:  "7",
		BorderDim: "8",
	}
}

// ThemeByName resolves a prefs theme name, defaulting to cybex.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return CybexTheme()
}

type Styles struct {
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	StatusBar lipgloss.Style
	Key       lipgloss.Style
	Spinner   lipgloss.Style
	Selected  lipgloss.Style
	Installed lipgloss.Style
	Popup     lipgloss.Style
	PopupItem lipgloss.Style
	PopupPick lipgloss.Style
	Output    lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusFg)).
			Background(lipgloss.Color(theme.StatusBg)).
			Padding(0, 1),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Installed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Primary)).
			Padding(1, 2),

		PopupItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Padding(0, 1),

		PopupPick: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusFg)).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 1).
			Bold(true),

		Output: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.BorderDim)).
			Padding(0, 1),
	}
}
