package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gstate/internal/logtail"
)

// Theme defines the palette for the dashboard.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	Pane       lipgloss.Style
	PaneClosed lipgloss.Style
	PaneTitle  lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PaneClosed: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderFocus)).
			Bold(true),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
	}
}

// SeverityStyle returns the text style for a glog severity.
func (s Styles) SeverityStyle(sev logtail.Severity) lipgloss.Style {
	switch sev {
	case logtail.SeverityError, logtail.SeverityFatal:
		return s.DangerText
	case logtail.SeverityWarning:
		return s.WarningText
	case logtail.SeverityInfo:
		return s.MutedText
	default:
		return s.Text
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:        "Nightfox",
		Background:  "#131a24", // bg0
		Surface:     "#192330", // bg1
		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue
		Text:        "#cdcecf", // fg1
		Muted:       "#738091", // comment
		Accent:      "#63cdcf", // cyan
		Success:     "#81b29a", // green
		Warning:     "#dbc074", // yellow
		Danger:      "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:        "Kanagawa",
		Background:  "#16161D", // sumiInk0
		Surface:     "#1F1F28", // sumiInk3
		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue
		Text:        "#DCD7BA", // fujiWhite
		Muted:       "#727169", // fujiGray
		Accent:      "#7FB4CA", // springBlue
		Success:     "#98BB6C", // springGreen
		Warning:     "#E6C384", // carpYellow
		Danger:      "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:        "Slate",
		Background:  "#020617", // slate-950
		Surface:     "#0f172a", // slate-900
		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Accent:      "#06b6d4", // cyan-500
		Success:     "#22c55e", // green-500
		Warning:     "#f59e0b", // amber-500
		Danger:      "#ef4444", // red-500
	}
}
