package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// Surfaces
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// History and asset rows
	Current lipgloss.Color // background of the entry under the history cursor
	Kind    lipgloss.Color // asset kind badge
	Missing lipgloss.Color // asset that no longer exists

	// Status
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
}

var Default = Theme{
	Name:        "default",
	Primary:     "#7C3AED",
	Secondary:   "#06B6D4",
	Accent:      "#F59E0B",
	Text:        "#E2E8F0",
	TextDim:     "#64748B",
	TextBright:  "#F8FAFC",
	Background:  "#0F172A",
	Surface:     "#1E293B",
	Border:      "#334155",
	BorderFocus: "#7C3AED",
	Current:     "#4C1D95",
	Kind:        "#34D399",
	Missing:     "#EF4444",
	Error:       "#EF4444",
	Success:     "#22C55E",
	Warning:     "#F59E0B",
	Info:        "#3B82F6",
}

var Gruvbox = Theme{
	Name:        "gruvbox",
	Primary:     "#D65D0E",
	Secondary:   "#458588",
	Accent:      "#D79921",
	Text:        "#EBDBB2",
	TextDim:     "#928374",
	TextBright:  "#FBF1C7",
	Background:  "#282828",
	Surface:     "#3C3836",
	Border:      "#504945",
	BorderFocus: "#D65D0E",
	Current:     "#665C54",
	Kind:        "#B8BB26",
	Missing:     "#FB4934",
	Error:       "#FB4934",
	Success:     "#B8BB26",
	Warning:     "#FABD2F",
	Info:        "#83A598",
}

var Nord = Theme{
	Name:        "nord",
	Primary:     "#88C0D0",
	Secondary:   "#81A1C1",
	Accent:      "#EBCB8B",
	Text:        "#D8DEE9",
	TextDim:     "#4C566A",
	TextBright:  "#ECEFF4",
	Background:  "#2E3440",
	Surface:     "#3B4252",
	Border:      "#434C5E",
	BorderFocus: "#88C0D0",
	Current:     "#5E81AC",
	Kind:        "#A3BE8C",
	Missing:     "#BF616A",
	Error:       "#BF616A",
	Success:     "#A3BE8C",
	Warning:     "#EBCB8B",
	Info:        "#81A1C1",
}

var Catppuccin = Theme{
	Name:        "catppuccin",
	Primary:     "#CBA6F7",
	Secondary:   "#89DCEB",
	Accent:      "#F9E2AF",
	Text:        "#CDD6F4",
	TextDim:     "#6C7086",
	TextBright:  "#F5E0DC",
	Background:  "#1E1E2E",
	Surface:     "#313244",
	Border:      "#45475A",
	BorderFocus: "#CBA6F7",
	Current:     "#585B70",
	Kind:        "#A6E3A1",
	Missing:     "#F38BA8",
	Error:       "#F38BA8",
	Success:     "#A6E3A1",
	Warning:     "#F9E2AF",
	Info:        "#89B4FA",
}

var themes = map[string]Theme{
	Default.Name:    Default,
	Gruvbox.Name:    Gruvbox,
	Nord.Name:       Nord,
	Catppuccin.Name: Catppuccin,
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// List returns all available theme names, sorted.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme name after the current one, wrapping around.
func Next() string {
	names := List()
	for i, n := range names {
		if n == Current.Name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
