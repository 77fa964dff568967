package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/theme"
)

// LeaderBinding is a single key shortcut shown after the leader key.
type LeaderBinding struct {
	Key  string
	Desc string
}

// LeaderGroup is a named column of leader shortcuts.
type LeaderGroup struct {
	Name     string
	Bindings []LeaderBinding
}

// LeaderPanel renders the popup shortcut palette shown after pressing the leader key.
type LeaderPanel struct {
	visible bool
	groups  []LeaderGroup
}

// NewLeaderPanel creates a leader panel with the default shortcut groups.
func NewLeaderPanel() LeaderPanel {
	return LeaderPanel{
		groups: []LeaderGroup{
			{
				Name: "History",
				Bindings: []LeaderBinding{
					{Key: "b", Desc: "Back"},
					{Key: "f", Desc: "Forward"},
					{Key: "d", Desc: "Delete entry"},
					{Key: "c", Desc: "Clear"},
					{Key: "p", Desc: "Prune missing"},
				},
			},
			{
				Name: "Assets",
				Bindings: []LeaderBinding{
					{Key: "n", Desc: "New"},
					{Key: "r", Desc: "Rename"},
					{Key: "x", Desc: "Destroy"},
				},
			},
			{
				Name: "View",
				Bindings: []LeaderBinding{
					{Key: "T", Desc: "Next theme"},
					{Key: ":", Desc: "Command"},
					{Key: "?", Desc: "Help"},
				},
			},
		},
	}
}

// Show makes the panel visible.
func (lp *LeaderPanel) Show() { lp.visible = true }

// Hide closes the panel.
func (lp *LeaderPanel) Hide() { lp.visible = false }

// IsVisible reports whether the panel is shown.
func (lp *LeaderPanel) IsVisible() bool { return lp.visible }

// Groups returns the shortcut groups.
func (lp *LeaderPanel) Groups() []LeaderGroup { return lp.groups }

// View renders the palette as a boxed popup.
func (lp *LeaderPanel) View() string {
	if !lp.visible {
		return ""
	}

	t := theme.Current

	groupStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Underline(true)
	badgeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Secondary).
		Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)
	colStyle := lipgloss.NewStyle().Width(18)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border)

	var columns []string
	for i, g := range lp.groups {
		lines := []string{groupStyle.Render(g.Name), ""}
		for _, b := range g.Bindings {
			lines = append(lines, badgeStyle.Render(b.Key)+descStyle.Render(" "+b.Desc))
		}
		col := colStyle.Render(strings.Join(lines, "\n"))
		columns = append(columns, col)

		if i < len(lp.groups)-1 {
			sep := strings.TrimSuffix(strings.Repeat(" │ \n", lipgloss.Height(col)), "\n")
			columns = append(columns, sepStyle.Render(sep))
		}
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	rule := sepStyle.Render(strings.Repeat("─", lipgloss.Width(body)))
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Leader"),
		rule,
		"",
		body,
		"",
		lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).Render("press a key or Esc to dismiss"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content)
}
