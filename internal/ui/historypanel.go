package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/theme"
	"github.com/vidyasagar/seltrack/internal/tracker"
)

// HistoryItem is one row of the history panel.
type HistoryItem struct {
	Ref   tracker.Ref
	Label string
}

// HistoryPanel displays the selection history, oldest first, with the
// current entry marked. Its highlight row is independent of the history
// cursor so the user can pick an entry to jump to.
type HistoryPanel struct {
	items    []HistoryItem
	current  int // history cursor, -1 when empty
	capacity int
	list     scrollList
	width    int
	height   int
	icon     string
	focused  bool
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{
		current: -1,
		icon:    DefaultIcon,
	}
}

// SetEntries updates the displayed entries. When the history cursor moves
// the highlight follows it.
func (hp *HistoryPanel) SetEntries(items []HistoryItem, current, capacity int) {
	moved := current != hp.current || len(items) != len(hp.items)
	hp.items = items
	hp.current = current
	hp.capacity = capacity
	hp.list.setCount(len(items))
	if moved && current >= 0 {
		hp.list.moveTo(current)
	}
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
	// Header, separator and footer hint take three lines.
	hp.list.setRows(h - 3)
}

// SetIcon sets the marker drawn next to the current entry.
func (hp *HistoryPanel) SetIcon(icon string) {
	if icon == "" {
		icon = DefaultIcon
	}
	hp.icon = icon
}

// SetFocused marks the panel as the one receiving keys.
func (hp *HistoryPanel) SetFocused(f bool) {
	if f != hp.focused {
		hp.list.lastGKey = false
	}
	hp.focused = f
}

// CursorUp moves the highlight up one entry.
func (hp *HistoryPanel) CursorUp() { hp.list.up() }

// CursorDown moves the highlight down one entry.
func (hp *HistoryPanel) CursorDown() { hp.list.down() }

// GotoTop moves to the oldest entry.
func (hp *HistoryPanel) GotoTop() { hp.list.top() }

// GotoBottom moves to the newest entry.
func (hp *HistoryPanel) GotoBottom() { hp.list.bottom() }

// HalfPageDown scrolls down half a page.
func (hp *HistoryPanel) HalfPageDown() { hp.list.halfPageDown() }

// HalfPageUp scrolls up half a page.
func (hp *HistoryPanel) HalfPageUp() { hp.list.halfPageUp() }

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (hp *HistoryPanel) HandleGKey() bool { return hp.list.handleG() }

// ResetGKey resets the g key state (called on any non-g key press).
func (hp *HistoryPanel) ResetGKey() { hp.list.lastGKey = false }

// SelectedIndex returns the highlighted index, or -1 if the panel is empty.
func (hp *HistoryPanel) SelectedIndex() int {
	if len(hp.items) == 0 {
		return -1
	}
	return hp.list.cursor
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height).
		Background(t.Background)

	titleBg := t.Surface
	if hp.focused {
		titleBg = t.BorderFocus
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextBright).
		Background(titleBg).
		Width(hp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	currentStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Current).
		Bold(true).
		Width(hp.width).
		Padding(0, 1)

	highlightStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Width(hp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("History %d/%d", len(hp.items), hp.capacity)))
	sb.WriteString("\n")

	sepWidth := hp.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(hp.items) == 0 {
		sb.WriteString(dimStyle.Render("Nothing selected yet."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	maxLabel := hp.width - 8
	if maxLabel < 8 {
		maxLabel = 8
	}

	start, end := hp.list.window()
	for i := start; i < end; i++ {
		item := hp.items[i]
		label := truncate(item.Label, maxLabel)

		marker := "  "
		if i == hp.current {
			marker = hp.icon + " "
		} else if hp.focused && i == hp.list.cursor {
			marker = "› "
		}
		line := fmt.Sprintf("%s%2d %s", marker, i+1, label)

		switch {
		case i == hp.current:
			sb.WriteString(currentStyle.Render(line))
		case hp.focused && i == hp.list.cursor:
			sb.WriteString(highlightStyle.Render(line))
		default:
			sb.WriteString(normalStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	linesUsed := 2 + (end - start)
	remaining := hp.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render("Enter:jump  d:del  c:clear  H/L:back/fwd"))
	}

	return panelStyle.Render(sb.String())
}
