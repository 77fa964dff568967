package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/storage"
	"github.com/vidyasagar/seltrack/internal/theme"
	"github.com/vidyasagar/seltrack/internal/tracker"
)

// AssetPanel lists the workspace assets. The highlighted row is where the
// user is pointing; the selected asset is the workspace's active selection.
type AssetPanel struct {
	assets   []storage.Asset
	selected tracker.Ref
	list     scrollList
	width    int
	height   int
	focused  bool
}

// NewAssetPanel creates an empty asset panel.
func NewAssetPanel() AssetPanel {
	return AssetPanel{}
}

// SetAssets replaces the listed assets, keeping the highlight on the same
// asset when it still exists.
func (ap *AssetPanel) SetAssets(assets []storage.Asset) {
	var keep tracker.Ref
	if a, ok := ap.Highlighted(); ok {
		keep = a.ID
	}
	ap.assets = assets
	ap.list.setCount(len(assets))
	if keep != "" {
		ap.Reveal(keep)
	}
}

// SetSelected sets which asset is drawn as the active selection.
func (ap *AssetPanel) SetSelected(ref tracker.Ref) {
	ap.selected = ref
}

// SetSize updates the panel dimensions.
func (ap *AssetPanel) SetSize(w, h int) {
	ap.width = w
	ap.height = h
	// Header and separator take two lines.
	ap.list.setRows(h - 2)
}

// SetFocused marks the panel as the one receiving keys.
func (ap *AssetPanel) SetFocused(f bool) {
	if f != ap.focused {
		ap.list.lastGKey = false
	}
	ap.focused = f
}

// Reveal moves the highlight to ref and scrolls it into view.
// It reports false if ref is not listed.
func (ap *AssetPanel) Reveal(ref tracker.Ref) bool {
	for i, a := range ap.assets {
		if a.ID == ref {
			ap.list.moveTo(i)
			return true
		}
	}
	return false
}

// Highlighted returns the asset under the highlight.
func (ap *AssetPanel) Highlighted() (storage.Asset, bool) {
	if len(ap.assets) == 0 {
		return storage.Asset{}, false
	}
	return ap.assets[ap.list.cursor], true
}

// Len returns the number of listed assets.
func (ap *AssetPanel) Len() int {
	return len(ap.assets)
}

// CursorUp moves the highlight up one asset.
func (ap *AssetPanel) CursorUp() { ap.list.up() }

// CursorDown moves the highlight down one asset.
func (ap *AssetPanel) CursorDown() { ap.list.down() }

// GotoTop moves to the first asset.
func (ap *AssetPanel) GotoTop() { ap.list.top() }

// GotoBottom moves to the last asset.
func (ap *AssetPanel) GotoBottom() { ap.list.bottom() }

// HalfPageDown scrolls down half a page.
func (ap *AssetPanel) HalfPageDown() { ap.list.halfPageDown() }

// HalfPageUp scrolls up half a page.
func (ap *AssetPanel) HalfPageUp() { ap.list.halfPageUp() }

// HandleGKey handles the "g" key for gg detection.
func (ap *AssetPanel) HandleGKey() bool { return ap.list.handleG() }

// ResetGKey resets the g key state.
func (ap *AssetPanel) ResetGKey() { ap.list.lastGKey = false }

// View renders the asset panel.
func (ap *AssetPanel) View() string {
	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(ap.width).
		Height(ap.height).
		Background(t.Background)

	titleBg := t.Surface
	if ap.focused {
		titleBg = t.BorderFocus
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextBright).
		Background(titleBg).
		Width(ap.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	rowStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	highlightStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Surface).
		Bold(true).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	kindStyle := lipgloss.NewStyle().
		Foreground(t.Kind).
		Italic(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Assets (%d)", len(ap.assets))))
	sb.WriteString("\n")

	sepWidth := ap.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(ap.assets) == 0 {
		sb.WriteString(dimStyle.Render("No assets. Press n to create one."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	start, end := ap.list.window()
	for i := start; i < end; i++ {
		a := ap.assets[i]

		kind := ""
		if a.Kind != "" {
			kind = " " + kindStyle.Render(a.Kind)
		}
		nameWidth := ap.width - 6 - lipgloss.Width(kind)
		name := truncate(a.Name, nameWidth)

		marker := "  "
		if a.ID == ap.selected {
			marker = "● "
			name = selectedStyle.Render(name)
		}
		line := marker + name + kind

		if ap.focused && i == ap.list.cursor {
			sb.WriteString(highlightStyle.Width(ap.width).Render(line))
		} else {
			sb.WriteString(rowStyle.Width(ap.width).Render(line))
		}
		sb.WriteString("\n")
	}

	return panelStyle.Render(sb.String())
}
