package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/theme"
)

// helpMarkdown is the keybinding reference shown by the help view.
const helpMarkdown = `# seltrack

Every asset you select is recorded in the history panel. Step back and
forward through it like browser history; selecting something new while
you are in the middle of the history drops the entries after it.

## Assets pane

| Key | Action |
|-----|--------|
| j / k | Move down / up |
| gg / G | First / last asset |
| Ctrl+d / Ctrl+u | Half page down / up |
| Enter | Select the highlighted asset |
| n | New asset |
| R | Rename highlighted asset |
| x | Destroy highlighted asset |

## History pane

| Key | Action |
|-----|--------|
| Enter | Jump to the highlighted entry |
| d | Delete the current entry |
| c | Clear the history |

## Everywhere

| Key | Action |
|-----|--------|
| H / L | Back / forward |
| Tab | Switch pane |
| Space | Leader palette |
| T | Next theme |
| : | Command mode |
| ? | Toggle this help |
| q | Quit |

## Commands

| Command | Action |
|---------|--------|
| :new <name> [kind] | Create an asset |
| :rename <name> | Rename the highlighted asset |
| :destroy | Destroy the highlighted asset |
| :back, :forward | Navigate the history |
| :delete, :clear | Delete the current entry / clear the history |
| :prune | Drop entries for destroyed assets |
| :max <n> | Set the history length (1-100) |
| :theme <name> | Switch theme |
| :quit | Quit |
`

// Cached glamour renderer to avoid recreation on every resize.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	rendererMu          sync.Mutex
)

// renderMarkdown renders markdown for the terminal, reusing the renderer
// while the width stays the same.
func renderMarkdown(markdown string, width int) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if cachedRenderer == nil || cachedRendererWidth != width {
		// A fixed style keeps glamour from querying the terminal while
		// bubbletea owns it.
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
	}

	out, err := cachedRenderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// HelpView is a scrollable keybinding reference.
type HelpView struct {
	viewport viewport.Model
	ready    bool
	visible  bool
	width    int
}

// NewHelpView creates a help view (dimensions set on first SetSize).
func NewHelpView() HelpView {
	return HelpView{}
}

// SetSize updates the view dimensions and re-renders the content when the
// width changes.
func (hv *HelpView) SetSize(width, height int) {
	if !hv.ready {
		hv.viewport = viewport.New(width, height)
		hv.viewport.MouseWheelEnabled = true
		hv.ready = true
	} else {
		hv.viewport.Width = width
		hv.viewport.Height = height
	}
	if width != hv.width {
		hv.width = width
		hv.viewport.SetContent(helpContent(width))
	}
}

// helpContent renders the help text, falling back to the raw markdown.
func helpContent(width int) string {
	wrap := width - 4
	if wrap > 100 {
		wrap = 100
	}
	if wrap < 20 {
		wrap = 20
	}
	out, err := renderMarkdown(helpMarkdown, wrap)
	if err != nil {
		return helpMarkdown
	}
	return out
}

// Show makes the help visible, scrolled to the top.
func (hv *HelpView) Show() {
	hv.visible = true
	if hv.ready {
		hv.viewport.GotoTop()
	}
}

// Hide closes the help.
func (hv *HelpView) Hide() { hv.visible = false }

// IsVisible reports whether the help is shown.
func (hv *HelpView) IsVisible() bool { return hv.visible }

// Update forwards messages (scroll keys, mouse wheel) to the viewport.
func (hv *HelpView) Update(msg tea.Msg) (*HelpView, tea.Cmd) {
	if !hv.ready {
		return hv, nil
	}
	var cmd tea.Cmd
	hv.viewport, cmd = hv.viewport.Update(msg)
	return hv, cmd
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (hv *HelpView) ScrollInfo() string {
	if !hv.ready {
		return "TOP"
	}
	pct := hv.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// View renders the help.
func (hv *HelpView) View() string {
	if !hv.ready {
		return ""
	}
	return lipgloss.NewStyle().
		Background(theme.Current.Background).
		Render(hv.viewport.View())
}
