package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/seltrack/internal/storage"
	"github.com/vidyasagar/seltrack/internal/tracker"
)

func TestScrollList(t *testing.T) {
	var s scrollList
	s.setCount(10)
	s.setRows(4)

	s.bottom()
	require.Equal(t, 9, s.cursor)
	start, end := s.window()
	require.Equal(t, 6, start)
	require.Equal(t, 10, end)

	s.halfPageUp()
	require.Equal(t, 7, s.cursor)

	require.False(t, s.handleG())
	require.True(t, s.handleG())
	require.Equal(t, 0, s.cursor)
	require.Equal(t, 0, s.offset)

	s.up()
	require.Equal(t, 0, s.cursor)

	s.setCount(0)
	require.Equal(t, 0, s.cursor)
	start, end = s.window()
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "PlayerC...", truncate("PlayerController", 10))
	require.Equal(t, "Pla", truncate("PlayerController", 3))
	require.Equal(t, "", truncate("anything", 0))
}

func historyItems(labels ...string) []HistoryItem {
	items := make([]HistoryItem, len(labels))
	for i, l := range labels {
		items[i] = HistoryItem{Ref: tracker.Ref(strings.ToLower(l)), Label: l}
	}
	return items
}

func TestHistoryPanelFollowsCursor(t *testing.T) {
	hp := NewHistoryPanel()
	hp.SetSize(40, 10)
	require.Equal(t, -1, hp.SelectedIndex())

	hp.SetEntries(historyItems("Main", "Player", "Grass"), 2, 20)
	require.Equal(t, 2, hp.SelectedIndex())

	// Moving the highlight alone does not touch the history cursor, and a
	// refresh with the same cursor keeps the highlight where it is.
	hp.CursorUp()
	hp.SetEntries(historyItems("Main", "Player", "Grass"), 2, 20)
	require.Equal(t, 1, hp.SelectedIndex())

	hp.SetEntries(historyItems("Main", "Player", "Grass"), 0, 20)
	require.Equal(t, 0, hp.SelectedIndex())
}

func TestHistoryPanelView(t *testing.T) {
	hp := NewHistoryPanel()
	hp.SetSize(40, 10)
	require.Contains(t, hp.View(), "Nothing selected yet.")

	hp.SetIcon("*")
	hp.SetEntries(historyItems("Main", "Player"), 1, 5)
	view := hp.View()
	require.Contains(t, view, "History 2/5")
	require.Contains(t, view, "Main")
	require.Contains(t, view, "*  2 Player")

	hp.SetIcon("")
	require.Contains(t, hp.View(), DefaultIcon+"  2 Player")
}

func TestAssetPanelReveal(t *testing.T) {
	ap := NewAssetPanel()
	ap.SetSize(40, 5)
	_, ok := ap.Highlighted()
	require.False(t, ok)

	assets := []storage.Asset{
		{ID: "a", Name: "Credits", Kind: "scene"},
		{ID: "b", Name: "Enemy", Kind: "prefab"},
		{ID: "c", Name: "Footsteps", Kind: "audio"},
		{ID: "d", Name: "Grass", Kind: "texture"},
		{ID: "e", Name: "Main", Kind: "scene"},
	}
	ap.SetAssets(assets)

	require.True(t, ap.Reveal("d"))
	a, ok := ap.Highlighted()
	require.True(t, ok)
	require.Equal(t, "Grass", a.Name)
	require.False(t, ap.Reveal("zz"))

	// The highlight stays on Grass when an earlier asset goes away.
	ap.SetAssets(append([]storage.Asset{}, assets[1:]...))
	a, _ = ap.Highlighted()
	require.Equal(t, "Grass", a.Name)

	ap.SetSelected("b")
	view := ap.View()
	require.Contains(t, view, "Assets (4)")
	require.Contains(t, view, "● Enemy")
}

func TestLoadIcon(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	icon, err := LoadIcon("")
	require.NoError(t, err)
	require.Equal(t, DefaultIcon, icon)

	icon, err = LoadIcon(write("star", "★\nignored\n"))
	require.NoError(t, err)
	require.Equal(t, "★", icon)

	tests := map[string]string{
		"missing": filepath.Join(dir, "nope"),
		"empty":   write("empty", ""),
		"blank":   write("blank", "   \n"),
		"wide":    write("wide", ">>>>\n"),
	}
	for name, path := range tests {
		icon, err := LoadIcon(path)
		require.Error(t, err, name)
		require.Equal(t, DefaultIcon, icon, name)
	}
}

func TestCommandBarHistory(t *testing.T) {
	c := NewCommandBar()
	c.SetWidth(80)

	c.Open(CommandEx)
	c.SetValue("max 5")
	res := c.Submit()
	require.Equal(t, CommandResult{Type: CommandEx, Value: "max 5"}, res)
	require.False(t, c.IsActive())

	c.Open(CommandEx)
	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "max 5", c.Submit().Value)

	// Prompts are not remembered.
	c.Open(CommandCreate)
	c.SetValue("  Camera  ")
	require.Equal(t, CommandResult{Type: CommandCreate, Value: "Camera"}, c.Submit())
	c.Open(CommandEx)
	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "max 5", c.Submit().Value)
}

func TestLeaderPanel(t *testing.T) {
	lp := NewLeaderPanel()
	require.Empty(t, lp.View())

	lp.Show()
	require.True(t, lp.IsVisible())
	view := lp.View()
	for _, g := range lp.Groups() {
		require.Contains(t, view, g.Name)
	}
	lp.Hide()
	require.False(t, lp.IsVisible())
}

func TestHelpView(t *testing.T) {
	hv := NewHelpView()
	require.Empty(t, hv.View())
	require.Equal(t, "TOP", hv.ScrollInfo())

	hv.SetSize(80, 3)
	hv.Show()
	require.True(t, hv.IsVisible())
	require.NotEmpty(t, hv.View())
	require.Equal(t, "TOP", hv.ScrollInfo())

	hv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.NotEqual(t, "TOP", hv.ScrollInfo())
}

func TestStatusBarScroll(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(80)
	s.SetHistory(1, 3, true, true)
	require.Contains(t, s.View(), "2/3")

	s.SetScroll("42%")
	view := s.View()
	require.Contains(t, view, "42%")
	require.NotContains(t, view, "2/3")

	s.SetScroll("")
	require.Contains(t, s.View(), "2/3")
}
