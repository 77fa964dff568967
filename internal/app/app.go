package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/config"
	"github.com/vidyasagar/seltrack/internal/navigator"
	"github.com/vidyasagar/seltrack/internal/selection"
	"github.com/vidyasagar/seltrack/internal/storage"
	"github.com/vidyasagar/seltrack/internal/theme"
	"github.com/vidyasagar/seltrack/internal/tracker"
	"github.com/vidyasagar/seltrack/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeCommand      // command bar active
	ModeInput        // asset name prompt active
	ModeLeader       // leader key palette active
	ModeHelp         // help view shown
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeInput:
		return "INPUT"
	case ModeLeader:
		return "LEADER"
	case ModeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// pane identifies which list receives movement keys.
type pane int

const (
	paneAssets pane = iota
	paneHistory
)

// missingLabel is shown for refs whose asset cannot be resolved.
const missingLabel = "(missing)"

// Options configures a Model.
type Options struct {
	Store  *storage.AssetStore
	Config config.Config
	Icon   string
}

// Model is the top-level bubbletea model for seltrack.
type Model struct {
	// UI components
	assets     *ui.AssetPanel // shared with the selection's reveal hook
	history    ui.HistoryPanel
	statusBar  ui.StatusBar
	commandBar ui.CommandBar
	leader     ui.LeaderPanel
	help       ui.HelpView

	// Workspace
	store    *storage.AssetStore
	sel      *selection.Selection
	nav      *navigator.Navigator
	activity *activity
	cfg      config.Config

	keys   KeyMap
	mode   Mode
	focus  pane
	width  int
	height int
	ready  bool
}

// ConfigChangedMsg carries a configuration re-read after the file changed.
type ConfigChangedMsg struct {
	Config config.Config
}

// leaderTimeoutMsg is sent when the leader key palette times out.
type leaderTimeoutMsg struct{}

// New creates a new seltrack Model over the given asset store.
func New(opts Options) Model {
	hist := tracker.New(opts.Store)
	hist.SetCapacity(opts.Config.History.Max)

	act := &activity{}
	hist.Subscribe(act.record)

	assets := ui.NewAssetPanel()
	sel := selection.New()
	sel.OnReveal(func(ref tracker.Ref) {
		assets.Reveal(ref)
	})

	m := Model{
		assets:     &assets,
		history:    ui.NewHistoryPanel(),
		statusBar:  ui.NewStatusBar(),
		commandBar: ui.NewCommandBar(),
		leader:     ui.NewLeaderPanel(),
		help:       ui.NewHelpView(),
		store:      opts.Store,
		sel:        sel,
		nav:        navigator.Open(hist, sel),
		activity:   act,
		cfg:        opts.Config,
		keys:       DefaultKeyMap(),
		mode:       ModeNormal,
		focus:      paneAssets,
	}
	m.history.SetIcon(opts.Icon)
	m.reloadAssets()
	m.sync()
	return m
}

// Close detaches the history from the selection and clears it.
func (m Model) Close() {
	m.nav.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("seltrack")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)

	case leaderTimeoutMsg:
		if m.mode == ModeLeader {
			m.leader.Hide()
			m.mode = ModeNormal
		}

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.mode == ModeHelp {
			_, cmd = m.help.Update(msg)
		}

	default:
		if m.commandBar.IsActive() {
			_, cmd = m.commandBar.Update(msg)
		}
	}

	m.sync()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading seltrack..."
	}

	var sections []string

	if m.mode == ModeHelp {
		sections = append(sections, m.help.View())
	} else {
		t := theme.Current
		dividerStyle := lipgloss.NewStyle().
			Foreground(t.Border).
			Background(t.Background)
		divider := dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", m.bodyHeight()), "\n"))

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			m.assets.View(),
			divider,
			m.history.View(),
		))
	}

	sections = append(sections, m.statusBar.View())

	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	result := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.leader.IsVisible() {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.leader.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(theme.Current.Background),
		)
	}

	return result
}

// bodyHeight is the height left for the panes.
func (m *Model) bodyHeight() int {
	h := m.height - 1 // status bar
	if m.commandBar.IsActive() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	h := m.bodyHeight()
	assetWidth := m.width * 55 / 100
	if assetWidth < 20 {
		assetWidth = 20
	}
	historyWidth := m.width - assetWidth - 1 // -1 for divider
	if historyWidth < 1 {
		historyWidth = 1
	}
	m.assets.SetSize(assetWidth, h)
	m.history.SetSize(historyWidth, h)
	m.help.SetSize(m.width, h)
}

// sync pushes tracker, selection and store state into the components.
// History entries for destroyed assets are pruned here, before rendering.
func (m *Model) sync() {
	m.layout()

	entries := m.nav.Entries()
	items := make([]ui.HistoryItem, len(entries))
	for i, ref := range entries {
		items[i] = ui.HistoryItem{Ref: ref, Label: m.label(ref)}
	}
	m.history.SetEntries(items, m.nav.Cursor(), m.nav.Capacity())

	active := m.sel.Active()
	m.assets.SetSelected(active)
	if active != "" {
		m.statusBar.SetSelection(m.label(active))
	} else {
		m.statusBar.SetSelection("")
	}
	m.statusBar.SetHistory(m.nav.Cursor(), len(entries), m.nav.CanGoBack(), m.nav.CanGoForward())

	m.assets.SetFocused(m.mode == ModeNormal && m.focus == paneAssets)
	m.history.SetFocused(m.mode == ModeNormal && m.focus == paneHistory)
	m.statusBar.SetMode(m.mode.String())
	if m.mode == ModeHelp {
		m.statusBar.SetScroll(m.help.ScrollInfo())
	} else {
		m.statusBar.SetScroll("")
	}

	if msg := m.activity.take(); msg != "" {
		m.statusBar.SetMessage(msg)
	}
}

func (m *Model) label(ref tracker.Ref) string {
	if name, ok := m.store.Label(ref); ok {
		return name
	}
	return missingLabel
}

// reloadAssets refreshes the asset list from the store.
func (m *Model) reloadAssets() {
	assets, err := m.store.List(context.Background())
	if err != nil {
		m.statusBar.SetError(fmt.Sprintf("Error: %s", err))
		return
	}
	m.assets.SetAssets(assets)
}

// applyConfig applies a re-read configuration.
func (m *Model) applyConfig(c config.Config) {
	if c.UI.Theme != m.cfg.UI.Theme {
		if !theme.Set(c.UI.Theme) {
			log.Printf("warn: unknown theme %q in config", c.UI.Theme)
		}
	}
	if c.UI.Icon != m.cfg.UI.Icon {
		icon, err := ui.LoadIcon(c.UI.Icon)
		if err != nil {
			log.Printf("warn: %v", err)
		}
		m.history.SetIcon(icon)
	}
	if c.History.Max != m.nav.Capacity() {
		m.nav.SetCapacity(c.History.Max)
		m.statusBar.SetMessage(fmt.Sprintf("History length: %d", m.nav.Capacity()))
	}
	m.cfg = c
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCommand, ModeInput:
		return m.handleCommandMode(msg)
	case ModeLeader:
		return m.handleLeaderMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys when a pane has focus.
func (m Model) handleNormalMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.statusBar.ClearMessage()

	if msg.String() != "g" {
		m.assets.ResetGKey()
		m.history.ResetGKey()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leader):
		m.leader.Show()
		m.mode = ModeLeader
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return leaderTimeoutMsg{}
		})

	case key.Matches(msg, m.keys.CommandMode):
		m.mode = ModeCommand
		return m, m.commandBar.Open(ui.CommandEx)

	case key.Matches(msg, m.keys.Help):
		m.help.Show()
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == paneAssets {
			m.focus = paneHistory
		} else {
			m.focus = paneAssets
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		m.forward()
		return m, nil

	case key.Matches(msg, m.keys.ThemeCycle):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.NewAsset):
		return m.openPrompt(ui.CommandCreate, "")
	}

	if m.focus == paneHistory {
		return m.handleHistoryKeys(msg)
	}
	return m.handleAssetKeys(msg)
}

// handleAssetKeys processes keys when the asset pane has focus.
func (m Model) handleAssetKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.assets.CursorDown()
	case key.Matches(msg, m.keys.Up):
		m.assets.CursorUp()
	case msg.String() == "g":
		m.assets.HandleGKey()
	case key.Matches(msg, m.keys.GotoBottom):
		m.assets.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.assets.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.assets.HalfPageUp()
	case key.Matches(msg, m.keys.Select):
		if a, ok := m.assets.Highlighted(); ok {
			m.sel.Set(a.ID)
		}
	case key.Matches(msg, m.keys.RenameAsset):
		if a, ok := m.assets.Highlighted(); ok {
			return m.openPrompt(ui.CommandRename, a.Name)
		}
	case key.Matches(msg, m.keys.DestroyAsset):
		m.destroyHighlighted()
	}
	return m, nil
}

// handleHistoryKeys processes keys when the history pane has focus.
func (m Model) handleHistoryKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.history.CursorDown()
	case key.Matches(msg, m.keys.Up):
		m.history.CursorUp()
	case msg.String() == "g":
		m.history.HandleGKey()
	case key.Matches(msg, m.keys.GotoBottom):
		m.history.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.history.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.history.HalfPageUp()
	case key.Matches(msg, m.keys.Select):
		m.nav.Jump(m.history.SelectedIndex())
	case key.Matches(msg, m.keys.DeleteEntry):
		m.deleteEntry()
	case key.Matches(msg, m.keys.ClearHistory):
		m.nav.Clear()
	}
	return m, nil
}

// handleLeaderMode processes the key pressed after the leader key.
func (m Model) handleLeaderMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.leader.Hide()
	m.mode = ModeNormal

	switch msg.String() {
	case "b":
		m.back()
	case "f":
		m.forward()
	case "d":
		m.deleteEntry()
	case "c":
		m.nav.Clear()
	case "p":
		m.prune()
	case "n":
		return m.openPrompt(ui.CommandCreate, "")
	case "r":
		if a, ok := m.assets.Highlighted(); ok {
			return m.openPrompt(ui.CommandRename, a.Name)
		}
	case "x":
		m.destroyHighlighted()
	case "T":
		m.cycleTheme()
	case ":":
		m.mode = ModeCommand
		return m, m.commandBar.Open(ui.CommandEx)
	case "?":
		m.help.Show()
		m.mode = ModeHelp
	}
	return m, nil
}

// handleHelpMode scrolls the help view; Esc, q or ? closes it.
func (m Model) handleHelpMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help.Hide()
		m.mode = ModeNormal
		return m, nil
	}
	_, cmd := m.help.Update(msg)
	return m, cmd
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.mode = ModeNormal
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.mode = ModeNormal
		return m.handleCommandResult(result)
	}

	_, cmd := m.commandBar.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(ct ui.CommandType, prefill string) (Model, tea.Cmd) {
	m.mode = ModeInput
	cmd := m.commandBar.Open(ct)
	if prefill != "" {
		m.commandBar.SetValue(prefill)
	}
	return m, cmd
}

// handleCommandResult processes a submitted command or prompt.
func (m Model) handleCommandResult(result ui.CommandResult) (Model, tea.Cmd) {
	switch result.Type {
	case ui.CommandEx:
		return m.executeCommand(result.Value)
	case ui.CommandCreate:
		if result.Value != "" {
			m.createAsset(splitNameKind(strings.Fields(result.Value)))
		}
	case ui.CommandRename:
		if result.Value != "" {
			m.renameHighlighted(result.Value)
		}
	}
	return m, nil
}

func (m *Model) back() {
	if _, ok := m.nav.Back(); !ok {
		m.statusBar.SetMessage("Already at the oldest entry")
	}
}

func (m *Model) forward() {
	if _, ok := m.nav.Forward(); !ok {
		m.statusBar.SetMessage("Already at the newest entry")
	}
}

func (m *Model) deleteEntry() {
	if !m.nav.DeleteCurrent() {
		m.statusBar.SetMessage("History is empty")
	}
}

func (m *Model) prune() {
	if n := m.nav.PruneStale(); n == 0 {
		m.statusBar.SetMessage("No missing assets in history")
	}
}

func (m *Model) cycleTheme() {
	name := theme.Next()
	theme.Set(name)
	m.cfg.UI.Theme = name
	m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", name))
}

func (m *Model) createAsset(name, kind string) {
	a, err := m.store.Create(context.Background(), name, kind)
	if err != nil {
		m.statusBar.SetError(fmt.Sprintf("Error: %s", err))
		return
	}
	m.reloadAssets()
	m.assets.Reveal(a.ID)
	m.sel.Set(a.ID)
	m.statusBar.SetMessage(fmt.Sprintf("Created %s", a.Name))
}

func (m *Model) renameHighlighted(name string) {
	a, ok := m.assets.Highlighted()
	if !ok {
		m.statusBar.SetMessage("No asset highlighted")
		return
	}
	if err := m.store.Rename(context.Background(), a.ID, name); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Error: %s", err))
		return
	}
	m.reloadAssets()
	m.statusBar.SetMessage(fmt.Sprintf("Renamed %s to %s", a.Name, strings.TrimSpace(name)))
}

// destroyHighlighted deletes the highlighted asset. History entries that
// point at it go stale and are pruned on the next sync.
func (m *Model) destroyHighlighted() {
	a, ok := m.assets.Highlighted()
	if !ok {
		m.statusBar.SetMessage("No asset highlighted")
		return
	}
	if err := m.store.Destroy(context.Background(), a.ID); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Error: %s", err))
		return
	}
	if m.sel.Active() == a.ID {
		m.sel.Set("")
	}
	m.reloadAssets()
	m.statusBar.SetMessage(fmt.Sprintf("Destroyed %s", a.Name))
}
