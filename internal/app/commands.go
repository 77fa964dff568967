package app

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vidyasagar/seltrack/internal/config"
	"github.com/vidyasagar/seltrack/internal/theme"
	"github.com/vidyasagar/seltrack/internal/tracker"
)

// executeCommand runs a : command.
func (m Model) executeCommand(input string) (Model, tea.Cmd) {
	name, args := parseCommand(input)

	switch name {
	case "":
		return m, nil

	case "q", "quit":
		return m, tea.Quit

	case "new":
		if len(args) == 0 {
			m.statusBar.SetError("Usage: :new <name> [kind]")
			return m, nil
		}
		m.createAsset(splitNameKind(args))

	case "rename":
		if len(args) == 0 {
			m.statusBar.SetError("Usage: :rename <name>")
			return m, nil
		}
		m.renameHighlighted(strings.Join(args, " "))

	case "destroy":
		m.destroyHighlighted()

	case "back", "b":
		m.back()

	case "forward", "f":
		m.forward()

	case "delete":
		m.deleteEntry()

	case "clear":
		m.nav.Clear()

	case "prune":
		m.prune()

	case "max":
		if len(args) != 1 {
			m.statusBar.SetMessage(fmt.Sprintf("History length: %d", m.nav.Capacity()))
			return m, nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			m.statusBar.SetError(fmt.Sprintf("Not a number: %s", args[0]))
			return m, nil
		}
		m.setCapacity(n)

	case "theme":
		if len(args) == 0 {
			m.statusBar.SetMessage(fmt.Sprintf("Themes: %s", strings.Join(theme.List(), ", ")))
			return m, nil
		}
		if !theme.Set(args[0]) {
			m.statusBar.SetError(fmt.Sprintf("Unknown theme: %s", args[0]))
			return m, nil
		}
		m.cfg.UI.Theme = args[0]
		m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", args[0]))

	case "help", "h":
		m.help.Show()
		m.mode = ModeHelp

	default:
		m.statusBar.SetError(fmt.Sprintf("Unknown command: %s", name))
	}

	return m, nil
}

// parseCommand splits ":name arg1 arg2" into its name and arguments.
func parseCommand(input string) (string, []string) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// splitNameKind reads "<name> [kind]". With more than one word the last
// word is the kind.
func splitNameKind(fields []string) (string, string) {
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
	}
}

// setCapacity changes the history length and persists it.
func (m *Model) setCapacity(n int) {
	n = config.ClampMax(n)
	m.nav.SetCapacity(n)
	m.cfg.History.Max = n

	if err := config.Save(m.cfg); err != nil {
		log.Printf("warn: saving config: %v", err)
		m.statusBar.SetError(fmt.Sprintf("History length %d (not saved: %s)", n, err))
		return
	}
	m.statusBar.SetMessage(fmt.Sprintf("History length: %d", n))
}

// activity collects tracker events between renders. It lives behind a
// pointer so the subscription survives the model being copied.
type activity struct {
	message string
}

func (a *activity) record(ev tracker.Event) {
	log.Printf("history %s ref=%s count=%d", ev.Kind, ev.Ref, ev.Count)

	switch ev.Kind {
	case tracker.Evicted:
		a.message = fmt.Sprintf("History full: dropped %d oldest", ev.Count)
	case tracker.Pruned:
		a.message = fmt.Sprintf("Dropped %d entries for missing assets", ev.Count)
	case tracker.Cleared:
		a.message = "History cleared"
	case tracker.Deleted:
		a.message = "Removed entry"
	}
}

// take returns the pending message and resets it.
func (a *activity) take() string {
	msg := a.message
	a.message = ""
	return msg
}
