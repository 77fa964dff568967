package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultIcon marks the current history entry when no icon file is configured.
const DefaultIcon = "▸"

// maxIconWidth bounds how many cells a custom icon may occupy.
const maxIconWidth = 2

// LoadIcon reads the current-entry marker from the first line of path.
// An empty path yields DefaultIcon. On any failure the error is returned
// together with DefaultIcon so callers can warn and carry on.
func LoadIcon(path string) (string, error) {
	if path == "" {
		return DefaultIcon, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return DefaultIcon, fmt.Errorf("loading icon: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return DefaultIcon, fmt.Errorf("reading icon %s: %w", path, err)
		}
		return DefaultIcon, fmt.Errorf("icon %s: file is empty", path)
	}

	icon := strings.TrimSpace(sc.Text())
	if icon == "" {
		return DefaultIcon, fmt.Errorf("icon %s: first line is blank", path)
	}
	if w := lipgloss.Width(icon); w > maxIconWidth {
		return DefaultIcon, fmt.Errorf("icon %s: %d cells wide, at most %d allowed", path, w, maxIconWidth)
	}
	return icon, nil
}
