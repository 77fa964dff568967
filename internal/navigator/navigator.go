package navigator

import (
	"github.com/vidyasagar/seltrack/internal/selection"
	"github.com/vidyasagar/seltrack/internal/tracker"
)

// Navigator keeps a Tracker in step with a Selection.
//
// Every genuine selection change is recorded as a visit. Moving through the
// history refocuses the selection on the target; that refocus comes back as
// a selection change for the ref already under the cursor, which the tracker
// ignores, so navigating never grows the history.
type Navigator struct {
	history     *tracker.Tracker
	sel         *selection.Selection
	unsubscribe func()
}

// Open wires history to sel and returns the navigator.
// Call Close when the owning view goes away.
func Open(history *tracker.Tracker, sel *selection.Selection) *Navigator {
	n := &Navigator{
		history: history,
		sel:     sel,
	}
	n.unsubscribe = sel.Subscribe(n.onSelectionChanged)

	// Seed with whatever is already selected.
	if ref := sel.Active(); ref != "" {
		history.Visit(ref)
	}
	return n
}

func (n *Navigator) onSelectionChanged(ref tracker.Ref) {
	if ref == "" {
		return
	}
	n.history.Visit(ref)
}

// Close detaches from the selection and clears the history.
func (n *Navigator) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
	n.history.Clear()
}

// Back steps back and focuses the previous entry.
func (n *Navigator) Back() (tracker.Ref, bool) {
	ref, ok := n.history.Back()
	if ok {
		n.sel.Focus(ref)
	}
	return ref, ok
}

// Forward steps forward and focuses the next entry.
func (n *Navigator) Forward() (tracker.Ref, bool) {
	ref, ok := n.history.Forward()
	if ok {
		n.sel.Focus(ref)
	}
	return ref, ok
}

// Jump moves to entry i and focuses it.
func (n *Navigator) Jump(i int) (tracker.Ref, bool) {
	ref, ok := n.history.Jump(i)
	if ok {
		n.sel.Focus(ref)
	}
	return ref, ok
}

// DeleteCurrent removes the current entry and focuses whichever entry the
// cursor lands on.
func (n *Navigator) DeleteCurrent() bool {
	if !n.history.DeleteCurrent() {
		return false
	}
	if ref, ok := n.history.Current(); ok {
		n.sel.Focus(ref)
	}
	return true
}

// Clear empties the history. The selection is left alone.
func (n *Navigator) Clear() {
	n.history.Clear()
}

// PruneStale drops entries whose objects are gone.
func (n *Navigator) PruneStale() int {
	return n.history.PruneStale()
}

// Entries returns the live entries, oldest first.
func (n *Navigator) Entries() []tracker.Ref {
	return n.history.Entries()
}

// Cursor returns the current history position, or -1.
func (n *Navigator) Cursor() int {
	return n.history.Cursor()
}

// IsValidIndex reports whether i indexes a history entry.
func (n *Navigator) IsValidIndex(i int) bool {
	return n.history.IsValidIndex(i)
}

// CanGoBack reports whether Back would succeed.
func (n *Navigator) CanGoBack() bool {
	return n.history.CanGoBack()
}

// CanGoForward reports whether Forward would succeed.
func (n *Navigator) CanGoForward() bool {
	return n.history.CanGoForward()
}

// Capacity returns the history bound.
func (n *Navigator) Capacity() int {
	return n.history.Capacity()
}

// SetCapacity changes the history bound; see Tracker.SetCapacity.
func (n *Navigator) SetCapacity(c int) {
	n.history.SetCapacity(c)
}
