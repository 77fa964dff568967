package tracker

// Capacity bounds for a Tracker.
const (
	MinCapacity     = 1
	MaxCapacity     = 100
	DefaultCapacity = 20
)

// Ref is a non-owning handle to an object owned by someone else.
// The empty Ref never refers to anything.
type Ref string

// Resolver reports whether the object behind a Ref still exists.
type Resolver interface {
	Exists(ref Ref) bool
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(ref Ref) bool

// Exists calls f(ref).
func (f ResolverFunc) Exists(ref Ref) bool {
	return f(ref)
}

// Tracker is a bounded back/forward history of visited refs.
//
// Visiting a new ref while positioned in the middle of the history drops
// every entry after the cursor, the way a browser does. Entries whose
// objects have disappeared are pruned lazily whenever the history is read
// or extended. A Tracker is not safe for concurrent use.
type Tracker struct {
	entries  []Ref
	pos      int // current position, -1 when empty
	capacity int
	resolver Resolver

	listeners []listener
	nextID    int
}

// New creates an empty tracker with the default capacity.
// A nil resolver treats every ref as alive.
func New(resolver Resolver) *Tracker {
	return &Tracker{
		pos:      -1,
		capacity: DefaultCapacity,
		resolver: resolver,
	}
}

// Visit records ref as the newest entry. Re-visiting the entry under the
// cursor is a no-op, and so is visiting a ref whose object is already gone.
func (t *Tracker) Visit(ref Ref) {
	if ref == "" || !t.alive(ref) {
		return
	}

	t.prune()

	if !t.IsValidIndex(t.pos) {
		t.pos = len(t.entries) - 1
	}

	if t.IsValidIndex(t.pos) && t.entries[t.pos] == ref {
		return
	}

	// Drop the forward branch.
	if t.pos < len(t.entries)-1 {
		t.entries = t.entries[:t.pos+1]
	}
	t.entries = append(t.entries, ref)
	t.pos = len(t.entries) - 1

	t.evict()
	t.emit(Event{Kind: Visited, Ref: ref, Count: 1})
}

// Back moves one step back. Returns the ref and true if possible.
func (t *Tracker) Back() (Ref, bool) {
	t.prune()
	if !t.IsValidIndex(t.pos - 1) {
		return "", false
	}
	t.pos--
	t.emit(Event{Kind: Moved, Ref: t.entries[t.pos]})
	return t.entries[t.pos], true
}

// Forward moves one step forward. Returns the ref and true if possible.
func (t *Tracker) Forward() (Ref, bool) {
	t.prune()
	if !t.IsValidIndex(t.pos + 1) {
		return "", false
	}
	t.pos++
	t.emit(Event{Kind: Moved, Ref: t.entries[t.pos]})
	return t.entries[t.pos], true
}

// Jump moves the cursor straight to index i of the live entries.
func (t *Tracker) Jump(i int) (Ref, bool) {
	t.prune()
	if !t.IsValidIndex(i) {
		return "", false
	}
	if i != t.pos {
		t.pos = i
		t.emit(Event{Kind: Moved, Ref: t.entries[t.pos]})
	}
	return t.entries[t.pos], true
}

// DeleteCurrent removes the entry under the cursor. The cursor stays at the
// same index, clamped to the new bounds.
func (t *Tracker) DeleteCurrent() bool {
	t.prune()
	if !t.IsValidIndex(t.pos) {
		return false
	}
	removed := t.entries[t.pos]
	t.entries = append(t.entries[:t.pos], t.entries[t.pos+1:]...)

	if len(t.entries) == 0 {
		t.entries = nil
		t.pos = -1
	} else {
		t.pos = clamp(t.pos, 0, len(t.entries)-1)
	}
	merged := t.collapse()

	t.emit(Event{Kind: Deleted, Ref: removed, Count: 1 + merged})
	return true
}

// Clear resets the history.
func (t *Tracker) Clear() {
	n := len(t.entries)
	t.entries = nil
	t.pos = -1
	if n > 0 {
		t.emit(Event{Kind: Cleared, Count: n})
	}
}

// PruneStale drops every entry whose object no longer exists and returns
// how many were dropped.
func (t *Tracker) PruneStale() int {
	return t.prune()
}

// IsValidIndex reports whether i indexes an entry.
func (t *Tracker) IsValidIndex(i int) bool {
	return i >= 0 && i < len(t.entries)
}

// Entries returns a copy of the live entries, oldest first.
func (t *Tracker) Entries() []Ref {
	t.prune()
	result := make([]Ref, len(t.entries))
	copy(result, t.entries)
	return result
}

// Cursor returns the current position, or -1 if the history is empty.
func (t *Tracker) Cursor() int {
	return t.pos
}

// Current returns the ref under the cursor.
func (t *Tracker) Current() (Ref, bool) {
	if !t.IsValidIndex(t.pos) {
		return "", false
	}
	return t.entries[t.pos], true
}

// CanGoBack reports whether there is a previous entry.
func (t *Tracker) CanGoBack() bool {
	return t.pos > 0
}

// CanGoForward reports whether there is a next entry.
func (t *Tracker) CanGoForward() bool {
	return t.pos < len(t.entries)-1
}

// Len returns the number of entries, stale ones included.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Capacity returns the maximum number of entries kept.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// SetCapacity changes the bound, clamped to [MinCapacity, MaxCapacity],
// and evicts the oldest entries right away if the history is now too long.
func (t *Tracker) SetCapacity(n int) {
	t.capacity = clamp(n, MinCapacity, MaxCapacity)
	t.evict()
}

// prune removes stale entries. The cursor follows its entry; if that entry
// is gone the cursor moves to the new last entry.
func (t *Tracker) prune() int {
	if t.resolver == nil || len(t.entries) == 0 {
		return 0
	}

	kept := t.entries[:0]
	pos := t.pos
	cursorLost := false
	for i, ref := range t.entries {
		if t.alive(ref) {
			kept = append(kept, ref)
			continue
		}
		switch {
		case i < t.pos:
			pos--
		case i == t.pos:
			cursorLost = true
		}
	}

	removed := len(t.entries) - len(kept)
	if removed == 0 {
		return 0
	}
	// Clear the tail so dropped refs are not retained by the backing array.
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = ""
	}
	t.entries = kept

	if cursorLost || !t.IsValidIndex(pos) {
		pos = len(t.entries) - 1
	}
	t.pos = pos
	removed += t.collapse()

	t.emit(Event{Kind: Pruned, Count: removed})
	return removed
}

// collapse merges neighbouring entries that refer to the same object, which
// removing the entry between them can produce. The cursor stays on its
// logical entry.
func (t *Tracker) collapse() int {
	if len(t.entries) < 2 {
		return 0
	}

	kept := t.entries[:1]
	pos := t.pos
	for i := 1; i < len(t.entries); i++ {
		ref := t.entries[i]
		if ref == kept[len(kept)-1] {
			if i <= t.pos {
				pos--
			}
			continue
		}
		kept = append(kept, ref)
	}

	removed := len(t.entries) - len(kept)
	if removed == 0 {
		return 0
	}
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = ""
	}
	t.entries = kept
	t.pos = pos
	return removed
}

func (t *Tracker) alive(ref Ref) bool {
	return t.resolver == nil || t.resolver.Exists(ref)
}

// evict drops the oldest entries until the history fits its capacity.
func (t *Tracker) evict() {
	n := 0
	var last Ref
	for len(t.entries) > t.capacity {
		last = t.entries[0]
		t.entries[0] = ""
		t.entries = t.entries[1:]
		t.pos--
		if t.pos < 0 {
			t.pos = 0
		}
		n++
	}
	if n > 0 {
		t.emit(Event{Kind: Evicted, Ref: last, Count: n})
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
