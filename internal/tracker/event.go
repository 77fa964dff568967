package tracker

import "slices"

// Kind identifies what changed in a Tracker.
type Kind int

const (
	Visited Kind = iota // a new entry was appended
	Moved               // the cursor moved (back, forward, jump)
	Deleted             // the current entry was removed
	Cleared             // every entry was removed
	Pruned              // stale entries were dropped
	Evicted             // oldest entries were dropped to respect capacity
)

func (k Kind) String() string {
	switch k {
	case Visited:
		return "visited"
	case Moved:
		return "moved"
	case Deleted:
		return "deleted"
	case Cleared:
		return "cleared"
	case Pruned:
		return "pruned"
	case Evicted:
		return "evicted"
	default:
		return "unknown"
	}
}

// Event describes a change to a Tracker. Ref is the entry involved, if any;
// Count is the number of entries added or removed.
type Event struct {
	Kind  Kind
	Ref   Ref
	Count int
}

// listener is a subscribed callback with the id used to remove it.
type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called after every change. Listeners run
// synchronously on the caller's goroutine, in subscription order, and must
// not mutate the tracker. The returned func removes the listener.
func (t *Tracker) Subscribe(fn func(Event)) func() {
	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, listener{id: id, fn: fn})
	return func() {
		t.listeners = slices.DeleteFunc(t.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

func (t *Tracker) emit(ev Event) {
	// A listener may unsubscribe while being called.
	for _, l := range slices.Clone(t.listeners) {
		l.fn(ev)
	}
}
