// Package selection holds the active selection of a workspace.
//
// All changes go through Set, which only notifies subscribers when the
// selection actually changes. Programmatic refocusing (Focus) shares that
// entry point, so restoring a selection that is already active never raises
// a change event.
package selection

import (
	"slices"

	"github.com/vidyasagar/seltrack/internal/tracker"
)

// Selection is the currently selected object. The zero value is an empty
// selection.
type Selection struct {
	active tracker.Ref

	subscribers []subscriber
	nextID      int
	reveal      func(tracker.Ref)
}

type subscriber struct {
	id int
	fn func(tracker.Ref)
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// Active returns the selected ref, or "" when nothing is selected.
func (s *Selection) Active() tracker.Ref {
	return s.active
}

// Set makes ref the active selection and notifies subscribers.
// Setting the ref that is already active does nothing and returns false.
func (s *Selection) Set(ref tracker.Ref) bool {
	if ref == s.active {
		return false
	}
	s.active = ref
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(ref)
	}
	return true
}

// Focus selects ref and reveals it in its containing view.
// It is a no-op for "" and for the ref that is already active.
func (s *Selection) Focus(ref tracker.Ref) bool {
	if ref == "" || ref == s.active {
		return false
	}
	s.Set(ref)
	if s.reveal != nil {
		s.reveal(ref)
	}
	return true
}

// Subscribe calls fn with the new ref after every change. Subscribers are
// called in the order they subscribed. The returned func cancels the
// subscription.
func (s *Selection) Subscribe(fn func(tracker.Ref)) func() {
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

// OnReveal installs the hook Focus uses to bring a ref into view.
func (s *Selection) OnReveal(fn func(tracker.Ref)) {
	s.reveal = fn
}
