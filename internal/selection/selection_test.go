package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/seltrack/internal/tracker"
)

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	s := New()

	var got []tracker.Ref
	s.Subscribe(func(ref tracker.Ref) { got = append(got, ref) })

	require.True(t, s.Set("A"))
	require.False(t, s.Set("A"))
	require.True(t, s.Set("B"))
	require.True(t, s.Set(""))

	require.Equal(t, []tracker.Ref{"A", "B", ""}, got)
	require.Equal(t, tracker.Ref(""), s.Active())
}

func TestFocusIsIdempotent(t *testing.T) {
	s := New()

	var events, reveals int
	s.Subscribe(func(tracker.Ref) { events++ })
	s.OnReveal(func(tracker.Ref) { reveals++ })

	require.True(t, s.Focus("A"))
	require.False(t, s.Focus("A"))
	require.False(t, s.Focus(""))

	require.Equal(t, 1, events)
	require.Equal(t, 1, reveals)
	require.Equal(t, tracker.Ref("A"), s.Active())
}

func TestFocusWithoutRevealHook(t *testing.T) {
	s := New()
	require.True(t, s.Focus("A"))
	require.Equal(t, tracker.Ref("A"), s.Active())
}

func TestUnsubscribe(t *testing.T) {
	s := New()

	calls := 0
	cancel := s.Subscribe(func(tracker.Ref) { calls++ })
	s.Set("A")
	cancel()
	s.Set("B")

	require.Equal(t, 1, calls)
}

func TestSubscribersRunInOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func(tracker.Ref) { order = append(order, "first") })
	cancel := s.Subscribe(func(tracker.Ref) { order = append(order, "second") })
	s.Subscribe(func(tracker.Ref) { order = append(order, "third") })

	s.Set("A")
	require.Equal(t, []string{"first", "second", "third"}, order)

	cancel()
	order = nil
	s.Set("B")
	require.Equal(t, []string{"first", "third"}, order)
}
