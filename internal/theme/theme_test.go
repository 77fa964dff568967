package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndCycle(t *testing.T) {
	t.Cleanup(func() { Set("default") })

	require.False(t, Set("no-such-theme"))
	require.Equal(t, []string{"catppuccin", "default", "gruvbox", "nord"}, List())

	require.True(t, Set("gruvbox"))
	require.Equal(t, "nord", Next())

	require.True(t, Set("nord"))
	require.Equal(t, "catppuccin", Next())
}
