package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/seltrack/internal/tracker"
)

func openStore(t *testing.T) *AssetStore {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAssetStore(db)
}

func TestCreateGetList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	b, err := s.Create(ctx, "  Beta ", "scene")
	require.NoError(t, err)
	require.Equal(t, "Beta", b.Name)
	require.NotEmpty(t, b.ID)

	a, err := s.Create(ctx, "alpha", "")
	require.NoError(t, err)

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, b, got)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a.ID, list[0].ID)
	require.Equal(t, b.ID, list[1].ID)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	_, err := s.Create(context.Background(), "   ", "scene")
	require.Error(t, err)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDestroyMakesRefStale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	a, err := s.Create(ctx, "Player", "prefab")
	require.NoError(t, err)
	require.True(t, s.Exists(a.ID))

	name, ok := s.Label(a.ID)
	require.True(t, ok)
	require.Equal(t, "Player", name)

	require.NoError(t, s.Destroy(ctx, a.ID))
	require.False(t, s.Exists(a.ID))
	_, ok = s.Label(a.ID)
	require.False(t, ok)

	require.ErrorIs(t, s.Destroy(ctx, a.ID), ErrNotFound)
}

func TestRenameRefreshesLabel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	a, err := s.Create(ctx, "Old", "")
	require.NoError(t, err)
	_, _ = s.Label(a.ID)

	require.NoError(t, s.Rename(ctx, a.ID, "New"))
	name, ok := s.Label(a.ID)
	require.True(t, ok)
	require.Equal(t, "New", name)

	require.ErrorIs(t, s.Rename(ctx, "missing", "X"), ErrNotFound)
	require.Error(t, s.Rename(ctx, a.ID, ""))
}

func TestStoreResolvesTrackerHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	var refs []tracker.Ref
	for _, name := range []string{"A", "B", "C"} {
		a, err := s.Create(ctx, name, "")
		require.NoError(t, err)
		refs = append(refs, a.ID)
	}

	tr := tracker.New(s)
	for _, r := range refs {
		tr.Visit(r)
	}
	tr.Jump(1)

	require.NoError(t, s.Destroy(ctx, refs[1]))
	require.Equal(t, []tracker.Ref{refs[0], refs[2]}, tr.Entries())
	require.Equal(t, 1, tr.Cursor())
}

func TestSeedDemoOnlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	n, err := s.SeedDemo(ctx)
	require.NoError(t, err)
	require.Positive(t, n)

	again, err := s.SeedDemo(ctx)
	require.NoError(t, err)
	require.Zero(t, again)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, n, count)
}

func TestCreatedAtRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)
	fixed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a, err := s.Create(ctx, "Clock", "")
	require.NoError(t, err)

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, fixed.Equal(got.CreatedAt))
}

func TestOpenPathCreatesDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "ws.db")

	db, err := OpenPath(path)
	require.NoError(t, err)
	defer db.Close()
	require.Equal(t, path, db.Path())
}
