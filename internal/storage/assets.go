package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vidyasagar/seltrack/internal/tracker"
)

// ErrNotFound is returned when an asset ID does not exist.
var ErrNotFound = errors.New("asset not found")

// labelCacheSize bounds the number of cached display names.
const labelCacheSize = 256

// Asset is a named object in the workspace.
type Asset struct {
	ID        tracker.Ref
	Name      string
	Kind      string
	CreatedAt time.Time
}

// AssetStore manages workspace assets persisted in SQLite. It also serves
// as the liveness resolver for selection history: an asset that has been
// destroyed no longer exists.
type AssetStore struct {
	db     *sql.DB
	labels *lru.Cache[tracker.Ref, string]
	now    func() time.Time
}

// NewAssetStore creates an asset store using the given database.
func NewAssetStore(db *DB) *AssetStore {
	// lru.New only fails for a non-positive size.
	labels, _ := lru.New[tracker.Ref, string](labelCacheSize)
	return &AssetStore{
		db:     db.Conn(),
		labels: labels,
		now:    time.Now,
	}
}

// Create adds a new asset and returns it.
func (s *AssetStore) Create(ctx context.Context, name, kind string) (Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Asset{}, errors.New("asset name is empty")
	}

	a := Asset{
		ID:        tracker.Ref(uuid.NewString()),
		Name:      name,
		Kind:      strings.TrimSpace(kind),
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (id, name, kind, created_at) VALUES (?, ?, ?, ?)`,
		string(a.ID), a.Name, a.Kind, a.CreatedAt.Unix(),
	)
	if err != nil {
		return Asset{}, fmt.Errorf("creating asset %q: %w", name, err)
	}
	s.labels.Add(a.ID, a.Name)
	return a, nil
}

// Get returns the asset with the given ID.
func (s *AssetStore) Get(ctx context.Context, id tracker.Ref) (Asset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, created_at FROM assets WHERE id = ?`, string(id),
	)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Asset{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Asset{}, fmt.Errorf("get %s: %w", id, err)
	}
	return a, nil
}

// List returns every asset ordered by name.
func (s *AssetStore) List(ctx context.Context) ([]Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, created_at FROM assets ORDER BY name COLLATE NOCASE, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return assets, nil
}

// Rename changes an asset's name.
func (s *AssetStore) Rename(ctx context.Context, id tracker.Ref, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("asset name is empty")
	}
	res, err := s.db.ExecContext(ctx, `UPDATE assets SET name = ? WHERE id = ?`, name, string(id))
	if err != nil {
		return fmt.Errorf("renaming %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("renaming %s: %w", id, ErrNotFound)
	}
	s.labels.Add(id, name)
	return nil
}

// Destroy deletes an asset. Any history entry still pointing at it goes
// stale.
func (s *AssetStore) Destroy(ctx context.Context, id tracker.Ref) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("destroying %s: %w", id, err)
	}
	s.labels.Remove(id)
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("destroying %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of assets.
func (s *AssetStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting assets: %w", err)
	}
	return count, nil
}

// Exists reports whether the asset behind ref still exists.
// It always asks the database; the label cache is never trusted for liveness.
func (s *AssetStore) Exists(ref tracker.Ref) bool {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM assets WHERE id = ?`, string(ref)).Scan(&count)
	return err == nil && count > 0
}

// Label returns the display name for ref, or false if the asset is gone.
func (s *AssetStore) Label(ref tracker.Ref) (string, bool) {
	if name, ok := s.labels.Get(ref); ok {
		return name, true
	}
	var name string
	err := s.db.QueryRow(`SELECT name FROM assets WHERE id = ?`, string(ref)).Scan(&name)
	if err != nil {
		return "", false
	}
	s.labels.Add(ref, name)
	return name, true
}

// SeedDemo fills an empty workspace with a few assets. It does nothing if
// the workspace already has assets.
func (s *AssetStore) SeedDemo(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	demo := []struct{ name, kind string }{
		{"Main", "scene"},
		{"Player", "prefab"},
		{"PlayerController", "script"},
		{"Enemy", "prefab"},
		{"Grass", "texture"},
		{"Skybox", "material"},
		{"Footsteps", "audio"},
		{"Credits", "scene"},
	}
	for _, d := range demo {
		if _, err := s.Create(ctx, d.name, d.kind); err != nil {
			return 0, fmt.Errorf("seeding: %w", err)
		}
	}
	return len(demo), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(r rowScanner) (Asset, error) {
	var (
		a       Asset
		id      string
		created int64
	)
	if err := r.Scan(&id, &a.Name, &a.Kind, &created); err != nil {
		return Asset{}, err
	}
	a.ID = tracker.Ref(id)
	a.CreatedAt = time.Unix(created, 0).UTC()
	return a, nil
}
