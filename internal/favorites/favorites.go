// Package favorites keeps the set of favorited track ids.
package favorites

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/songrow/internal/observable"
)

// Favorites is the SQLite-backed favorites set. The in-memory set mirrors
// the table and is published as an immutable snapshot on every change.
type Favorites struct {
	db *sql.DB

	mu  sync.Mutex
	ids map[string]bool
	set *observable.Value[map[string]bool]
}

// Load reads the favorites table into a new set.
func Load(ctx context.Context, db *sql.DB) (*Favorites, error) {
	rows, err := db.QueryContext(ctx, `SELECT track_id FROM favorites`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Favorites{
		db:  db,
		ids: ids,
		set: observable.New(maps.Clone(ids)),
	}, nil
}

// Set returns the observable favorites snapshot.
func (f *Favorites) Set() *observable.Value[map[string]bool] {
	return f.set
}

// IsFavorite reports whether id is favorited.
func (f *Favorites) IsFavorite(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ids[id]
}

// IDs returns the favorited ids, sorted.
func (f *Favorites) IDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Sorted(maps.Keys(f.ids))
}

// Favorite adds id. Favoriting twice is the same as once.
func (f *Favorites) Favorite(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ids[id] {
		return nil
	}
	_, err := f.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO favorites (track_id, added_at) VALUES (?, ?)
	`, id, time.Now().Unix())
	if err != nil {
		return err
	}
	f.ids[id] = true
	f.set.Set(maps.Clone(f.ids))
	return nil
}

// Unfavorite removes id. Removing an absent id is a no-op.
func (f *Favorites) Unfavorite(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ids[id] {
		return nil
	}
	if _, err := f.db.ExecContext(ctx, `DELETE FROM favorites WHERE track_id = ?`, id); err != nil {
		return err
	}
	delete(f.ids, id)
	f.set.Set(maps.Clone(f.ids))
	return nil
}

// Toggle flips membership of id and returns the new state.
func (f *Favorites) Toggle(ctx context.Context, id string) (bool, error) {
	if f.IsFavorite(id) {
		return false, f.Unfavorite(ctx, id)
	}
	return true, f.Favorite(ctx, id)
}
