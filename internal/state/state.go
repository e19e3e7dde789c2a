// Package state owns the application's SQLite database: where it lives,
// its schema, and the persisted queue.
package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "songrow"
	dbFileName = "songrow.db"
)

// Manager wraps the database handle shared by the library, queue,
// favorites and playlists stores.
type Manager struct {
	db *sql.DB
}

// Open opens the database in the user's XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (or creates) the database at path and applies the schema.
func OpenPath(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	// One writer keeps SQLite's locking out of the UI's way.
	db.SetMaxOpenConns(1)

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// DB returns the underlying handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

// SaveQueue persists the playback queue.
func (m *Manager) SaveQueue(ctx context.Context, q QueueState) error {
	return saveQueue(ctx, m.db, q)
}

// GetQueue loads the persisted playback queue.
// An empty queue with CurrentIndex -1 is returned on first run.
func (m *Manager) GetQueue(ctx context.Context) (QueueState, error) {
	return getQueue(ctx, m.db)
}
