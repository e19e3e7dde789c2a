package state

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/llehouerou/songrow/internal/db"
)

const schemaVersion = 1

// schema is applied in order on every open; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`,

	`CREATE TABLE IF NOT EXISTS library_tracks (
		id            TEXT PRIMARY KEY,
		path          TEXT NOT NULL UNIQUE,
		mtime         INTEGER NOT NULL,
		title         TEXT NOT NULL,
		artists       TEXT NOT NULL,
		album_artists TEXT NOT NULL,
		album_artist  TEXT NOT NULL,
		album         TEXT NOT NULL,
		disc_number   INTEGER,
		track_number  INTEGER,
		year          INTEGER,
		genre         TEXT,
		added_at      INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS library_tracks_by_album
		ON library_tracks(album_artist, album)`,

	`CREATE TABLE IF NOT EXISTS queue_state (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		current_index INTEGER NOT NULL DEFAULT -1
	)`,
	`CREATE TABLE IF NOT EXISTS queue_tracks (
		position INTEGER PRIMARY KEY,
		track_id TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS favorites (
		track_id TEXT PRIMARY KEY,
		added_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS playlists (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL UNIQUE,
		created_at   INTEGER NOT NULL,
		last_used_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS playlists_by_last_used ON playlists(last_used_at DESC)`,
	`CREATE TABLE IF NOT EXISTS playlist_tracks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		playlist_id INTEGER NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		track_id    TEXT NOT NULL,
		UNIQUE(playlist_id, position)
	)`,
}

// migrate creates missing tables and records the schema version. It
// refuses a database written by a newer schema.
func migrate(ctx context.Context, conn *sql.DB) error {
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		var found sql.NullInt64
		if err := tx.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&found); err != nil {
			return err
		}
		if found.Int64 > schemaVersion {
			return fmt.Errorf("database schema version %d is newer than supported version %d", found.Int64, schemaVersion)
		}
		_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)
		return err
	})
}
