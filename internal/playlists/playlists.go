// Package playlists stores user playlists of library tracks.
package playlists

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	dbutil "github.com/llehouerou/songrow/internal/db"
)

var (
	// ErrEmptyName is returned when creating a playlist without a name.
	ErrEmptyName = errors.New("playlist name is empty")
	// ErrExists is returned when a playlist with the same name exists.
	ErrExists = errors.New("playlist already exists")
)

// Playlist represents playlist metadata (without tracks).
type Playlist struct {
	ID         int64
	Name       string
	CreatedAt  int64
	LastUsedAt int64
	TrackCount int
}

// Playlists provides database operations for playlists.
type Playlists struct {
	db *sql.DB
}

// New creates a new Playlists instance.
func New(db *sql.DB) *Playlists {
	return &Playlists{db: db}
}

// Create creates a new playlist and returns its id.
func (p *Playlists) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	var exists int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM playlists WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, ErrExists
	}

	now := time.Now().Unix()
	result, err := p.db.ExecContext(ctx, `
		INSERT INTO playlists (name, created_at, last_used_at)
		VALUES (?, ?, ?)
	`, name, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Delete deletes a playlist and all its tracks.
func (p *Playlists) Delete(ctx context.Context, id int64) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	return err
}

// List returns all playlists, most recently used first.
func (p *Playlists) List(ctx context.Context) ([]Playlist, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.created_at, p.last_used_at, COUNT(pt.id)
		FROM playlists p
		LEFT JOIN playlist_tracks pt ON pt.playlist_id = p.id
		GROUP BY p.id
		ORDER BY p.last_used_at DESC, p.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []Playlist
	for rows.Next() {
		var pl Playlist
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.CreatedAt, &pl.LastUsedAt, &pl.TrackCount); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, rows.Err()
}

// Tracks returns the track ids of a playlist in position order.
func (p *Playlists) Tracks(ctx context.Context, playlistID int64) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT track_id FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddTracks appends tracks at the end of a playlist in one transaction
// and marks the playlist as recently used.
func (p *Playlists) AddTracks(ctx context.Context, playlistID int64, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	return dbutil.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		var nextPos int
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(position) + 1, 0) FROM playlist_tracks WHERE playlist_id = ?
		`, playlistID).Scan(&nextPos)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO playlist_tracks (playlist_id, position, track_id)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, trackID := range trackIDs {
			if _, err := stmt.ExecContext(ctx, playlistID, nextPos+i, trackID); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `UPDATE playlists SET last_used_at = ? WHERE id = ?`,
			time.Now().Unix(), playlistID)
		return err
	})
}

// RemoveTrackEverywhere removes every occurrence of a track from all
// playlists, compacting positions.
func (p *Playlists) RemoveTrackEverywhere(ctx context.Context, trackID string) error {
	return dbutil.WithTx(ctx, p.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT DISTINCT playlist_id FROM playlist_tracks WHERE track_id = ?
		`, trackID)
		if err != nil {
			return err
		}
		var affected []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			affected = append(affected, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE track_id = ?`, trackID); err != nil {
			return err
		}
		for _, id := range affected {
			if err := compactPositions(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// compactPositions renumbers a playlist's positions to 0..n-1. Positions
// are moved to negative values first so the unique constraint holds
// throughout.
func compactPositions(ctx context.Context, tx *sql.Tx, playlistID int64) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position
	`, playlistID)
	if err != nil {
		return err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE playlist_tracks SET position = -position - 1 WHERE playlist_id = ?
	`, playlistID); err != nil {
		return err
	}
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE playlist_tracks SET position = ? WHERE id = ?`, i, id); err != nil {
			return err
		}
	}
	return nil
}
