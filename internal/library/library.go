package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/llehouerou/songrow/internal/db"
	"github.com/llehouerou/songrow/internal/observable"
)

// ErrNotFound is returned when a track id is not in the library.
var ErrNotFound = errors.New("track not found")

const trackColumns = `id, path, mtime, title, artists, album_artists, album, genre, year, track_number, disc_number`

// Library is the SQLite-backed track store.
type Library struct {
	db      *sql.DB
	version *observable.Value[int]
}

// New creates a library over an opened songrow database.
func New(conn *sql.DB) *Library {
	return &Library{db: conn, version: observable.New(0)}
}

// Changes is bumped after every mutation so views can reload.
func (l *Library) Changes() *observable.Value[int] {
	return l.version
}

func (l *Library) changed() {
	l.version.Update(func(v int) int { return v + 1 })
}

// Add inserts or replaces tracks, keyed by id.
func (l *Library) Add(ctx context.Context, tracks ...Track) error {
	if len(tracks) == 0 {
		return nil
	}
	now := time.Now().Unix()
	err := db.WithTx(ctx, l.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO library_tracks (`+trackColumns+`, album_artist, added_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				path = excluded.path,
				mtime = excluded.mtime,
				title = excluded.title,
				artists = excluded.artists,
				album_artists = excluded.album_artists,
				album = excluded.album,
				genre = excluded.genre,
				year = excluded.year,
				track_number = excluded.track_number,
				disc_number = excluded.disc_number,
				album_artist = excluded.album_artist
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, t := range tracks {
			if t.ID == "" {
				t.ID = TrackID(t.Path)
			}
			if _, err := stmt.ExecContext(ctx,
				t.ID, t.Path, t.Mtime, t.Title,
				db.JoinList(t.Artists), db.JoinList(t.AlbumArtists),
				t.Album, db.Nullable(t.Genre), db.Nullable(int64(t.Year)),
				db.Nullable(int64(t.TrackNumber)), db.Nullable(int64(t.DiscNumber)),
				t.PrimaryAlbumArtist(), now,
			); err != nil {
				return fmt.Errorf("insert %s: %w", t.Path, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	l.changed()
	return nil
}

// Get returns the track with the given id.
func (l *Library) Get(ctx context.Context, id string) (Track, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM library_tracks WHERE id = ?`, id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Track{}, ErrNotFound
	}
	return t, err
}

// GetMany returns the tracks for ids in the order given. Unknown ids are
// skipped.
func (l *Library) GetMany(ctx context.Context, ids []string) ([]Track, error) {
	all, err := l.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Track, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}
	tracks := make([]Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

// All returns every track ordered by album artist, album, disc and track.
func (l *Library) All(ctx context.Context) ([]Track, error) {
	return l.query(ctx, `
		SELECT `+trackColumns+` FROM library_tracks
		ORDER BY album_artist COLLATE NOCASE, album COLLATE NOCASE,
			disc_number, track_number, title COLLATE NOCASE
	`)
}

// AlbumTracks returns the tracks of the album with the given id.
func (l *Library) AlbumTracks(ctx context.Context, albumID string) ([]Track, error) {
	all, err := l.All(ctx)
	if err != nil {
		return nil, err
	}
	var tracks []Track
	for _, t := range all {
		if AlbumID(t.PrimaryAlbumArtist(), t.Album) == albumID {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

// ArtistTracks returns the tracks crediting name as a track artist.
func (l *Library) ArtistTracks(ctx context.Context, name string) ([]Track, error) {
	return l.filter(ctx, func(t Track) bool { return slices.Contains(t.Artists, name) })
}

// AlbumArtistTracks returns the tracks crediting name as an album artist.
func (l *Library) AlbumArtistTracks(ctx context.Context, name string) ([]Track, error) {
	return l.filter(ctx, func(t Track) bool { return slices.Contains(t.AlbumArtists, name) })
}

func (l *Library) filter(ctx context.Context, keep func(Track) bool) ([]Track, error) {
	all, err := l.All(ctx)
	if err != nil {
		return nil, err
	}
	var tracks []Track
	for _, t := range all {
		if keep(t) {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

// Delete removes a track. Deleting an unknown id is not an error.
func (l *Library) Delete(ctx context.Context, id string) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM library_tracks WHERE id = ?`, id); err != nil {
		return err
	}
	l.changed()
	return nil
}

// AlbumIDFromTrack resolves the album a track belongs to. ok is false when
// the track has no album tag or no library track files that album under
// the same album artist.
func (l *Library) AlbumIDFromTrack(ctx context.Context, t Track) (string, bool, error) {
	albumArtist := t.PrimaryAlbumArtist()
	if t.Album == "" {
		return "", false, nil
	}
	var n int
	err := l.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM library_tracks WHERE album_artist = ? AND album = ?
	`, albumArtist, t.Album).Scan(&n)
	if err != nil {
		return "", false, err
	}
	if n == 0 {
		return "", false, nil
	}
	return AlbumID(albumArtist, t.Album), true, nil
}

// Mtimes returns path -> mtime for every track, used by incremental scans.
func (l *Library) Mtimes(ctx context.Context) (map[string]int64, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT path, mtime FROM library_tracks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, err
		}
		m[path] = mtime
	}
	return m, rows.Err()
}

// DeletePaths removes the tracks stored at the given paths.
func (l *Library) DeletePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	err := db.WithTx(ctx, l.db, func(tx *sql.Tx) error {
		for _, p := range paths {
			if _, err := tx.ExecContext(ctx, `DELETE FROM library_tracks WHERE path = ?`, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	l.changed()
	return nil
}

func (l *Library) query(ctx context.Context, q string, args ...any) ([]Track, error) {
	rows, err := l.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(s rowScanner) (Track, error) {
	var t Track
	var artists, albumArtists string
	var genre sql.Null[string]
	var year, trackNum, discNum sql.Null[int64]

	if err := s.Scan(&t.ID, &t.Path, &t.Mtime, &t.Title, &artists, &albumArtists,
		&t.Album, &genre, &year, &trackNum, &discNum); err != nil {
		return Track{}, err
	}
	t.Artists = db.SplitList(artists)
	t.AlbumArtists = db.SplitList(albumArtists)
	t.Genre = genre.V
	t.Year = int(year.V)
	t.TrackNumber = int(trackNum.V)
	t.DiscNumber = int(discNum.V)
	return t, nil
}
