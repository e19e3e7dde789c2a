// Package library stores the tracks known to songrow and scans music
// directories to populate it.
package library

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path/filepath"

	"github.com/llehouerou/songrow/internal/artwork"
)

// Track is a library entry. Values are read-only snapshots; mutate the
// library through Library, never through a Track.
type Track struct {
	ID           string
	Path         string
	Mtime        int64
	Title        string
	Artists      []string
	AlbumArtists []string
	Album        string
	Genre        string
	Year         int
	TrackNumber  int
	DiscNumber   int
}

// TrackID derives the stable id of the track stored at path.
func TrackID(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:16])
}

// URI returns the file:// locator of the track's audio file.
func (t Track) URI() string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(t.Path)}
	return u.String()
}

// ArtworkRequest builds the thumbnail request for the track.
func (t Track) ArtworkRequest(q artwork.Quality) artwork.Request {
	return artwork.Request{TrackPath: t.Path, Quality: q}
}

// PrimaryAlbumArtist returns the artist an album is filed under: the first
// album artist, else the first track artist.
func (t Track) PrimaryAlbumArtist() string {
	if len(t.AlbumArtists) > 0 {
		return t.AlbumArtists[0]
	}
	if len(t.Artists) > 0 {
		return t.Artists[0]
	}
	return ""
}

// DisplayTitle returns the title, or the file name when the title tag is
// empty.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// AlbumID derives the stable id of the album (albumArtist, album).
func AlbumID(albumArtist, album string) string {
	sum := sha256.Sum256([]byte(albumArtist + "\x00" + album))
	return hex.EncodeToString(sum[:12])
}
