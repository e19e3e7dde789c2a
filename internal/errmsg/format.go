// Package errmsg turns errors into the one-line messages shown to users.
package errmsg

import "fmt"

// Op names a user-visible operation, phrased to follow "Failed to".
type Op string

const (
	OpLibraryDelete Op = "delete track from library"
	OpLibraryScan   Op = "scan library"
	OpLibraryLoad   Op = "load library"
	OpAlbumLookup   Op = "look up album"

	OpPlaylistCreate   Op = "create playlist"
	OpPlaylistLoad     Op = "load playlists"
	OpPlaylistAddTrack Op = "add track to playlist"

	OpQueueLoad Op = "load queue"
	OpQueueSave Op = "save queue"
	OpQueueMove Op = "move queue item"

	OpFavoriteToggle Op = "update favorites"

	OpTrackInfo Op = "read track details"

	OpArtworkLoad Op = "load artwork"

	OpInitialize Op = "initialize application"
)

// Format returns "Failed to <op>: <err>", or "" for a nil err.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format naming the object of op, such as a playlist.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Failed creates a short notice for an action named by its menu label,
// such as "Share failed: no clipboard".
func Failed(action string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s failed: %v", action, err)
}
