package songcard

import (
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/queue"
	"github.com/llehouerou/songrow/internal/ui/songmenu"
)

// LabelStyle selects the colors of the thumbnail label.
type LabelStyle int

const (
	LabelDefault LabelStyle = iota
	LabelSubtle
)

// DragAndDrop enables reordering for a row at Position.
type DragAndDrop struct {
	Enabled  bool
	Position int
}

// Options configure one row.
type Options struct {
	// Highlighted draws the title in the accent color.
	Highlighted bool
	// AutoHighlight also highlights the row of the current queue entry.
	AutoHighlight    bool
	DisableHeartIcon bool
	// Leading is drawn before the thumbnail, e.g. a track number.
	Leading             string
	ThumbnailLabel      string
	ThumbnailLabelStyle LabelStyle
	DragAndDrop         DragAndDrop
	// TrailingItems are appended to the context menu.
	TrailingItems []songmenu.Item
}

// DefaultOptions returns the options of a plain row.
func DefaultOptions() Options {
	return Options{AutoHighlight: true}
}

// State is the shared state rows render with. The host refreshes it
// whenever one of the observed values changes.
type State struct {
	Queue     []string
	Index     int
	Favorites map[string]bool
	Settings  config.Settings
}

// IsCurrent reports whether id is the current queue entry.
func (s State) IsCurrent(id string) bool {
	return queue.IsCurrent(s.Queue, s.Index, id)
}

// IsFavorite reports whether id is a favorite.
func (s State) IsFavorite(id string) bool {
	return s.Favorites[id]
}
