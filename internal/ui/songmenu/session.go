package songmenu

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/share"
)

// QueueEditor is the part of the playback queue menu entries edit.
type QueueEditor interface {
	Add(ids ...string)
	AddAt(id string, index int)
	CurrentIndex() int
}

// FavoritesEditor changes favorite membership.
type FavoritesEditor interface {
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
}

// AlbumResolver finds the album a track belongs to.
type AlbumResolver interface {
	AlbumIDFromTrack(ctx context.Context, t library.Track) (string, bool, error)
}

// Services are the collaborators menu entries act on.
type Services struct {
	Queue     QueueEditor
	Favorites FavoritesEditor
	Albums    AlbumResolver
	Navigator navigation.Navigator
	Sharer    share.Sharer
	Logger    *zap.Logger
}

// Dialog is the dialog a menu session shows after an entry ran.
type Dialog int

const (
	NoDialog Dialog = iota
	InfoDialog
	AddToPlaylistDialog
	DeleteDialog
)

func (d Dialog) String() string {
	switch d {
	case InfoDialog:
		return "info"
	case AddToPlaylistDialog:
		return "add-to-playlist"
	case DeleteDialog:
		return "delete"
	default:
		return "none"
	}
}

// Session is the state of one opened menu. It outlives the menu while
// one of its dialogs is visible and is discarded afterwards.
type Session struct {
	Services   Services
	Track      library.Track
	IsFavorite bool

	ctx       context.Context //nolint:containedctx // scoped to one menu session
	dialog    Dialog
	dismissed bool
	onDismiss func()
}

// NewSession opens a menu for track. onDismiss, if set, runs once when the
// menu closes.
func NewSession(ctx context.Context, svc Services, track library.Track, isFavorite bool, onDismiss func()) *Session {
	if svc.Logger == nil {
		svc.Logger = zap.NewNop()
	}
	return &Session{
		Services:   svc,
		Track:      track,
		IsFavorite: isFavorite,
		ctx:        ctx,
		onDismiss:  onDismiss,
	}
}

// Context returns the context entries run their work with.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Open shows d, replacing any visible dialog.
func (s *Session) Open(d Dialog) {
	s.dialog = d
}

// Dialog returns the visible dialog.
func (s *Session) Dialog() Dialog {
	return s.dialog
}

// CloseDialog hides the visible dialog.
func (s *Session) CloseDialog() {
	s.dialog = NoDialog
}

// Dismiss closes the menu. Dialogs already opened stay visible.
func (s *Session) Dismiss() {
	if s.dismissed {
		return
	}
	s.dismissed = true
	if s.onDismiss != nil {
		s.onDismiss()
	}
}

// MenuOpen reports whether the entry list is still shown.
func (s *Session) MenuOpen() bool {
	return !s.dismissed
}

// Done reports whether the session has nothing left on screen.
func (s *Session) Done() bool {
	return s.dismissed && s.dialog == NoDialog
}

// Activate dismisses the menu and runs item.
func (s *Session) Activate(item Item) tea.Cmd {
	s.Dismiss()
	if item.Run == nil {
		return nil
	}
	return item.Run(s)
}
