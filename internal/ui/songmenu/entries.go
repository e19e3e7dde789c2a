// Package songmenu provides the contextual menu of a song row.
package songmenu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/icons"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/share"
)

// Action is a kind of menu entry. The settings list which kinds a menu
// shows and in which order.
type Action int

const (
	Favorite Action = iota
	PlayNext
	AddToQueue
	AddToPlaylist
	ViewArtist
	ViewAlbumArtist
	ViewAlbum
	Share
	Details
	Delete
)

// Item is one rendered menu entry.
type Item struct {
	Label       string
	Icon        string
	Destructive bool
	Run         func(s *Session) tea.Cmd
}

var actionNames = [...]string{
	Favorite:        "favorite",
	PlayNext:        "play_next",
	AddToQueue:      "add_to_queue",
	AddToPlaylist:   "add_to_playlist",
	ViewArtist:      "view_artist",
	ViewAlbumArtist: "view_album_artist",
	ViewAlbum:       "view_album",
	Share:           "share",
	Details:         "details",
	Delete:          "delete",
}

// actionLabels name each kind in settings screens and, for most kinds,
// in the menu itself.
var actionLabels = [...]string{
	Favorite:        "Favorite",
	PlayNext:        "Play Next",
	AddToQueue:      "Add to Queue",
	AddToPlaylist:   "Add to Playlist",
	ViewArtist:      "View Artist",
	ViewAlbumArtist: "View Album Artist",
	ViewAlbum:       "View Album",
	Share:           "Share Song",
	Details:         "Details",
	Delete:          "Delete Song",
}

// unfavoriteLabel replaces the Favorite label when the track already is
// one.
const unfavoriteLabel = "Unfavorite"

// opTimeout bounds the service calls entries make.
const opTimeout = 5 * time.Second

var actionEntries = [...]func(s *Session) []Item{
	Favorite:        favoriteEntries,
	PlayNext:        playNextEntries,
	AddToQueue:      addToQueueEntries,
	AddToPlaylist:   dialogEntries(AddToPlaylist, AddToPlaylistDialog, false),
	ViewArtist:      viewArtistEntries,
	ViewAlbumArtist: viewAlbumArtistEntries,
	ViewAlbum:       viewAlbumEntries,
	Share:           shareEntries,
	Details:         dialogEntries(Details, InfoDialog, false),
	Delete:          dialogEntries(Delete, DeleteDialog, true),
}

// DefaultActions returns every kind in display order.
func DefaultActions() []Action {
	return []Action{
		Favorite, PlayNext, AddToQueue, AddToPlaylist, ViewArtist,
		ViewAlbumArtist, ViewAlbum, Share, Details, Delete,
	}
}

func (a Action) valid() bool {
	return a >= Favorite && a <= Delete
}

// String returns the config name of the kind.
func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Label returns the display name of the kind.
func (a Action) Label() string {
	if !a.valid() {
		return ""
	}
	return actionLabels[a]
}

// Entries returns the menu entries a kind contributes for s. Most kinds
// contribute one entry; artist kinds contribute one per name and
// ViewAlbum none when the album cannot be resolved.
func (a Action) Entries(s *Session) []Item {
	if !a.valid() {
		return nil
	}
	return actionEntries[a](s)
}

// ParseAction parses a config name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown menu action %q", name)
}

// ParseActions parses an ordered list of config names. Duplicates keep
// their first position.
func ParseActions(names []string) ([]Action, error) {
	actions := make([]Action, 0, len(names))
	seen := make(map[Action]bool, len(names))
	var errs []error
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		actions = append(actions, a)
	}
	return actions, errors.Join(errs...)
}

// Build lists the entries of actions for s, followed by trailing.
func Build(s *Session, actions []Action, trailing []Item) []Item {
	var items []Item
	for _, a := range actions {
		items = append(items, a.Entries(s)...)
	}
	return append(items, trailing...)
}

func favoriteEntries(s *Session) []Item {
	ic := icons.Current()
	if s.IsFavorite {
		return []Item{{
			Label: unfavoriteLabel,
			Icon:  ic.Unfavorite,
			Run: func(s *Session) tea.Cmd {
				return s.favoriteCmd(false)
			},
		}}
	}
	return []Item{{
		Label: Favorite.Label(),
		Icon:  ic.Favorite,
		Run: func(s *Session) tea.Cmd {
			return s.favoriteCmd(true)
		},
	}}
}

func (s *Session) favoriteCmd(favorite bool) tea.Cmd {
	fav := s.Services.Favorites
	if fav == nil {
		return nil
	}
	parent, id, logger := s.ctx, s.Track.ID, s.Services.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, opTimeout)
		defer cancel()
		var err error
		if favorite {
			err = fav.Favorite(ctx, id)
		} else {
			err = fav.Unfavorite(ctx, id)
		}
		if err != nil {
			logger.Warn("update favorites", zap.String("track", id), zap.Bool("favorite", favorite), zap.Error(err))
			return ActionMsg(Notice{Text: errmsg.Format(errmsg.OpFavoriteToggle, err)})
		}
		return nil
	}
}

func playNextEntries(*Session) []Item {
	return []Item{{
		Label: PlayNext.Label(),
		Icon:  icons.Current().PlayNext,
		Run: func(s *Session) tea.Cmd {
			if q := s.Services.Queue; q != nil {
				q.AddAt(s.Track.ID, q.CurrentIndex()+1)
			}
			return nil
		},
	}}
}

func addToQueueEntries(*Session) []Item {
	return []Item{{
		Label: AddToQueue.Label(),
		Icon:  icons.Current().Queue,
		Run: func(s *Session) tea.Cmd {
			if q := s.Services.Queue; q != nil {
				q.Add(s.Track.ID)
			}
			return nil
		},
	}}
}

func dialogEntries(a Action, d Dialog, destructive bool) func(*Session) []Item {
	return func(*Session) []Item {
		ic := icons.Current()
		icon := map[Dialog]string{
			InfoDialog:          ic.Info,
			AddToPlaylistDialog: ic.Playlist,
			DeleteDialog:        ic.Delete,
		}[d]
		return []Item{{
			Label:       a.Label(),
			Icon:        icon,
			Destructive: destructive,
			Run: func(s *Session) tea.Cmd {
				s.Open(d)
				track := s.Track
				return func() tea.Msg {
					return ActionMsg(DialogRequested{Dialog: d, Track: track})
				}
			},
		}}
	}
}

func navigateEntries(label, icon string, names []string, route func(string) navigation.Route) []Item {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		r := route(name)
		items = append(items, Item{
			Label: label + ": " + name,
			Icon:  icon,
			Run: func(s *Session) tea.Cmd {
				if nav := s.Services.Navigator; nav != nil {
					nav.Navigate(r)
				}
				return nil
			},
		})
	}
	return items
}

func viewArtistEntries(s *Session) []Item {
	return navigateEntries(ViewArtist.Label(), icons.Current().Artist, s.Track.Artists,
		func(name string) navigation.Route { return navigation.ArtistView{Name: name} })
}

func viewAlbumArtistEntries(s *Session) []Item {
	return navigateEntries(ViewAlbumArtist.Label(), icons.Current().AlbumArtist, s.Track.AlbumArtists,
		func(name string) navigation.Route { return navigation.AlbumArtistView{Name: name} })
}

func viewAlbumEntries(s *Session) []Item {
	id, ok := s.AlbumID()
	if !ok {
		return nil
	}
	route := navigation.AlbumView{ID: id, Name: s.Track.Album}
	return []Item{{
		Label: ViewAlbum.Label(),
		Icon:  icons.Current().Album,
		Run: func(s *Session) tea.Cmd {
			if nav := s.Services.Navigator; nav != nil {
				nav.Navigate(route)
			}
			return nil
		},
	}}
}

// AlbumID resolves the album of the session's track. Lookup errors are
// logged and reported as no album.
func (s *Session) AlbumID() (string, bool) {
	albums := s.Services.Albums
	if albums == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(s.ctx, opTimeout)
	defer cancel()
	id, ok, err := albums.AlbumIDFromTrack(ctx, s.Track)
	if err != nil {
		s.Services.Logger.Debug("album lookup", zap.String("track", s.Track.ID), zap.Error(err))
		return "", false
	}
	return id, ok
}

func shareEntries(*Session) []Item {
	return []Item{{
		Label: Share.Label(),
		Icon:  icons.Current().Share,
		Run: func(s *Session) tea.Cmd {
			return s.shareCmd()
		},
	}}
}

func (s *Session) shareCmd() tea.Cmd {
	sharer := s.Services.Sharer
	parent, track, logger := s.ctx, s.Track, s.Services.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, opTimeout)
		defer cancel()
		err := share.ErrUnavailable
		if sharer != nil {
			err = sharer.Share(ctx, track.URI(), share.MIMEType(track.Path))
		}
		if err != nil {
			logger.Warn("share failed",
				zap.String("track", track.ID),
				zap.String("path", track.Path),
				zap.Error(err))
			return ActionMsg(Notice{Text: errmsg.Failed("Share", err)})
		}
		return ActionMsg(Notice{Text: fmt.Sprintf("Shared %q", track.DisplayTitle())})
	}
}
