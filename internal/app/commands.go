package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/notify"
	"github.com/llehouerou/songrow/internal/ui/headerbar"
)

const (
	opTimeout    = 5 * time.Second
	toastTimeout = notify.NoticeTimeout * time.Millisecond
)

// tracksLoadedMsg carries the rows of a view. positions holds the queue
// index of each track in the queue view.
type tracksLoadedMsg struct {
	loadID    int
	tab       headerbar.Tab
	route     navigation.Route
	tracks    []library.Track
	positions []int
	err       error
}

type queueSavedMsg struct{ err error }

type trackDeletedMsg struct {
	track library.Track
	err   error
}

type toastExpiredMsg struct{ seq int }

// loadTracks reads the rows of the visible view. Results of superseded
// loads are dropped.
func (m *Model) loadTracks() tea.Cmd {
	m.loadID++
	id, tab := m.loadID, m.tab
	lib := m.svc.Library
	route := m.svc.Navigator.Current()
	ids := m.state.Queue

	return func() tea.Msg {
		msg := tracksLoadedMsg{loadID: id, tab: tab, route: route}
		if lib == nil {
			return msg
		}
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if tab == headerbar.TabQueue {
			msg.tracks, msg.positions, msg.err = queueTracks(ctx, lib, ids)
			return msg
		}
		msg.tracks, msg.err = routeTracks(ctx, lib, route)
		return msg
	}
}

func queueTracks(ctx context.Context, lib *library.Library, ids []string) ([]library.Track, []int, error) {
	known, err := lib.GetMany(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]library.Track, len(known))
	for _, t := range known {
		byID[t.ID] = t
	}
	tracks := make([]library.Track, 0, len(ids))
	positions := make([]int, 0, len(ids))
	for i, id := range ids {
		if t, ok := byID[id]; ok {
			tracks = append(tracks, t)
			positions = append(positions, i)
		}
	}
	return tracks, positions, nil
}

func routeTracks(ctx context.Context, lib *library.Library, route navigation.Route) ([]library.Track, error) {
	switch r := route.(type) {
	case navigation.AlbumView:
		return lib.AlbumTracks(ctx, r.ID)
	case navigation.ArtistView:
		return lib.ArtistTracks(ctx, r.Name)
	case navigation.AlbumArtistView:
		return lib.AlbumArtistTracks(ctx, r.Name)
	default:
		return lib.All(ctx)
	}
}

func (m *Model) saveQueue() tea.Cmd {
	q := m.svc.Queue
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return queueSavedMsg{err: q.Save(ctx)}
	}
}

// deleteTrack removes track from the library, the queue, favorites and
// every playlist. All steps run; their errors are joined.
func (m *Model) deleteTrack(track library.Track) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		var errs []error
		if svc.Library != nil {
			if err := svc.Library.Delete(ctx, track.ID); err != nil {
				errs = append(errs, err)
			}
		}
		if svc.Queue != nil {
			svc.Queue.RemoveID(track.ID)
		}
		if svc.Favorites != nil {
			if err := svc.Favorites.Unfavorite(ctx, track.ID); err != nil {
				errs = append(errs, err)
			}
		}
		if svc.Playlists != nil {
			if err := svc.Playlists.RemoveTrackEverywhere(ctx, track.ID); err != nil {
				errs = append(errs, err)
			}
		}
		return trackDeletedMsg{track: track, err: errors.Join(errs...)}
	}
}

// showToast puts text on screen for a few seconds and forwards it to the
// desktop when notifications are enabled.
func (m *Model) showToast(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.toastSeq++
	m.toast = text
	seq := m.toastSeq

	cmds := []tea.Cmd{
		tea.Tick(toastTimeout, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} }),
	}
	if m.state.Settings.Notifications && m.svc.Notifier != nil {
		fwd, logger := m.svc.Notifier, m.logger
		cmds = append(cmds, func() tea.Msg {
			if err := fwd.Forward(text, ""); err != nil {
				logger.Debug("forward notice", zap.Error(err))
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) failed(op errmsg.Op, err error) tea.Cmd {
	m.logger.Warn(string(op), zap.Error(err))
	return m.showToast(errmsg.Format(op, err))
}

var errStaleReorder = errors.New("the queue changed during the drag")
