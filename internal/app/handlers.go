package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/app/popupctl"
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui/action"
	"github.com/llehouerou/songrow/internal/ui/confirm"
	"github.com/llehouerou/songrow/internal/ui/headerbar"
	"github.com/llehouerou/songrow/internal/ui/helpbindings"
	"github.com/llehouerou/songrow/internal/ui/playlistpicker"
	"github.com/llehouerou/songrow/internal/ui/songcard"
	"github.com/llehouerou/songrow/internal/ui/songmenu"
	"github.com/llehouerou/songrow/internal/ui/trackinfo"
)

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	if msg.Action == nil {
		return nil
	}
	m.logger.Debug("action",
		zap.String("source", msg.Source),
		zap.String("type", msg.Action.ActionType()))

	switch a := msg.Action.(type) {
	case songcard.Clicked:
		return m.handleClicked(a)
	case songcard.MenuRequested:
		return m.openMenu(a.TrackID)
	case songcard.DragRequested:
		m.list.StartDrag(a.Position, a.TrackID)
		return nil
	case songcard.Reorder:
		return m.handleReorder(a)
	case songcard.Swiped:
		return m.handleSwiped(a)
	case songcard.Notice:
		return m.showToast(a.Text)

	case songmenu.Notice:
		return m.showToast(a.Text)
	case songmenu.DialogRequested:
		return m.openDialog(a)
	case songmenu.Closed:
		m.menu = nil
		m.releaseSession()
		return nil

	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
		return nil

	case trackinfo.Closed:
		m.popups.Hide(popupctl.Info)
		m.closeDialog()
		return nil
	case playlistpicker.Added:
		m.popups.Hide(popupctl.AddToPlaylist)
		m.closeDialog()
		return m.showToast("Added to " + a.Name)
	case playlistpicker.Notice:
		return m.showToast(a.Text)
	case playlistpicker.Canceled:
		m.popups.Hide(popupctl.AddToPlaylist)
		m.closeDialog()
		return nil

	case confirm.Result:
		m.popups.Hide(popupctl.Confirm)
		m.closeDialog()
		track, ok := a.Context.(library.Track)
		if !a.Confirmed || !ok {
			return nil
		}
		return m.deleteTrack(track)
	}
	return nil
}

// cardFor finds the row of id, preferring the selected row when the
// track is listed more than once.
func (m *Model) cardFor(id string) (int, *songcard.Model, bool) {
	if c, ok := m.list.Selected(); ok && c.Track().ID == id {
		return m.list.SelectedIndex(), c, true
	}
	for i := range m.list.Len() {
		if c, ok := m.list.Card(i); ok && c.Track().ID == id {
			return i, c, true
		}
	}
	return -1, nil, false
}

func (m *Model) handleClicked(a songcard.Clicked) tea.Cmd {
	i, c, ok := m.cardFor(a.TrackID)
	if !ok || m.svc.Queue == nil {
		return nil
	}
	if m.tab == headerbar.TabQueue {
		m.svc.Queue.JumpTo(c.Options().DragAndDrop.Position)
		return nil
	}
	tracks := m.list.Tracks()
	ids := make([]string, len(tracks))
	for j, t := range tracks {
		ids[j] = t.ID
	}
	m.svc.Queue.Replace(ids, i)
	return m.showToast("Playing " + c.Track().DisplayTitle())
}

func (m *Model) handleSwiped(a songcard.Swiped) tea.Cmd {
	_, c, ok := m.cardFor(a.TrackID)
	if !ok {
		return nil
	}
	title := c.Track().DisplayTitle()
	switch a.Action {
	case config.SwipePlayNext:
		return m.showToast("Playing next: " + title)
	case config.SwipeAddToQueue:
		return m.showToast("Added to queue: " + title)
	}
	return nil
}

// handleReorder moves the dragged entry so it lands before the row that
// was at To.
func (m *Model) handleReorder(a songcard.Reorder) tea.Cmd {
	q := m.svc.Queue
	if q == nil {
		return nil
	}
	ids := q.Tracks()
	if a.From < 0 || a.From >= len(ids) || ids[a.From] != a.TrackID {
		m.logger.Warn("stale reorder", zap.Int("from", a.From), zap.String("track", a.TrackID))
		return m.showToast(errmsg.Format(errmsg.OpQueueMove, errStaleReorder))
	}
	to := a.To
	if a.From < a.To {
		to--
	}
	to = min(max(to, 0), len(ids)-1)
	if !q.Move(a.From, to) {
		m.logger.Warn("reorder out of range", zap.Int("from", a.From), zap.Int("to", to))
	}
	return nil
}

// openMenu shows the context menu of id under the row's menu control.
func (m *Model) openMenu(id string) tea.Cmd {
	i, c, ok := m.cardFor(id)
	if !ok {
		return nil
	}
	if m.session != nil {
		m.session.Dismiss()
		m.releaseSession()
	}

	actions, err := songmenu.ParseActions(m.state.Settings.MenuActions)
	if err != nil {
		m.logger.Warn("menu actions", zap.Error(err))
	}
	if len(m.state.Settings.MenuActions) == 0 {
		actions = songmenu.DefaultActions()
	}

	track := c.Track()
	m.session = songmenu.NewSession(m.ctx, m.menuServices(), track, m.state.IsFavorite(track.ID), nil)
	m.menu = songmenu.New(m.session, actions, c.Options().TrailingItems)
	m.menu.SetSize(m.width, m.height)

	w, h := m.menu.Bounds()
	top, _ := m.list.RowTop(i)
	if c.Options().DragAndDrop.Enabled {
		top++
	}
	m.menuX = max(m.width-w-1, 0)
	m.menuY = headerbar.Height + top + 1
	if m.menuY+h > m.height {
		m.menuY = max(headerbar.Height+top-h, 0)
	}
	return m.menu.Init()
}

func (m *Model) openDialog(a songmenu.DialogRequested) tea.Cmd {
	switch a.Dialog {
	case songmenu.InfoDialog:
		return m.popups.ShowTrackInfo(a.Track)
	case songmenu.AddToPlaylistDialog:
		if m.svc.Playlists == nil {
			m.closeDialog()
			return nil
		}
		return m.popups.ShowPlaylistPicker(m.svc.Playlists, a.Track, m.svc.Logger)
	case songmenu.DeleteDialog:
		return m.popups.ShowDeleteConfirm(a.Track, songmenu.Delete.Label())
	case songmenu.NoDialog:
	}
	return nil
}

func (m *Model) closeDialog() {
	if m.session != nil {
		m.session.CloseDialog()
	}
	m.releaseSession()
}

// releaseSession drops the session once neither its menu nor a dialog
// is on screen.
func (m *Model) releaseSession() {
	if m.session != nil && m.session.Done() {
		m.session = nil
	}
}
