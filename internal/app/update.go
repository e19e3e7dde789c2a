package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/app/popupctl"
	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/icons"
	"github.com/llehouerou/songrow/internal/keymap"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/ui/action"
	"github.com/llehouerou/songrow/internal/ui/headerbar"
	"github.com/llehouerou/songrow/internal/ui/songcard"
	"github.com/llehouerou/songrow/internal/ui/songlist"
	"github.com/llehouerou/songrow/internal/ui/songmenu"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, m.listHeight())
		m.popups.SetSize(msg.Width, msg.Height)
		if m.menu != nil {
			m.menu.SetSize(msg.Width, msg.Height)
		}
		return m, m.list.LoadVisibleArtwork()

	case queueChangedMsg:
		return m, m.handleQueueChanged(msg)
	case favoritesChangedMsg:
		m.state.Favorites = msg.set
		return m, tea.Batch(m.list.SetState(m.state), m.subs.waitFavorites())
	case settingsChangedMsg:
		if msg.settings.Icons != m.state.Settings.Icons {
			icons.Init(msg.settings.Icons)
		}
		m.state.Settings = msg.settings
		return m, tea.Batch(m.list.SetState(m.state), m.subs.waitSettings())
	case libraryChangedMsg:
		return m, tea.Batch(m.loadTracks(), m.subs.waitLibrary())
	case routeChangedMsg:
		return m, m.handleRouteChanged()

	case tracksLoadedMsg:
		return m, m.handleTracksLoaded(msg)
	case queueSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save queue", zap.Error(msg.err))
		}
		return m, nil
	case trackDeletedMsg:
		if msg.err != nil {
			return m, m.failed(errmsg.OpLibraryDelete, msg.err)
		}
		return m, m.showToast("Deleted: " + msg.track.DisplayTitle())
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case artwork.LoadedMsg:
		return m, m.list.Update(msg)
	case action.Msg:
		return m, m.handleAction(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	if _, cmd := m.popups.HandleMsg(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

func (m *Model) listHeight() int {
	return max(m.height-headerbar.Height-footerHeight, 0)
}

func (m *Model) handleQueueChanged(msg queueChangedMsg) tea.Cmd {
	m.state.Queue = msg.snapshot.IDs
	m.state.Index = msg.snapshot.Index
	cmds := []tea.Cmd{m.list.SetState(m.state), m.subs.waitQueue()}
	if m.subs.seenQueue {
		cmds = append(cmds, m.saveQueue())
	}
	m.subs.seenQueue = true
	if m.tab == headerbar.TabQueue {
		cmds = append(cmds, m.loadTracks())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleRouteChanged() tea.Cmd {
	cmds := []tea.Cmd{m.subs.waitRoute()}
	if m.subs.seenRoute && m.tab != headerbar.TabLibrary {
		m.tab = headerbar.TabLibrary
	}
	m.subs.seenRoute = true
	if m.tab == headerbar.TabLibrary {
		cmds = append(cmds, m.loadTracks())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleTracksLoaded(msg tracksLoadedMsg) tea.Cmd {
	if msg.loadID != m.loadID {
		return nil
	}
	if msg.err != nil {
		return m.failed(errmsg.OpLibraryLoad, msg.err)
	}

	entries := make([]songlist.Entry, len(msg.tracks))
	for i, t := range msg.tracks {
		opts := songcard.DefaultOptions()
		if msg.tab == headerbar.TabQueue {
			opts = m.queueOptions(t, msg.positions[i])
		} else {
			opts = libraryOptions(opts, t, msg.route)
		}
		entries[i] = songlist.Entry{Track: t, Options: opts}
	}

	if msg.tab == headerbar.TabQueue {
		m.list.SetEmptyText("The queue is empty")
	} else {
		m.list.SetEmptyText("No songs")
	}
	return m.list.SetEntries(entries)
}

func libraryOptions(opts songcard.Options, t library.Track, route navigation.Route) songcard.Options {
	switch route.(type) {
	case navigation.AlbumView:
		if t.TrackNumber > 0 {
			opts.ThumbnailLabel = strconv.Itoa(t.TrackNumber)
			opts.ThumbnailLabelStyle = songcard.LabelSubtle
		}
	case navigation.ArtistView, navigation.AlbumArtistView:
		if t.Year > 0 {
			opts.ThumbnailLabel = strconv.Itoa(t.Year)
		}
	}
	return opts
}

func (m *Model) queueOptions(t library.Track, position int) songcard.Options {
	opts := songcard.DefaultOptions()
	opts.Leading = strconv.Itoa(position + 1)
	opts.DragAndDrop = songcard.DragAndDrop{Enabled: true, Position: position}
	q, id := m.svc.Queue, t.ID
	opts.TrailingItems = []songmenu.Item{{
		Label: "Remove from Queue",
		Icon:  icons.Current().Delete,
		Run: func(*songmenu.Session) tea.Cmd {
			if q != nil {
				q.RemoveID(id)
			}
			return nil
		},
	}}
	return opts
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.popups.ActivePopup() != popupctl.None {
		_, cmd := m.popups.HandleKey(msg)
		return cmd
	}
	if m.menu != nil {
		_, cmd := m.menu.Update(msg)
		return cmd
	}

	if m.list.Dragging() {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return m.list.Update(msg)
	}
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionSwitchTab:
		return m.switchTab(1 - m.tab)
	case keymap.ActionBack:
		if m.tab == headerbar.TabLibrary {
			m.svc.Navigator.Back()
		}
		return nil
	case keymap.ActionHelp:
		return m.popups.ShowHelp()
	}
	return m.list.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.popups.ActivePopup() != popupctl.None {
		return nil
	}
	if m.menu != nil {
		msg.X -= m.menuX
		msg.Y -= m.menuY
		_, cmd := m.menu.Update(msg)
		return cmd
	}

	if msg.Y < headerbar.Height && !m.list.Dragging() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch m.header().HitTest(msg.X, m.width) {
		case headerbar.TargetBack:
			m.svc.Navigator.Back()
		case headerbar.TargetLibrary:
			return m.switchTab(headerbar.TabLibrary)
		case headerbar.TargetQueue:
			return m.switchTab(headerbar.TabQueue)
		case headerbar.TargetNone:
		}
		return nil
	}
	msg.Y -= headerbar.Height
	return m.list.Update(msg)
}

func (m *Model) switchTab(t headerbar.Tab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.list.CancelDrag()
	m.tab = t
	return m.loadTracks()
}

func (m *Model) header() headerbar.Header {
	h := headerbar.Header{Active: m.tab, Title: "Queue"}
	if m.tab == headerbar.TabLibrary {
		h.Title = m.svc.Navigator.Current().Title()
		h.CanBack = m.svc.Navigator.Depth() > 1
	}
	return h
}
