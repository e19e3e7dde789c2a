package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/observable"
	"github.com/llehouerou/songrow/internal/queue"
)

type queueChangedMsg struct{ snapshot queue.Snapshot }

type favoritesChangedMsg struct{ set map[string]bool }

type settingsChangedMsg struct{ settings config.Settings }

type libraryChangedMsg struct{}

type routeChangedMsg struct{ route navigation.Route }

// subscriptions holds one subscription per observed value. A nil field
// means the service is not configured.
type subscriptions struct {
	queue     *observable.Subscription[queue.Snapshot]
	favorites *observable.Subscription[map[string]bool]
	settings  *observable.Subscription[config.Settings]
	library   *observable.Subscription[int]
	route     *observable.Subscription[navigation.Route]

	// seen records which values delivered their initial snapshot; later
	// queue changes are persisted.
	seenQueue, seenRoute bool
}

func subscribe(svc Services) *subscriptions {
	s := &subscriptions{}
	if svc.Queue != nil {
		s.queue = svc.Queue.Snapshots().Subscribe()
	}
	if svc.Favorites != nil {
		s.favorites = svc.Favorites.Set().Subscribe()
	}
	if svc.Settings != nil {
		s.settings = svc.Settings.Subscribe()
	}
	if svc.Library != nil {
		s.library = svc.Library.Changes().Subscribe()
	}
	if svc.Navigator != nil {
		s.route = svc.Navigator.Changes().Subscribe()
	}
	return s
}

func (s *subscriptions) waitQueue() tea.Cmd {
	return observable.Wait(s.queue, func(snap queue.Snapshot) tea.Msg { return queueChangedMsg{snapshot: snap} })
}

func (s *subscriptions) waitFavorites() tea.Cmd {
	return observable.Wait(s.favorites, func(set map[string]bool) tea.Msg { return favoritesChangedMsg{set: set} })
}

func (s *subscriptions) waitSettings() tea.Cmd {
	return observable.Wait(s.settings, func(v config.Settings) tea.Msg { return settingsChangedMsg{settings: v} })
}

func (s *subscriptions) waitLibrary() tea.Cmd {
	return observable.Wait(s.library, func(int) tea.Msg { return libraryChangedMsg{} })
}

func (s *subscriptions) waitRoute() tea.Cmd {
	return observable.Wait(s.route, func(r navigation.Route) tea.Msg { return routeChangedMsg{route: r} })
}

func (s *subscriptions) waitAll() tea.Cmd {
	return tea.Batch(
		s.waitQueue(),
		s.waitFavorites(),
		s.waitSettings(),
		s.waitLibrary(),
		s.waitRoute(),
	)
}

func (s *subscriptions) close() {
	s.queue.Unsubscribe()
	s.favorites.Unsubscribe()
	s.settings.Unsubscribe()
	s.library.Unsubscribe()
	s.route.Unsubscribe()
}
