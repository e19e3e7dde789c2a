// Package app is the root bubbletea model: it wires the services into the
// song list, keeps the rows in sync with the observed state and hosts the
// menu, dialogs and notices.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/app/popupctl"
	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/favorites"
	"github.com/llehouerou/songrow/internal/keymap"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/notify"
	"github.com/llehouerou/songrow/internal/observable"
	"github.com/llehouerou/songrow/internal/playlists"
	"github.com/llehouerou/songrow/internal/queue"
	"github.com/llehouerou/songrow/internal/share"
	"github.com/llehouerou/songrow/internal/ui/headerbar"
	"github.com/llehouerou/songrow/internal/ui/songcard"
	"github.com/llehouerou/songrow/internal/ui/songlist"
	"github.com/llehouerou/songrow/internal/ui/songmenu"
)

// Services are the long-lived collaborators the UI observes and edits.
type Services struct {
	Library   *library.Library
	Queue     *queue.Queue
	Favorites *favorites.Favorites
	Playlists *playlists.Playlists
	Navigator *navigation.Stack
	Sharer    share.Sharer
	Settings  *observable.Value[config.Settings]
	Loader    *artwork.Loader
	Notifier  *notify.Forwarder
	Logger    *zap.Logger
}

// Model is the root application model.
type Model struct {
	ctx    context.Context //nolint:containedctx // lifetime of the program, handed to menu sessions
	svc    Services
	logger *zap.Logger

	width, height int
	keys          *keymap.Resolver

	tab    headerbar.Tab
	list   *songlist.Model
	state  songcard.State
	subs   *subscriptions
	loadID int

	menu    *songmenu.Model
	menuX   int
	menuY   int
	session *songmenu.Session
	popups  *popupctl.Manager

	toast    string
	toastSeq int
}

// New creates the application model. Call Close when the program exits.
func New(ctx context.Context, svc Services) *Model {
	if svc.Logger == nil {
		svc.Logger = zap.NewNop()
	}
	if svc.Navigator == nil {
		svc.Navigator = navigation.NewStack(navigation.Home{})
	}
	if svc.Settings == nil {
		svc.Settings = observable.New(config.Settings{})
	}

	m := &Model{
		ctx:    ctx,
		svc:    svc,
		logger: svc.Logger.Named("app"),
		popups: popupctl.New(),
		keys:   keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal)),
		state: songcard.State{
			Index:     -1,
			Favorites: map[string]bool{},
			Settings:  svc.Settings.Get(),
		},
	}
	m.list = songlist.New(songcard.Deps{
		Services: m.menuServices(),
		Loader:   svc.Loader,
		Logger:   svc.Logger,
	})
	m.list.SetFocused(true)
	m.subs = subscribe(svc)
	return m
}

func (m *Model) menuServices() songmenu.Services {
	svc := songmenu.Services{
		Navigator: m.svc.Navigator,
		Sharer:    m.svc.Sharer,
		Logger:    m.svc.Logger,
	}
	// Typed nil pointers would defeat the nil checks entries make.
	if m.svc.Queue != nil {
		svc.Queue = m.svc.Queue
	}
	if m.svc.Favorites != nil {
		svc.Favorites = m.svc.Favorites
	}
	if m.svc.Library != nil {
		svc.Albums = m.svc.Library
	}
	return svc
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.subs.waitAll(), m.loadTracks())
}

// Close ends the subscriptions.
func (m *Model) Close() {
	m.subs.close()
}

// Tab returns the visible view.
func (m *Model) Tab() headerbar.Tab {
	return m.tab
}

// List returns the song list.
func (m *Model) List() *songlist.Model {
	return m.list
}

// Popups returns the dialog manager.
func (m *Model) Popups() *popupctl.Manager {
	return m.popups
}

// Menu returns the open menu, or nil.
func (m *Model) Menu() *songmenu.Model {
	return m.menu
}

// Toast returns the notice on screen, if any.
func (m *Model) Toast() string {
	return m.toast
}

// State returns the state rows render with.
func (m *Model) State() songcard.State {
	return m.state
}
