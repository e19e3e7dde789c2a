// Package songcard renders one song as an interactive list row: artwork
// thumbnail, title, artists, favorite heart and menu control, with drag
// reordering and a swipe gesture.
package songcard

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/dnd"
	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/songmenu"
)

const (
	// swipeStep is the progress one key press adds.
	swipeStep = 0.25
	// minSwipeDistance is the shortest mouse drag, in columns, that
	// completes a swipe.
	minSwipeDistance = 8

	opTimeout = 5 * time.Second
)

// Deps are the collaborators a row acts on.
type Deps struct {
	Services songmenu.Services
	Loader   *artwork.Loader
	Logger   *zap.Logger
}

// Model is one song row.
type Model struct {
	ui.Base
	track library.Track
	opts  Options
	state State
	deps  Deps

	logger *zap.Logger
	target *dnd.Target
	drop   *dnd.Payload

	artKey string
	thumb  string

	swipe float64
	press *pressState
}

type pressState struct {
	x, y  int
	moved bool
}

// New creates a row for track.
func New(track library.Track, opts Options, state State, deps Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		track:  track,
		state:  state,
		deps:   deps,
		logger: logger.Named("songcard"),
	}
	m.SetOptions(opts)
	return m
}

// Track returns the row's track.
func (m *Model) Track() library.Track {
	return m.track
}

// Options returns the row's options.
func (m *Model) Options() Options {
	return m.opts
}

// SetOptions replaces the row's options.
func (m *Model) SetOptions(opts Options) {
	dndChanged := opts.DragAndDrop != m.opts.DragAndDrop || m.target == nil
	m.opts = opts
	if !opts.DragAndDrop.Enabled {
		m.target = nil
		return
	}
	if dndChanged {
		m.target = dnd.NewTarget(opts.DragAndDrop.Position, func(p dnd.Payload) {
			m.drop = &p
		}, m.logger)
	}
}

// State returns the state the row renders with.
func (m *Model) State() State {
	return m.state
}

// SetState refreshes the shared state. It returns a command when the
// artwork must be reloaded for a new quality.
func (m *Model) SetState(s State) tea.Cmd {
	reload := s.Settings.Quality != m.state.Settings.Quality && m.artKey != ""
	m.state = s
	if reload {
		return m.loadArtwork()
	}
	return nil
}

// Height returns the number of lines the row renders.
func (m *Model) Height() int {
	h := thumbRows
	if m.opts.DragAndDrop.Enabled {
		h++
	}
	if m.opts.ThumbnailLabel != "" {
		h++
	}
	return h
}

// IsCurrent reports whether the row shows the current queue entry.
func (m *Model) IsCurrent() bool {
	return m.opts.AutoHighlight && m.state.IsCurrent(m.track.ID)
}

// IsFavorite reports whether the row's track is a favorite.
func (m *Model) IsFavorite() bool {
	return m.state.IsFavorite(m.track.ID)
}

func (m *Model) heartVisible() bool {
	return !m.opts.DisableHeartIcon && m.IsFavorite()
}

// SwipeProgress returns how far the current swipe has gone, from 0 to 1.
func (m *Model) SwipeProgress() float64 {
	return m.swipe
}

// CancelGesture drops a partial swipe or press, used when focus leaves
// the row.
func (m *Model) CancelGesture() {
	m.swipe = 0
	m.press = nil
}

// DropHighlighted reports whether a compatible drag hovers the drop zone.
func (m *Model) DropHighlighted() bool {
	return m.target != nil && m.target.Highlighted()
}

// Init starts loading the artwork.
func (m *Model) Init() tea.Cmd {
	return m.loadArtwork()
}

// EnsureArtwork loads the artwork unless it is already loaded or in
// flight for the current quality.
func (m *Model) EnsureArtwork() tea.Cmd {
	if m.artKey != "" && m.artKey == m.track.ArtworkRequest(m.state.Settings.Quality).Key() {
		return nil
	}
	return m.loadArtwork()
}

// DropArtwork forgets the thumbnail so the next EnsureArtwork reloads it.
func (m *Model) DropArtwork() {
	m.artKey = ""
	m.thumb = ""
}

func (m *Model) loadArtwork() tea.Cmd {
	req := m.track.ArtworkRequest(m.state.Settings.Quality)
	m.artKey = req.Key()
	m.thumb = ""
	if m.deps.Loader == nil {
		return nil
	}
	loader := m.deps.Loader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return loader.LoadCmd(ctx, req)()
	}
}

// Update handles input routed to the row. Mouse coordinates are relative
// to the row's top-left corner.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case artwork.LoadedMsg:
		m.handleArtwork(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleArtwork(msg artwork.LoadedMsg) {
	if msg.Key != m.artKey {
		return
	}
	if msg.Err != nil {
		if !errors.Is(msg.Err, artwork.ErrNoArtwork) {
			m.logger.Debug(errmsg.Format(errmsg.OpArtworkLoad, msg.Err), zap.String("track", m.track.ID))
		}
		return
	}
	m.thumb = artwork.Thumbnail(msg.Image, thumbCols, thumbRows)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "l", "right":
		return m.advanceSwipe(swipeStep)
	case "h", "left":
		m.swipe = max(m.swipe-swipeStep, 0)
		return nil
	}
	m.swipe = 0

	switch key {
	case "enter":
		return m.click()
	case "f":
		if m.heartVisible() {
			return m.unfavorite()
		}
	case ".":
		return emit(MenuRequested{TrackID: m.track.ID})
	case " ", "space":
		if m.opts.DragAndDrop.Enabled {
			return emit(DragRequested{Position: m.opts.DragAndDrop.Position, TrackID: m.track.ID})
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handlePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		if m.press == nil {
			return nil
		}
		dx := msg.X - m.press.x
		if dx != 0 || msg.Y != m.press.y {
			m.press.moved = true
		}
		m.swipe = min(max(float64(dx)/float64(m.swipeDistance()), 0), 1)
	case tea.MouseActionRelease:
		if m.press == nil {
			return nil
		}
		moved := m.press.moved
		m.press = nil
		if m.swipe >= 1 {
			return m.completeSwipe()
		}
		m.swipe = 0
		if !moved {
			return m.click()
		}
	}
	return nil
}

func (m *Model) handlePress(x, y int) tea.Cmd {
	switch m.HitTest(x, y) {
	case RegionHandle:
		return emit(DragRequested{Position: m.opts.DragAndDrop.Position, TrackID: m.track.ID})
	case RegionHeart:
		return m.unfavorite()
	case RegionMenu:
		return emit(MenuRequested{TrackID: m.track.ID})
	case RegionBody:
		m.press = &pressState{x: x, y: y}
	case RegionNone, RegionDropZone:
	}
	return nil
}

func (m *Model) swipeDistance() int {
	return max(m.Width()/3, minSwipeDistance)
}

func (m *Model) click() tea.Cmd {
	return emit(Clicked{TrackID: m.track.ID})
}

// unfavorite runs when the heart is tapped. The heart is only shown for
// favorites, so it never favorites.
func (m *Model) unfavorite() tea.Cmd {
	fav := m.deps.Services.Favorites
	if fav == nil {
		return nil
	}
	id, logger := m.track.ID, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := fav.Unfavorite(ctx, id); err != nil {
			logger.Warn("unfavorite", zap.String("track", id), zap.Error(err))
			return ActionMsg(Notice{Text: errmsg.Format(errmsg.OpFavoriteToggle, err)})
		}
		return nil
	}
}

func (m *Model) advanceSwipe(step float64) tea.Cmd {
	m.swipe = min(m.swipe+step, 1)
	if m.swipe >= 1 {
		return m.completeSwipe()
	}
	return nil
}

// completeSwipe runs the configured swipe action and resets the gesture.
func (m *Model) completeSwipe() tea.Cmd {
	m.swipe = 0
	m.press = nil

	svc := m.deps.Services
	kind := m.state.Settings.SwipeAction
	track := m.track
	done := emit(Swiped{Action: kind, TrackID: track.ID})

	switch kind {
	case config.SwipePlayNext:
		if svc.Queue != nil {
			svc.Queue.AddAt(track.ID, svc.Queue.CurrentIndex()+1)
		}
	case config.SwipeAddToQueue:
		if svc.Queue != nil {
			svc.Queue.Add(track.ID)
		}
	case config.SwipeViewAlbum:
		if svc.Albums == nil || svc.Navigator == nil {
			return nil
		}
		logger := m.logger
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			defer cancel()
			id, ok, err := svc.Albums.AlbumIDFromTrack(ctx, track)
			if err != nil {
				logger.Warn("album lookup", zap.String("track", track.ID), zap.Error(err))
				return ActionMsg(Notice{Text: errmsg.Format(errmsg.OpAlbumLookup, err)})
			}
			if !ok {
				return nil
			}
			svc.Navigator.Navigate(navigation.AlbumView{ID: id, Name: track.Album})
			return done()
		}
	case config.SwipeNothing:
		return nil
	}
	return done
}

// DragEnter reports a drag moving over the row's drop zone. It returns
// whether the zone accepts the session.
func (m *Model) DragEnter(s *dnd.Session) bool {
	if m.target == nil {
		return false
	}
	return m.target.Enter(s)
}

// DragExit reports the drag leaving the drop zone.
func (m *Model) DragExit() {
	if m.target != nil {
		m.target.Exit()
	}
}

// Drop delivers s to the drop zone. An accepted drop emits Reorder; a
// rejected or repeated one does nothing.
func (m *Model) Drop(s *dnd.Session) tea.Cmd {
	if m.target == nil {
		return nil
	}
	m.drop = nil
	if !m.target.Drop(s) {
		return nil
	}
	m.target.Reset()
	p := m.drop
	m.drop = nil
	if p == nil {
		return nil
	}
	return emit(Reorder{From: p.Position, To: m.opts.DragAndDrop.Position, TrackID: p.TrackID})
}
