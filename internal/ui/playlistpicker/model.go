// Package playlistpicker provides the add-to-playlist dialog: pick an
// existing playlist or name a new one.
package playlistpicker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/playlists"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/cursor"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	opTimeout    = 5 * time.Second
	maxNameLen   = 64
	listOverhead = 6 // title, blank, blank, hint, border slack
)

// Store is the playlist storage the picker reads and writes.
type Store interface {
	List(ctx context.Context) ([]playlists.Playlist, error)
	Create(ctx context.Context, name string) (int64, error)
	AddTracks(ctx context.Context, playlistID int64, trackIDs []string) error
}

type listedMsg struct {
	items []playlists.Playlist
	err   error
}

// Model is the add-to-playlist dialog.
type Model struct {
	ui.Base
	store  Store
	track  library.Track
	logger *zap.Logger

	items   []playlists.Playlist
	loaded  bool
	loadErr error
	cursor  cursor.Cursor

	creating bool
	input    textinput.Model
}

// New creates a picker that adds track.
func New(store Store, track library.Track, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Playlist name"
	ti.CharLimit = maxNameLen
	ti.Prompt = "> "
	return &Model{
		store:  store,
		track:  track,
		logger: logger.Named("playlistpicker"),
		cursor: cursor.New(1),
		input:  ti,
	}
}

// Playlists returns the listed playlists.
func (m *Model) Playlists() []playlists.Playlist {
	return m.items
}

// Creating reports whether the new playlist name input is shown.
func (m *Model) Creating() bool {
	return m.creating
}

// Selected returns the highlighted playlist index.
func (m *Model) Selected() int {
	return m.cursor.Pos()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-6, 10)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		items, err := store.List(ctx)
		return listedMsg{items: items, err: err}
	}
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case listedMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.items = msg.items
		if msg.err != nil {
			m.logger.Warn("list playlists", zap.Error(msg.err))
		}
		m.cursor.ClampToBounds(len(m.items))
		return m, nil
	case tea.KeyMsg:
		if m.creating {
			return m, m.handleCreateKey(msg)
		}
		return m, m.handleListKey(msg)
	}
	if m.creating {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "j", "down", "k", "up", "g", "home", "G", "end":
		m.cursor.HandleKey(key, len(m.items), m.listHeight())
	case "enter":
		if len(m.items) == 0 {
			return m.startCreate()
		}
		p := m.items[m.cursor.Pos()]
		return m.addCmd(p.ID, p.Name, false)
	case "n":
		return m.startCreate()
	case "esc", "q":
		return func() tea.Msg { return ActionMsg(Canceled{}) }
	}
	return nil
}

func (m *Model) handleCreateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.input.Blur()
		m.input.Reset()
		return nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return nil
		}
		return m.createCmd(name)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) startCreate() tea.Cmd {
	m.creating = true
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) addCmd(id int64, name string, created bool) tea.Cmd {
	store, trackID, logger := m.store, m.track.ID, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := store.AddTracks(ctx, id, []string{trackID}); err != nil {
			logger.Warn("add to playlist", zap.Int64("playlist", id), zap.String("track", trackID), zap.Error(err))
			return ActionMsg(Notice{Text: errmsg.FormatWith(errmsg.OpPlaylistAddTrack, name, err)})
		}
		return ActionMsg(Added{PlaylistID: id, Name: name, TrackID: trackID, Created: created})
	}
}

func (m *Model) createCmd(name string) tea.Cmd {
	store, logger := m.store, m.logger
	add := m.addCmd
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		id, err := store.Create(ctx, name)
		if err != nil {
			logger.Warn("create playlist", zap.String("name", name), zap.Error(err))
			return ActionMsg(Notice{Text: errmsg.FormatWith(errmsg.OpPlaylistCreate, name, err)})
		}
		return add(id, name, true)()
	}
}

func (m *Model) listHeight() int {
	return max(m.Height()-listOverhead, 1)
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	title := s.Title.Render("Add " + render.Sanitize(m.track.DisplayTitle()) + " to playlist")

	var body, hint string
	switch {
	case m.creating:
		body = m.input.View()
		hint = "Enter: create and add, Esc: back"
	case !m.loaded:
		body = s.Muted.Render("Loading playlists…")
		hint = "Esc: cancel"
	case m.loadErr != nil:
		body = s.Error.Render(errmsg.Format(errmsg.OpPlaylistLoad, m.loadErr))
		hint = "n: new playlist, Esc: cancel"
	case len(m.items) == 0:
		body = s.Muted.Render("No playlists yet")
		hint = "n: new playlist, Esc: cancel"
	default:
		body = m.renderList()
		hint = "Enter: add, n: new playlist, Esc: cancel"
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", s.Subtle.Render(hint))
}

func (m *Model) renderList() string {
	s := styles.T().S()
	width := 0
	if m.Width() > 0 {
		width = max(m.Width()-4, 10)
	}
	start, end := m.cursor.VisibleRange(len(m.items), m.listHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.items[i]
		text := fmt.Sprintf("%s (%d)", render.Sanitize(p.Name), p.TrackCount)
		if width > 0 {
			text = render.TruncateAndPadEllipsis(text, width)
		}
		style := s.Base
		if i == m.cursor.Pos() {
			style = s.Cursor
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}
