// Package songlist lays out song rows in a scrolling list: cursor,
// keyboard and mouse routing to the rows, and the drag session that
// reorders them.
package songlist

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/cursor"
	"github.com/llehouerou/songrow/internal/ui/songcard"
)

// Entry is one row to show.
type Entry struct {
	Track   library.Track
	Options songcard.Options
}

// Model is a list of song rows.
type Model struct {
	ui.Base
	deps   songcard.Deps
	state  songcard.State
	logger *zap.Logger

	cards  []*songcard.Model
	cursor cursor.Cursor
	offset int

	// capture is the row that received the last press; motion and
	// release go to it until the button is released.
	capture int
	drag    *dragState
	empty   string
}

// New creates an empty list.
func New(deps songcard.Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		deps:    deps,
		logger:  logger.Named("songlist"),
		cursor:  cursor.New(0),
		capture: -1,
		empty:   "No songs",
	}
}

// SetEmptyText sets what the list shows when it has no rows.
func (m *Model) SetEmptyText(s string) {
	m.empty = s
}

// SetEntries replaces the rows. Rows for tracks already shown are reused
// so their artwork stays loaded; the returned command loads artwork for
// the new rows that are on screen.
func (m *Model) SetEntries(entries []Entry) tea.Cmd {
	m.cancelDrag()
	m.capture = -1

	reuse := make(map[string][]*songcard.Model, len(m.cards))
	for _, c := range m.cards {
		id := c.Track().ID
		reuse[id] = append(reuse[id], c)
	}

	cards := make([]*songcard.Model, 0, len(entries))
	for _, e := range entries {
		if pool := reuse[e.Track.ID]; len(pool) > 0 && pool[0].Track().Path == e.Track.Path {
			c := pool[0]
			reuse[e.Track.ID] = pool[1:]
			c.SetOptions(e.Options)
			c.CancelGesture()
			cards = append(cards, c)
			continue
		}
		cards = append(cards, songcard.New(e.Track, e.Options, m.state, m.deps))
	}
	m.cards = cards
	m.cursor.ClampToBounds(len(cards))
	m.layoutCards()
	return m.LoadVisibleArtwork()
}

// SetState refreshes the shared state of every row. A quality change
// drops every thumbnail and reloads the ones on screen.
func (m *Model) SetState(s songcard.State) tea.Cmd {
	requality := s.Settings.Quality != m.state.Settings.Quality
	m.state = s
	for _, c := range m.cards {
		if requality {
			c.DropArtwork()
		}
		c.SetState(s)
	}
	return m.LoadVisibleArtwork()
}

// LoadVisibleArtwork starts artwork loads for on-screen rows that have
// none loaded or in flight.
func (m *Model) LoadVisibleArtwork() tea.Cmd {
	from, to := m.visibleRange()
	var cmds []tea.Cmd
	for i := from; i < to; i++ {
		if cmd := m.cards[i].EnsureArtwork(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// SetSize sets the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.layoutCards()
}

// SetFocused sets whether the list has keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.layoutCards()
}

func (m *Model) layoutCards() {
	for i, c := range m.cards {
		c.SetSize(m.Width(), 0)
		c.SetFocused(m.IsFocused() && i == m.cursor.Pos())
	}
	m.ensureVisible()
}

// Len returns the number of rows.
func (m *Model) Len() int {
	return len(m.cards)
}

// Card returns the row at i.
func (m *Model) Card(i int) (*songcard.Model, bool) {
	if i < 0 || i >= len(m.cards) {
		return nil, false
	}
	return m.cards[i], true
}

// SelectedIndex returns the cursor row index.
func (m *Model) SelectedIndex() int {
	return m.cursor.Pos()
}

// Selected returns the cursor row.
func (m *Model) Selected() (*songcard.Model, bool) {
	return m.Card(m.cursor.Pos())
}

// Tracks returns the tracks of every row in order.
func (m *Model) Tracks() []library.Track {
	tracks := make([]library.Track, len(m.cards))
	for i, c := range m.cards {
		tracks[i] = c.Track()
	}
	return tracks
}

// Select moves the cursor to row i.
func (m *Model) Select(i int) {
	if len(m.cards) == 0 {
		return
	}
	if old, ok := m.Selected(); ok && i != m.cursor.Pos() {
		old.CancelGesture()
	}
	m.cursor.Jump(i, len(m.cards), len(m.cards))
	m.layoutCards()
}

// Update handles input for the list. Mouse coordinates are relative to
// the list's top-left corner.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case artwork.LoadedMsg:
		for _, c := range m.cards {
			c.Update(msg)
		}
	case tea.KeyMsg:
		if m.drag != nil {
			return tea.Batch(m.handleDragKey(msg), m.LoadVisibleArtwork())
		}
		return tea.Batch(m.handleKey(msg), m.LoadVisibleArtwork())
	case tea.MouseMsg:
		return tea.Batch(m.handleMouse(msg), m.LoadVisibleArtwork())
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "j", "down", "k", "up", "g", "home", "G", "end", "ctrl+d", "ctrl+u":
		if old, ok := m.Selected(); ok {
			old.CancelGesture()
		}
		m.cursor.HandleKey(key, len(m.cards), max(m.visibleCount(), 2))
		m.layoutCards()
		return nil
	}
	if c, ok := m.Selected(); ok {
		return c.Update(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.scroll(1)
		return nil
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.scroll(-1)
		return nil
	}

	if m.drag != nil {
		return m.handleDragMouse(msg)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		i, y := m.rowAt(msg.Y)
		if i < 0 || i >= len(m.cards) {
			return nil
		}
		m.Select(i)
		m.capture = i
		return m.forward(i, msg, y)
	case tea.MouseActionMotion, tea.MouseActionRelease:
		i := m.capture
		if i < 0 || i >= len(m.cards) {
			return nil
		}
		if msg.Action == tea.MouseActionRelease {
			m.capture = -1
		}
		top, ok := m.rowTop(i)
		if !ok {
			top = msg.Y
		}
		return m.forward(i, msg, msg.Y-top)
	}
	return nil
}

func (m *Model) forward(i int, msg tea.MouseMsg, y int) tea.Cmd {
	msg.Y = y
	return m.cards[i].Update(msg)
}

// scroll moves the viewport by delta rows, dragging the cursor along
// when it would leave the viewport.
func (m *Model) scroll(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.offset = min(max(m.offset+delta, 0), len(m.cards)-1)
	first, last := m.offset, m.offset+max(m.visibleCount(), 1)-1
	pos := min(max(m.cursor.Pos(), first), last)
	if pos != m.cursor.Pos() {
		m.cursor.Jump(pos, len(m.cards), len(m.cards))
	}
	for i, c := range m.cards {
		c.SetFocused(m.IsFocused() && i == m.cursor.Pos())
	}
}
