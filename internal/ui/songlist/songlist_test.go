package songlist

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui/action"
	"github.com/llehouerou/songrow/internal/ui/songcard"
	"github.com/llehouerou/songrow/internal/ui/testutil"
)

const testWidth = 40

func tracks(n int) []library.Track {
	out := make([]library.Track, n)
	for i := range out {
		out[i] = library.Track{
			ID:      fmt.Sprintf("t%d", i),
			Path:    fmt.Sprintf("/music/%02d.mp3", i),
			Title:   fmt.Sprintf("Song %d", i),
			Artists: []string{"Alice"},
		}
	}
	return out
}

func plainEntries(n int) []Entry {
	var entries []Entry
	for _, t := range tracks(n) {
		entries = append(entries, Entry{Track: t, Options: songcard.DefaultOptions()})
	}
	return entries
}

func queueEntries(n int) []Entry {
	var entries []Entry
	for i, t := range tracks(n) {
		opts := songcard.DefaultOptions()
		opts.Leading = fmt.Sprint(i + 1)
		opts.DragAndDrop = songcard.DragAndDrop{Enabled: true, Position: i}
		entries = append(entries, Entry{Track: t, Options: opts})
	}
	return entries
}

func newList(entries []Entry, height int) *Model {
	m := New(songcard.Deps{})
	m.SetSize(testWidth, height)
	m.SetFocused(true)
	m.SetEntries(entries)
	return m
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	return msg.Action
}

// loads counts the artwork loads cmd would run.
func loads(cmd tea.Cmd) int {
	if cmd == nil {
		return 0
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		n := 0
		for _, c := range msg {
			n += loads(c)
		}
		return n
	case artwork.LoadedMsg:
		return 1
	}
	return 0
}

func TestArtwork_LoadsOnlyVisibleRows(t *testing.T) {
	m := New(songcard.Deps{Loader: artwork.NewLoader(nil, nil)})
	m.SetSize(testWidth, 10)
	m.SetFocused(true)

	n := loads(m.SetEntries(plainEntries(2000)))
	assert.Equal(t, 5, n, "five two-line rows fit")
	assert.Zero(t, loads(m.LoadVisibleArtwork()), "already in flight")

	n = loads(m.Update(testutil.Key("G")))
	assert.Positive(t, n)
	assert.LessOrEqual(t, n, 5)
	assert.Zero(t, loads(m.Update(testutil.Key("k"))), "row already loaded")

	s := songcard.State{}
	s.Settings.Quality = artwork.High
	n = loads(m.SetState(s))
	assert.Positive(t, n)
	assert.LessOrEqual(t, n, 5, "quality change reloads only on-screen rows")
}

func TestView_FillsHeight(t *testing.T) {
	m := newList(plainEntries(2), 8)
	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Song 0")
	assert.Contains(t, view, "Song 1")
	assert.Len(t, testutil.SplitLines(m.View()), 4, "two rows of two lines")
	assert.Len(t, strings.Split(view, "\n"), 8)
}

func TestView_Empty(t *testing.T) {
	m := newList(nil, 3)
	m.SetEmptyText("Queue is empty")
	assert.Contains(t, testutil.StripANSI(m.View()), "Queue is empty")
}

func TestCursor_ScrollsRowsIntoView(t *testing.T) {
	m := newList(plainEntries(5), 6)
	require.Equal(t, 3, m.visibleCount())

	for range 4 {
		m.Update(testutil.Key("j"))
	}
	assert.Equal(t, 4, m.SelectedIndex())
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Song 4")
	assert.NotContains(t, view, "Song 1")

	c, _ := m.Card(4)
	assert.True(t, c.IsFocused())
	c, _ = m.Card(0)
	assert.False(t, c.IsFocused())

	m.Update(testutil.Key("g"))
	assert.Equal(t, 0, m.SelectedIndex())
	assert.Contains(t, testutil.StripANSI(m.View()), "Song 0")
}

func TestKeys_ForwardedToSelectedRow(t *testing.T) {
	m := newList(plainEntries(3), 10)
	m.Update(testutil.Key("j"))

	assert.Equal(t, songcard.Clicked{TrackID: "t1"}, actionOf(t, m.Update(testutil.Key("enter"))))
	assert.Equal(t, songcard.MenuRequested{TrackID: "t1"}, actionOf(t, m.Update(testutil.Key("."))))
}

func TestMouse_TapSelectsAndClicks(t *testing.T) {
	m := newList(plainEntries(3), 10)

	assert.Nil(t, m.Update(testutil.Press(10, 3)))
	assert.Equal(t, 1, m.SelectedIndex())
	assert.Equal(t, songcard.Clicked{TrackID: "t1"}, actionOf(t, m.Update(testutil.Release(10, 3))))
}

func TestMouse_OutsideRowsIgnored(t *testing.T) {
	m := newList(plainEntries(1), 10)
	assert.Nil(t, m.Update(testutil.Press(10, 7)))
	assert.Nil(t, m.Update(testutil.Release(10, 7)))
}

func TestMouse_WheelScrolls(t *testing.T) {
	m := newList(plainEntries(6), 4)

	m.Update(testutil.Wheel(true))
	m.Update(testutil.Wheel(true))
	assert.Equal(t, 2, m.offset)
	assert.Equal(t, 2, m.SelectedIndex(), "cursor stays on screen")

	m.Update(testutil.Wheel(false))
	assert.Equal(t, 1, m.offset)
}

func TestSetEntries_ReusesRows(t *testing.T) {
	m := newList(plainEntries(3), 10)
	before, _ := m.Card(2)

	entries := plainEntries(3)
	entries[0], entries[2] = entries[2], entries[0]
	m.SetEntries(entries)

	after, _ := m.Card(0)
	assert.Same(t, before, after)
}

func TestSetEntries_ClampsCursor(t *testing.T) {
	m := newList(plainEntries(5), 10)
	m.Select(4)
	m.SetEntries(plainEntries(2))
	assert.Equal(t, 1, m.SelectedIndex())
}

func TestDrag_KeyboardReorder(t *testing.T) {
	m := newList(queueEntries(3), 12)
	m.StartDrag(0, "t0")
	require.True(t, m.Dragging())
	assert.Equal(t, 0, m.DragHover())

	m.Update(testutil.Key("j"))
	m.Update(testutil.Key("j"))
	assert.Equal(t, 2, m.DragHover())
	c, _ := m.Card(2)
	assert.True(t, c.DropHighlighted())

	a := actionOf(t, m.Update(testutil.Key(" ")))
	assert.Equal(t, songcard.Reorder{From: 0, To: 2, TrackID: "t0"}, a)
	assert.False(t, m.Dragging())
	assert.False(t, c.DropHighlighted())
}

func TestDrag_EndZone(t *testing.T) {
	m := newList(queueEntries(3), 12)
	m.StartDrag(1, "t1")
	for range 5 {
		m.Update(testutil.Key("j"))
	}
	assert.Equal(t, 3, m.DragHover())
	assert.Contains(t, testutil.StripANSI(m.View()), "╌")

	a := actionOf(t, m.Update(testutil.Key("enter")))
	assert.Equal(t, songcard.Reorder{From: 1, To: 3, TrackID: "t1"}, a)
}

func TestDrag_EscCancels(t *testing.T) {
	m := newList(queueEntries(3), 12)
	m.StartDrag(0, "t0")
	s := m.DragSession()
	m.Update(testutil.Key("j"))

	assert.Nil(t, m.Update(testutil.Key("esc")))
	assert.False(t, m.Dragging())
	assert.False(t, s.Consumed(), "a canceled drag never drops")
	c, _ := m.Card(1)
	assert.False(t, c.DropHighlighted())
}

func TestDrag_UnknownPositionIgnored(t *testing.T) {
	m := newList(plainEntries(2), 10)
	m.StartDrag(0, "t0")
	assert.False(t, m.Dragging(), "rows without drag and drop have no position")
}

func TestDrag_MouseReorder(t *testing.T) {
	m := newList(queueEntries(3), 12)

	// Rows are three lines tall: drop zone, then two body lines. The
	// handle sits at the start of the first body line.
	a := actionOf(t, m.Update(testutil.Press(1, 1)))
	req, ok := a.(songcard.DragRequested)
	require.True(t, ok)
	m.StartDrag(req.Position, req.TrackID)

	m.Update(testutil.Drag(5, 6))
	assert.Equal(t, 2, m.DragHover())

	a = actionOf(t, m.Update(testutil.Release(5, 7)))
	assert.Equal(t, songcard.Reorder{From: 0, To: 2, TrackID: "t0"}, a)
}

func TestDrag_SetEntriesCancels(t *testing.T) {
	m := newList(queueEntries(2), 12)
	m.StartDrag(0, "t0")
	m.SetEntries(queueEntries(2))
	assert.False(t, m.Dragging())
}
