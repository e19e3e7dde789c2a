package playlistpicker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/playlists"
	"github.com/llehouerou/songrow/internal/state"
	"github.com/llehouerou/songrow/internal/ui/action"
	"github.com/llehouerou/songrow/internal/ui/testutil"
)

func newStore(t *testing.T) *playlists.Playlists {
	t.Helper()
	mgr, err := state.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return playlists.New(mgr.DB())
}

var track = library.Track{ID: "t1", Title: "Morning Song"}

func open(t *testing.T, store Store) (*Model, *testutil.PopupHarness) {
	t.Helper()
	m := New(store, track, nil)
	h := testutil.NewPopupHarness(m)
	h.SetSize(60, 20)
	h.SendMsg(m.Init()())
	return m, h
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	return msg.Action
}

func typeText(h *testutil.PopupHarness, s string) {
	for _, r := range s {
		h.SendMsg(testutil.Key(string(r)))
	}
}

func TestList_AddsToSelected(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	_, err := store.Create(ctx, "Road trip")
	require.NoError(t, err)

	m, h := open(t, store)
	require.Len(t, m.Playlists(), 1)
	assert.Contains(t, testutil.StripANSI(h.View()), "Road trip (0)")

	a := actionOf(t, h.SendMsg(testutil.Key("enter")))
	added, ok := a.(Added)
	require.True(t, ok)
	assert.Equal(t, "Road trip", added.Name)
	assert.False(t, added.Created)

	ids, err := store.Tracks(ctx, added.PlaylistID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)
}

func TestList_CursorMoves(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	for _, name := range []string{"A", "B", "C"} {
		_, err := store.Create(ctx, name)
		require.NoError(t, err)
	}

	m, h := open(t, store)
	h.SendMsg(testutil.Key("j"))
	h.SendMsg(testutil.Key("j"))
	h.SendMsg(testutil.Key("j"))
	assert.Equal(t, 2, m.Selected())
	h.SendMsg(testutil.Key("g"))
	assert.Equal(t, 0, m.Selected())
}

func TestCreate_NewPlaylistAndAdd(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	m, h := open(t, store)
	assert.Contains(t, testutil.StripANSI(h.View()), "No playlists yet")

	h.SendMsg(testutil.Key("n"))
	require.True(t, m.Creating())
	typeText(h, "Gym")

	a := actionOf(t, h.SendMsg(testutil.Key("enter")))
	added, ok := a.(Added)
	require.True(t, ok)
	assert.True(t, added.Created)
	assert.Equal(t, "Gym", added.Name)

	ids, err := store.Tracks(ctx, added.PlaylistID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)
}

func TestCreate_EnterOnEmptyListStartsInput(t *testing.T) {
	m, h := open(t, newStore(t))
	h.SendMsg(testutil.Key("enter"))
	assert.True(t, m.Creating())

	assert.Nil(t, h.SendMsg(testutil.Key("enter")), "blank name is ignored")
}

func TestCreate_DuplicateNameNotice(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(context.Background(), "Gym")
	require.NoError(t, err)

	_, h := open(t, store)
	h.SendMsg(testutil.Key("n"))
	typeText(h, "Gym")

	a := actionOf(t, h.SendMsg(testutil.Key("enter")))
	notice, ok := a.(Notice)
	require.True(t, ok)
	assert.Contains(t, notice.Text, "already exists")
}

func TestCreate_EscReturnsToList(t *testing.T) {
	m, h := open(t, newStore(t))
	h.SendMsg(testutil.Key("n"))
	h.SendMsg(testutil.Key("esc"))
	assert.False(t, m.Creating())

	assert.Equal(t, Canceled{}, actionOf(t, h.SendMsg(testutil.Key("esc"))))
}

type failingStore struct{}

func (failingStore) List(context.Context) ([]playlists.Playlist, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Create(context.Context, string) (int64, error) { return 0, nil }

func (failingStore) AddTracks(context.Context, int64, []string) error {
	return errors.New("disk on fire")
}

func TestList_LoadError(t *testing.T) {
	_, h := open(t, failingStore{})
	assert.Contains(t, testutil.StripANSI(h.View()), "Failed to load playlists: disk on fire")
}

func TestCreate_AddFailureNotice(t *testing.T) {
	_, h := open(t, failingStore{})
	h.SendMsg(testutil.Key("n"))
	typeText(h, "X")

	a := actionOf(t, h.SendMsg(testutil.Key("enter")))
	assert.Equal(t, Notice{Text: "Failed to add track to playlist 'X': disk on fire"}, a)
}
