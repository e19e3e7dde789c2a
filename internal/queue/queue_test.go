package queue

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songrow/internal/state"
)

func TestNew(t *testing.T) {
	q := New(nil)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, -1, q.CurrentIndex())
	assert.Equal(t, -1, q.Index().Get())
	assert.Empty(t, q.Queue().Get())
}

func TestAdd(t *testing.T) {
	q := New(nil)
	q.Add("a", "b")
	assert.Equal(t, []string{"a", "b"}, q.Tracks())
	assert.Equal(t, -1, q.CurrentIndex(), "Add does not change playback")
	assert.Equal(t, []string{"a", "b"}, q.Queue().Get())
}

func TestAddAt(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		index       int
		wantIDs     []string
		wantCurrent int
	}{
		{"play next", 1, 2, []string{"a", "b", "x", "c"}, 1},
		{"before current shifts", 1, 0, []string{"x", "a", "b", "c"}, 2},
		{"at current shifts", 1, 1, []string{"a", "x", "b", "c"}, 2},
		{"clamped high", 0, 99, []string{"a", "b", "c", "x"}, 0},
		{"clamped low", 2, -5, []string{"x", "a", "b", "c"}, 3},
		{"nothing playing", -1, 0, []string{"x", "a", "b", "c"}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(nil)
			q.Replace([]string{"a", "b", "c"}, tt.current)
			q.AddAt("x", tt.index)
			assert.Equal(t, tt.wantIDs, q.Tracks())
			assert.Equal(t, tt.wantCurrent, q.CurrentIndex())
			assert.Equal(t, tt.wantCurrent, q.Index().Get())
		})
	}
}

func TestSnapshots_PairIDsWithIndex(t *testing.T) {
	q := New(nil)
	sub := q.Snapshots().Subscribe()
	defer sub.Unsubscribe()
	assert.Equal(t, Snapshot{Index: -1}, <-sub.C)

	q.Replace([]string{"a", "b", "c"}, 1)
	assert.Equal(t, Snapshot{IDs: []string{"a", "b", "c"}, Index: 1}, <-sub.C)

	q.AddAt("x", 0)
	snap := <-sub.C
	assert.Equal(t, Snapshot{IDs: []string{"x", "a", "b", "c"}, Index: 2}, snap)
	assert.True(t, IsCurrent(snap.IDs, snap.Index, "b"), "current track stays highlighted")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		from, to    int
		wantIDs     []string
		wantCurrent int
	}{
		{"current follows", 0, 0, 2, []string{"b", "c", "a", "d"}, 2},
		{"past current from before", 2, 0, 3, []string{"b", "c", "d", "a"}, 1},
		{"past current from after", 1, 3, 0, []string{"d", "a", "b", "c"}, 2},
		{"unrelated", 0, 2, 3, []string{"a", "b", "d", "c"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(nil)
			q.Replace([]string{"a", "b", "c", "d"}, tt.current)
			require.True(t, q.Move(tt.from, tt.to))
			assert.Equal(t, tt.wantIDs, q.Tracks())
			assert.Equal(t, tt.wantCurrent, q.CurrentIndex())
		})
	}

	q := New(nil)
	q.Add("a")
	assert.False(t, q.Move(0, 1))
	assert.False(t, q.Move(-1, 0))
	assert.True(t, q.Move(0, 0))
}

func TestRemoveID(t *testing.T) {
	q := New(nil)
	q.Replace([]string{"a", "b", "a", "c"}, 3)
	assert.Equal(t, 2, q.RemoveID("a"))
	assert.Equal(t, []string{"b", "c"}, q.Tracks())
	assert.Equal(t, 1, q.CurrentIndex())
	assert.Equal(t, "c", q.Tracks()[q.CurrentIndex()])

	assert.Equal(t, 0, q.RemoveID("zzz"))

	q.Replace([]string{"a", "b"}, 1)
	q.RemoveID("b")
	assert.Equal(t, 0, q.CurrentIndex(), "removing the last current entry clamps")
}

func TestJumpTo(t *testing.T) {
	q := New(nil)
	q.Add("a", "b")
	assert.True(t, q.JumpTo(1))
	assert.Equal(t, 1, q.CurrentIndex())
	assert.False(t, q.JumpTo(2))
	assert.Equal(t, 1, q.CurrentIndex())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	q := New(nil)
	q.Add("a", "b")
	snap := q.Queue().Get()
	q.AddAt("x", 0)
	assert.Equal(t, []string{"a", "b"}, snap)

	tracks := q.Tracks()
	tracks[0] = "mutated"
	assert.Equal(t, "x", q.Tracks()[0])
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	mgr, err := state.OpenPath(filepath.Join(t.TempDir(), "q.db"))
	require.NoError(t, err)
	defer mgr.Close()

	q := New(mgr)
	q.Replace([]string{"a", "b", "c"}, 1)
	require.NoError(t, q.Save(ctx))

	restored := New(mgr)
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, []string{"a", "b", "c"}, restored.Tracks())
	assert.Equal(t, 1, restored.CurrentIndex())
}

func TestIsCurrent(t *testing.T) {
	queue := []string{"a", "b", "c"}
	tests := []struct {
		index int
		id    string
		want  bool
	}{
		{0, "a", true},
		{1, "a", false},
		{2, "c", true},
		{3, "c", false},
		{-1, "a", false},
		{99, "a", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCurrent(queue, tt.index, tt.id), "index %d id %s", tt.index, tt.id)
	}
	assert.False(t, IsCurrent(nil, 0, "a"))
}
