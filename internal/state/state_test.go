package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(filepath.Join(t.TempDir(), "state", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestOpenPath_CreatesSchema(t *testing.T) {
	m := openTest(t)

	for _, table := range []string{"library_tracks", "queue_state", "queue_tracks", "favorites", "playlists", "playlist_tracks"} {
		var name string
		err := m.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestOpenPath_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	m, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, m.SaveQueue(context.Background(), QueueState{CurrentIndex: 0, TrackIDs: []string{"a"}}))
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	q, err := m.GetQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, q.TrackIDs)
}

func TestGetQueue_FirstRun(t *testing.T) {
	m := openTest(t)

	q, err := m.GetQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -1, q.CurrentIndex)
	assert.Empty(t, q.TrackIDs)
}

func TestSaveQueue_RoundTripAndOverwrite(t *testing.T) {
	m := openTest(t)
	ctx := context.Background()

	require.NoError(t, m.SaveQueue(ctx, QueueState{CurrentIndex: 1, TrackIDs: []string{"a", "b", "c"}}))
	require.NoError(t, m.SaveQueue(ctx, QueueState{CurrentIndex: 0, TrackIDs: []string{"c", "a"}}))

	q, err := m.GetQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, q.CurrentIndex)
	assert.Equal(t, []string{"c", "a"}, q.TrackIDs)
}

func TestGetQueue_ClampsStaleIndex(t *testing.T) {
	m := openTest(t)
	ctx := context.Background()

	require.NoError(t, m.SaveQueue(ctx, QueueState{CurrentIndex: 5, TrackIDs: []string{"a", "b"}}))

	q, err := m.GetQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, q.CurrentIndex)
}

func TestOpenPath_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	m, err := OpenPath(path)
	require.NoError(t, err)
	_, err = m.DB().Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion+1)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = OpenPath(path)
	assert.ErrorContains(t, err, "newer than supported")
}
