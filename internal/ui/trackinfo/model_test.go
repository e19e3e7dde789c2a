package trackinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui/action"
	"github.com/llehouerou/songrow/internal/ui/testutil"
)

func sampleTrack(path string) library.Track {
	return library.Track{
		ID:           "t1",
		Path:         path,
		Title:        "Morning Song",
		Artists:      []string{"Alice", "Bob"},
		AlbumArtists: []string{"Alice"},
		Album:        "Dawn",
		Year:         1999,
		TrackNumber:  3,
		DiscNumber:   1,
	}
}

func TestRead_MissingFile(t *testing.T) {
	d := Read(sampleTrack(filepath.Join(t.TempDir(), "gone.mp3")))
	require.Error(t, d.FileErr)
	assert.Zero(t, d.Size)
}

func TestRead_NotAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o600))

	d := Read(sampleTrack(path))
	require.NoError(t, d.FileErr)
	assert.Equal(t, int64(2048), d.Size)
	assert.Equal(t, "audio/mpeg", d.MIMEType)
	assert.Error(t, d.AudioErr)
}

func TestLoadCmd_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := LoadCmd(ctx, sampleTrack("/nonexistent"))()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.Details.FileErr)
}

func TestView_LibraryFields(t *testing.T) {
	m := New(sampleTrack("/music/dawn/03.mp3"))
	m.SetSize(80, 24)
	view := testutil.StripANSI(m.View())

	for _, want := range []string{"Morning Song", "Alice, Bob", "Dawn", "1999", "3 (disc 1)", "/music/dawn/03.mp3", "loading…"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Genre", "empty fields are skipped")
}

func TestView_FileDetails(t *testing.T) {
	m := New(sampleTrack("/music/dawn/03.mp3"))
	m.SetSize(80, 24)

	m.Update(LoadedMsg{Details: Details{
		Track:      m.Track(),
		MIMEType:   "audio/mpeg",
		Size:       3 * 1024 * 1024,
		Modified:   time.Now().Add(-2 * time.Hour),
		Duration:   3*time.Minute + 7*time.Second,
		Bitrate:    320,
		SampleRate: 44100,
		Channels:   2,
	}})
	require.True(t, m.Loaded())

	view := testutil.StripANSI(m.View())
	for _, want := range []string{"audio/mpeg", "3.0 MiB", "2 hours ago", "3:07", "320 kbps", "44.1 kHz"} {
		assert.Contains(t, view, want)
	}
}

func TestView_IgnoresOtherTracks(t *testing.T) {
	m := New(sampleTrack("/a.mp3"))
	m.Update(LoadedMsg{Details: Details{Track: library.Track{ID: "other"}}})
	assert.False(t, m.Loaded())
}

func TestView_FileError(t *testing.T) {
	m := New(sampleTrack("/a.mp3"))
	m.Update(LoadedMsg{Details: Details{Track: m.Track(), FileErr: os.ErrNotExist}})
	assert.Contains(t, testutil.StripANSI(m.View()), "unavailable")
}

func TestKeys_Close(t *testing.T) {
	for _, key := range []string{"esc", "enter", "q"} {
		h := testutil.NewPopupHarness(New(sampleTrack("/a.mp3")))
		cmd := h.SendMsg(testutil.Key(key))
		require.NotNil(t, cmd, key)
		msg, ok := cmd().(action.Msg)
		require.True(t, ok)
		assert.Equal(t, Closed{}, msg.Action)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(0))
	assert.Equal(t, "4:05", formatDuration(4*time.Minute+5*time.Second))
	assert.Equal(t, "1:02:03", formatDuration(time.Hour+2*time.Minute+3*time.Second))
}
