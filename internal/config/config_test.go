//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songrow/internal/artwork"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde with nested path", "~/music/library/albums", filepath.Join(home, "music", "library", "albums")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, SwipePlayNext, s.SwipeAction)
	assert.Equal(t, artwork.Medium, s.Quality)
	assert.Equal(t, DefaultMenuActions, s.MenuActions)
	assert.False(t, s.Notifications)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_LastWins(t *testing.T) {
	dir := t.TempDir()
	user := writeConfig(t, dir, "user.toml", `
icons = "unicode"
artwork_quality = "high"

[song_card]
swipe_action = "add_to_queue"
`)
	local := writeConfig(t, dir, "local.toml", `
artwork_quality = "low"
notifications = true

[song_card]
context_menu_actions = ["share", "details"]
`)

	cfg, err := LoadFrom(user, local)
	require.NoError(t, err)
	s, err := cfg.Settings()
	require.NoError(t, err)

	assert.Equal(t, "unicode", s.Icons)
	assert.Equal(t, artwork.Low, s.Quality)
	assert.Equal(t, SwipeAddToQueue, s.SwipeAction)
	assert.Equal(t, []string{"share", "details"}, s.MenuActions)
	assert.True(t, s.Notifications)
}

func TestSettings_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(writeConfig(t, dir, "c.toml", `
[song_card]
swipe_action = "explode"
`))
	require.NoError(t, err)
	_, err = cfg.Settings()
	require.Error(t, err)

	cfg, err = LoadFrom(writeConfig(t, dir, "q.toml", `artwork_quality = "8k"`))
	require.NoError(t, err)
	_, err = cfg.Settings()
	require.Error(t, err)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, t.TempDir(), "bad.toml", `icons = `))
	require.Error(t, err)
}

func TestSwipeAction_RoundTrip(t *testing.T) {
	for _, a := range []SwipeAction{SwipeNothing, SwipePlayNext, SwipeAddToQueue, SwipeViewAlbum} {
		got, err := ParseSwipeAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := ParseSwipeAction(" View_Album ")
	require.NoError(t, err)
	assert.Equal(t, SwipeViewAlbum, got)
}
