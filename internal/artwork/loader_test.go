package artwork

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func newTestLoader(t *testing.T) (*Loader, *Cache) {
	t.Helper()
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	return NewLoader(cache, zap.NewNop()), cache
}

func TestLoad_FolderCoverIsResizedAndCached(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01 - song.mp3")
	require.NoError(t, os.WriteFile(track, []byte("not really audio"), 0o600))
	writePNG(t, filepath.Join(dir, "cover.png"), 1200, 600)

	loader, cache := newTestLoader(t)
	req := Request{TrackPath: track, Quality: Low}

	img, err := loader.Load(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
	assert.NotNil(t, cache.Get(req.Key()), "resized artwork should be cached")

	// Second load is served from the cache even if the cover disappears.
	require.NoError(t, os.Remove(filepath.Join(dir, "cover.png")))
	img, err = loader.Load(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestLoad_NoArtwork(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.flac")
	require.NoError(t, os.WriteFile(track, []byte("x"), 0o600))

	loader, _ := newTestLoader(t)
	_, err := loader.Load(context.Background(), Request{TrackPath: track, Quality: Medium})
	assert.ErrorIs(t, err, ErrNoArtwork)
}

func TestLoad_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	writePNG(t, filepath.Join(dir, "folder.png"), 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader, _ := newTestLoader(t)
	_, err := loader.Load(ctx, Request{TrackPath: track})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_WaitsForFreeSlot(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	writePNG(t, filepath.Join(dir, "cover.png"), 10, 10)
	req := Request{TrackPath: track, Quality: Low}

	loader, _ := newTestLoader(t)
	require.NoError(t, loader.sem.Acquire(context.Background(), maxConcurrentLoads))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := loader.Load(ctx, req)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	loader.sem.Release(maxConcurrentLoads)
	img, err := loader.Load(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestLoadCmd_ReportsKey(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	writePNG(t, filepath.Join(dir, "cover.png"), 40, 40)

	loader, _ := newTestLoader(t)
	req := Request{TrackPath: track, Quality: Lossless}

	msg := loader.LoadCmd(context.Background(), req)()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, req.Key(), loaded.Key)
	require.NoError(t, loaded.Err)
	assert.Equal(t, 40, loaded.Image.Bounds().Dx())
}

func TestRequestKey(t *testing.T) {
	a := Request{TrackPath: "/m/a.mp3", Quality: Low}
	assert.Equal(t, a.Key(), Request{TrackPath: "/m/a.mp3", Quality: Low}.Key())
	assert.NotEqual(t, a.Key(), Request{TrackPath: "/m/a.mp3", Quality: High}.Key())
	assert.NotEqual(t, a.Key(), Request{TrackPath: "/m/b.mp3", Quality: Low}.Key())
}

func TestFindCoverFile_Priority(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "folder.png"), 2, 2)
	writePNG(t, filepath.Join(dir, "cover.png"), 2, 2)

	assert.Equal(t, filepath.Join(dir, "cover.png"), FindCoverFile(filepath.Join(dir, "x.mp3")))
	assert.Empty(t, FindCoverFile(filepath.Join(t.TempDir(), "x.mp3")))
}
