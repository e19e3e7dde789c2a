package artwork

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for artwork
	"image/png"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dhowden/tag"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // WebP decoder for folder covers
	"golang.org/x/sync/semaphore"
)

// maxConcurrentLoads bounds how many cache misses read and decode at once.
const maxConcurrentLoads = 4

// ErrNoArtwork is returned when a track has neither embedded artwork nor
// a cover file next to it.
var ErrNoArtwork = errors.New("no artwork")

// coverNames lists common cover filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg", "cover.webp",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// Loader resolves artwork requests to downscaled images.
type Loader struct {
	cache  *Cache
	sem    *semaphore.Weighted
	logger *zap.Logger
}

// NewLoader creates a loader. cache may be nil to disable disk caching.
func NewLoader(cache *Cache, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		cache:  cache,
		sem:    semaphore.NewWeighted(maxConcurrentLoads),
		logger: logger.Named("artwork"),
	}
}

// LoadedMsg carries the result of an asynchronous artwork load.
type LoadedMsg struct {
	Key   string
	Image image.Image
	Err   error
}

// LoadCmd loads req in the background and reports a LoadedMsg.
func (l *Loader) LoadCmd(ctx context.Context, req Request) tea.Cmd {
	return func() tea.Msg {
		img, err := l.Load(ctx, req)
		return LoadedMsg{Key: req.Key(), Image: img, Err: err}
	}
}

// Load returns the artwork for req, downscaled to its quality tier.
func (l *Loader) Load(ctx context.Context, req Request) (image.Image, error) {
	key := req.Key()
	if data := l.cache.Get(key); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
		l.logger.Debug("discarding unreadable cache entry", zap.String("key", key))
	}

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)

	data, err := extract(req.TrackPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode artwork for %s: %w", req.TrackPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img = Resize(img, req.Quality)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return img, nil //nolint:nilerr // the image is usable even if it cannot be cached
	}
	if err := l.cache.Put(key, buf.Bytes()); err != nil {
		l.logger.Warn("cache artwork", zap.String("track", req.TrackPath), zap.Error(err))
	}

	return img, nil
}

// extract returns the embedded picture of the track, falling back to a
// cover file in the track's directory.
func extract(trackPath string) ([]byte, error) {
	if data, err := embedded(trackPath); err == nil && len(data) > 0 {
		return data, nil
	}

	if path := FindCoverFile(trackPath); path != "" {
		return os.ReadFile(path)
	}
	return nil, ErrNoArtwork
}

func embedded(trackPath string) ([]byte, error) {
	f, err := os.Open(trackPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	pic := m.Picture()
	if pic == nil {
		return nil, ErrNoArtwork
	}
	return pic.Data, nil
}

// FindCoverFile looks for a cover image in the same directory as the
// track. Returns the path to the file, or empty string if not found.
func FindCoverFile(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
