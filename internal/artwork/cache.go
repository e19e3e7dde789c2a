package artwork

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Entries untouched for maxAge are removed when a cache opens.
const maxAge = 30 * 24 * time.Hour

// Cache keeps resized artwork as PNG files, one per key. A nil *Cache
// stores nothing.
type Cache struct {
	dir string
}

// NewCache opens the cache in dir, or in $XDG_CACHE_HOME/songrow/artwork
// when dir is empty, and prunes stale entries in the background.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "songrow", "artwork")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-maxAge))
	return c, nil
}

func (c *Cache) file(key string) string {
	return filepath.Join(c.dir, key+".png")
}

// Get returns the PNG stored under key, or nil. A hit refreshes the
// entry's age.
func (c *Cache) Get(key string) []byte {
	if c == nil {
		return nil
	}
	name := c.file(key)
	data, err := os.ReadFile(name)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(name, now, now)
	return data
}

// Put writes data under key. Readers never see a partial file.
func (c *Cache) Put(key string, data []byte) error {
	if c == nil {
		return nil
	}
	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.file(key))
}

// prune removes files last modified before cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || e.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		_ = os.Remove(filepath.Join(c.dir, e.Name()))
	}
}
