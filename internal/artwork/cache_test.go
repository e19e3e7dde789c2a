package artwork

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "nested", "cache"))
	require.NoError(t, err)

	require.NoError(t, cache.Put("k1", []byte("png bytes")))
	assert.Equal(t, []byte("png bytes"), cache.Get("k1"))
	assert.Nil(t, cache.Get("missing"))

	require.NoError(t, cache.Put("k1", []byte("replaced")))
	assert.Equal(t, []byte("replaced"), cache.Get("k1"))

	leftovers, err := filepath.Glob(filepath.Join(cache.dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCache_Nil(t *testing.T) {
	var cache *Cache
	assert.NoError(t, cache.Put("k", []byte("x")))
	assert.Nil(t, cache.Get("k"))
}

func TestCache_Prune(t *testing.T) {
	cache := &Cache{dir: t.TempDir()}
	require.NoError(t, cache.Put("old", []byte("x")))
	require.NoError(t, cache.Put("fresh", []byte("x")))
	stale := time.Now().Add(-maxAge - time.Hour)
	require.NoError(t, os.Chtimes(cache.file("old"), stale, stale))

	cache.prune(time.Now().Add(-maxAge))

	assert.NoFileExists(t, cache.file("old"))
	assert.FileExists(t, cache.file("fresh"))
}
