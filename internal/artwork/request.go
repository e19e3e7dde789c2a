package artwork

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Request identifies an artwork image to load: the track it belongs to
// and the quality tier to downscale it to.
type Request struct {
	TrackPath string
	Quality   Quality
}

// Key returns a stable identifier for the request, used both as the disk
// cache key and to match asynchronous results with the rows waiting on them.
func (r Request) Key() string {
	data := fmt.Sprintf("%s:%d", r.TrackPath, r.Quality)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
