// Package dnd implements in-list drag and drop of song rows.
//
// A drag starts a Session carrying loosely typed local state. Drop targets
// validate the session with Accept before highlighting, and decode it into
// a Payload when the drop lands. A payload is consumed at most once.
package dnd

import (
	"strconv"
	"sync"
)

const (
	// Label identifies song-row drags among other drag sources.
	Label = "songrow_song_drag_drop"
	// MIMETextPlain is the only MIME type song-row drags carry.
	MIMETextPlain = "text/plain"
)

// Payload is the decoded content of a song-row drag.
type Payload struct {
	Position int
	TrackID  string
}

// Session is one drag gesture in flight.
type Session struct {
	MIMETypes  []string
	Label      string
	LocalState any

	mu       sync.Mutex
	consumed bool
}

// NewSession starts a drag of the row at position showing trackID. The
// local state is the two-element list [position, trackID] as strings.
func NewSession(position int, trackID string) *Session {
	return &Session{
		MIMETypes:  []string{MIMETextPlain},
		Label:      Label,
		LocalState: []string{strconv.Itoa(position), trackID},
	}
}

// Consume decodes the session and marks it consumed. The second and later
// calls return ErrConsumed.
func (s *Session) Consume() (Payload, error) {
	p, err := Accept(s)
	if err != nil {
		return Payload{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed {
		return Payload{}, ErrConsumed
	}
	s.consumed = true
	return p, nil
}

// Consumed reports whether a drop already took the payload.
func (s *Session) Consumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}
