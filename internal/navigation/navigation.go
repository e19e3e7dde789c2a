// Package navigation defines the destinations a song row can open and a
// history-keeping navigator.
package navigation

import (
	"slices"
	"sync"

	"github.com/llehouerou/songrow/internal/observable"
)

// Route is a navigation destination.
type Route interface {
	// Title is shown in the header of the destination view.
	Title() string
	route()
}

// Home is the library root.
type Home struct{}

// AlbumView shows one album.
type AlbumView struct {
	ID   string
	Name string
}

// ArtistView shows the tracks of a track artist.
type ArtistView struct {
	Name string
}

// AlbumArtistView shows the tracks of an album artist.
type AlbumArtistView struct {
	Name string
}

func (Home) Title() string { return "Library" }

func (r AlbumView) Title() string {
	if r.Name != "" {
		return "Album: " + r.Name
	}
	return "Album"
}

func (r ArtistView) Title() string      { return "Artist: " + r.Name }
func (r AlbumArtistView) Title() string { return "Album artist: " + r.Name }

func (Home) route()            {}
func (AlbumView) route()       {}
func (ArtistView) route()      {}
func (AlbumArtistView) route() {}

// Navigator opens routes.
type Navigator interface {
	Navigate(Route)
}

// Stack is a Navigator that keeps a back history.
type Stack struct {
	mu      sync.Mutex
	history []Route
	current *observable.Value[Route]
}

// NewStack creates a navigator positioned at root.
func NewStack(root Route) *Stack {
	return &Stack{
		history: []Route{root},
		current: observable.New(root),
	}
}

// Navigate pushes r. Navigating to the route already shown does nothing.
func (s *Stack) Navigate(r Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.history[len(s.history)-1] == r {
		return
	}
	s.history = append(s.history, r)
	s.current.Set(r)
}

// Back pops the current route. Returns false at the root.
func (s *Stack) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) <= 1 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	s.current.Set(s.history[len(s.history)-1])
	return true
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history[len(s.history)-1]
}

// Depth returns the number of routes in the history, root included.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// History returns a copy of the history, root first.
func (s *Stack) History() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// Changes returns the observable current route.
func (s *Stack) Changes() *observable.Value[Route] {
	return s.current
}
