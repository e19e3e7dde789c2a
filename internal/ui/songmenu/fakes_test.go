package songmenu

import (
	"context"
	"errors"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/navigation"
)

type fakeQueue struct {
	ids     []string
	current int
}

func (q *fakeQueue) Add(ids ...string) { q.ids = append(q.ids, ids...) }

func (q *fakeQueue) AddAt(id string, index int) {
	index = min(max(index, 0), len(q.ids))
	q.ids = append(q.ids[:index], append([]string{id}, q.ids[index:]...)...)
}

func (q *fakeQueue) CurrentIndex() int { return q.current }

type fakeFavorites struct {
	set      map[string]bool
	err      error
	deadline bool
}

func (f *fakeFavorites) Favorite(ctx context.Context, id string) error {
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	f.set[id] = true
	return nil
}

func (f *fakeFavorites) Unfavorite(ctx context.Context, id string) error {
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	delete(f.set, id)
	return nil
}

type fakeAlbums struct {
	id    string
	ok    bool
	err   error
	calls int
}

func (a *fakeAlbums) AlbumIDFromTrack(context.Context, library.Track) (string, bool, error) {
	a.calls++
	return a.id, a.ok, a.err
}

type fakeNavigator struct {
	routes []navigation.Route
}

func (n *fakeNavigator) Navigate(r navigation.Route) { n.routes = append(n.routes, r) }

type fakeSharer struct {
	uri, mime string
	err       error
	deadline  bool
}

func (s *fakeSharer) Share(ctx context.Context, uri, mimeType string) error {
	s.uri, s.mime = uri, mimeType
	_, s.deadline = ctx.Deadline()
	return s.err
}

var errBoom = errors.New("boom")

type fixture struct {
	queue     *fakeQueue
	favorites *fakeFavorites
	albums    *fakeAlbums
	nav       *fakeNavigator
	sharer    *fakeSharer
}

func newFixture() *fixture {
	return &fixture{
		queue:     &fakeQueue{ids: []string{"a", "b", "c"}, current: 1},
		favorites: &fakeFavorites{set: map[string]bool{}},
		albums:    &fakeAlbums{id: "album-1", ok: true},
		nav:       &fakeNavigator{},
		sharer:    &fakeSharer{},
	}
}

func (f *fixture) services() Services {
	return Services{
		Queue:     f.queue,
		Favorites: f.favorites,
		Albums:    f.albums,
		Navigator: f.nav,
		Sharer:    f.sharer,
	}
}

func testTrack() library.Track {
	return library.Track{
		ID:           "t1",
		Path:         "/music/Artist/Album/01 Intro.mp3",
		Title:        "Intro",
		Artists:      []string{"Alice", "Bob"},
		AlbumArtists: []string{"Alice"},
		Album:        "Album",
	}
}

func (f *fixture) session(isFavorite bool) *Session {
	return NewSession(context.Background(), f.services(), testTrack(), isFavorite, nil)
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func find(items []Item, label string) (Item, bool) {
	for _, it := range items {
		if it.Label == label {
			return it, true
		}
	}
	return Item{}, false
}
