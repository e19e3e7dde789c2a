// Package queue holds the playback queue: the ordered track ids and the
// index of the current entry.
package queue

import (
	"context"
	"slices"
	"sync"

	"github.com/llehouerou/songrow/internal/observable"
	"github.com/llehouerou/songrow/internal/state"
)

// Store persists the queue between runs.
type Store interface {
	SaveQueue(ctx context.Context, q state.QueueState) error
	GetQueue(ctx context.Context) (state.QueueState, error)
}

// Snapshot pairs the track ids with the current index of the same change.
type Snapshot struct {
	IDs   []string
	Index int
}

// Queue is the playback queue. It is safe for concurrent use; changes are
// published through the Queue, Index and Snapshots observables.
type Queue struct {
	mu      sync.Mutex
	ids     []string
	current int // -1 if nothing playing

	store     Store
	tracks    *observable.Value[[]string]
	index     *observable.Value[int]
	snapshots *observable.Value[Snapshot]
}

// New creates an empty queue. store may be nil to disable persistence.
func New(store Store) *Queue {
	return &Queue{
		current:   -1,
		store:     store,
		tracks:    observable.New[[]string](nil),
		index:     observable.New(-1),
		snapshots: observable.New(Snapshot{Index: -1}),
	}
}

// Queue returns the observable track id sequence.
func (q *Queue) Queue() *observable.Value[[]string] {
	return q.tracks
}

// Index returns the observable current index.
func (q *Queue) Index() *observable.Value[int] {
	return q.index
}

// Snapshots returns the observable ids and index, published together so
// a subscriber never pairs a new order with a stale index.
func (q *Queue) Snapshots() *observable.Value[Snapshot] {
	return q.snapshots
}

// publish must be called with mu held.
func (q *Queue) publish() {
	ids := slices.Clone(q.ids)
	q.tracks.Set(ids)
	q.index.Set(q.current)
	q.snapshots.Set(Snapshot{IDs: slices.Clone(ids), Index: q.current})
}

// CurrentIndex returns the index of the current entry (-1 if none).
func (q *Queue) CurrentIndex() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Tracks returns a copy of the queued track ids.
func (q *Queue) Tracks() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.ids)
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ids)
}

// Add appends ids without changing playback.
func (q *Queue) Add(ids ...string) {
	if len(ids) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, ids...)
	q.publish()
}

// AddAt inserts id at index, clamped to [0, Len]. Inserting at or before
// the current entry shifts the current index so the same track stays
// current.
func (q *Queue) AddAt(id string, index int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	index = max(0, min(index, len(q.ids)))
	q.ids = slices.Insert(q.ids, index, id)
	if q.current >= 0 && index <= q.current {
		q.current++
	}
	q.publish()
}

// Move moves the entry at from to to. The current track follows its
// entry. Returns false if either index is out of bounds.
func (q *Queue) Move(from, to int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.ids)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}

	id := q.ids[from]
	q.ids = slices.Delete(q.ids, from, from+1)
	q.ids = slices.Insert(q.ids, to, id)

	switch {
	case q.current == from:
		q.current = to
	case from < q.current && to >= q.current:
		q.current--
	case from > q.current && to <= q.current:
		q.current++
	}
	q.publish()
	return true
}

// Replace clears the queue, adds ids, and makes index current.
// An out-of-range index leaves nothing playing.
func (q *Queue) Replace(ids []string, index int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = slices.Clone(ids)
	q.current = -1
	if index >= 0 && index < len(q.ids) {
		q.current = index
	}
	q.publish()
}

// JumpTo makes index current. Returns false if index is out of bounds.
func (q *Queue) JumpTo(index int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.ids) {
		return false
	}
	q.current = index
	q.publish()
	return true
}

// RemoveID removes every entry for id, adjusting the current index the
// same way a single removal does.
func (q *Queue) RemoveID(id string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	removed := 0
	for i := len(q.ids) - 1; i >= 0; i-- {
		if q.ids[i] != id {
			continue
		}
		q.ids = slices.Delete(q.ids, i, i+1)
		removed++
		if q.current > i {
			q.current--
		} else if q.current == i && q.current >= len(q.ids) {
			q.current = len(q.ids) - 1
		}
	}
	if removed > 0 {
		q.publish()
	}
	return removed
}

// Save persists the queue.
func (q *Queue) Save(ctx context.Context) error {
	if q.store == nil {
		return nil
	}
	q.mu.Lock()
	snapshot := state.QueueState{CurrentIndex: q.current, TrackIDs: slices.Clone(q.ids)}
	q.mu.Unlock()
	return q.store.SaveQueue(ctx, snapshot)
}

// Load restores the persisted queue, replacing the current contents.
func (q *Queue) Load(ctx context.Context) error {
	if q.store == nil {
		return nil
	}
	saved, err := q.store.GetQueue(ctx)
	if err != nil {
		return err
	}
	q.Replace(saved.TrackIDs, saved.CurrentIndex)
	return nil
}

// IsCurrent reports whether id is the current entry of queue. An index
// outside the queue yields false.
func IsCurrent(queue []string, index int, id string) bool {
	if index < 0 || index >= len(queue) {
		return false
	}
	return queue[index] == id
}
