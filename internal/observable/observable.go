// Package observable provides a small publish/subscribe read model for
// values shared between services and UI components.
//
// A Value holds the latest snapshot. Subscribers receive the snapshot
// current at subscription time and every later change. Delivery never
// blocks the publisher: a slow subscriber only ever sees the latest value.
package observable

import "sync"

// Value is an observable value. Published values must be treated as
// immutable snapshots; publishers copy slices and maps before Set.
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[*Subscription[T]]struct{}
	closed bool
}

// New creates an observable holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		value: initial,
		subs:  make(map[*Subscription[T]]struct{}),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores a new value and publishes it to every subscriber.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	for sub := range v.subs {
		sub.send(value)
	}
}

// Update applies fn to the current value and publishes the result.
// fn runs under the value's lock and must not call back into v.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = fn(v.value)
	for sub := range v.subs {
		sub.send(v.value)
	}
	return v.value
}

// Subscribe registers a new subscriber. The current value is delivered
// immediately. Subscribing to a closed value returns an already-ended
// subscription.
func (v *Value[T]) Subscribe() *Subscription[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	sub := newSubscription(v)
	if v.closed {
		sub.end()
		return sub
	}
	v.subs[sub] = struct{}{}
	sub.send(v.value)
	return sub
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

// Close ends every subscription. Later Set calls still update the value
// but nobody is notified.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	for sub := range v.subs {
		sub.end()
	}
	clear(v.subs)
}

func (v *Value[T]) remove(sub *Subscription[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.subs, sub)
}
