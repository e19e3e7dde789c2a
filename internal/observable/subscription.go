package observable

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Subscription delivers values published by a Value.
type Subscription[T any] struct {
	// C receives the latest published value.
	C <-chan T
	// Done is closed when the subscription ends.
	Done <-chan struct{}

	ch    chan T
	done  chan struct{}
	once  sync.Once
	owner *Value[T]
}

func newSubscription[T any](owner *Value[T]) *Subscription[T] {
	s := &Subscription[T]{
		ch:    make(chan T, 1),
		done:  make(chan struct{}),
		owner: owner,
	}
	s.C = s.ch
	s.Done = s.done
	return s
}

// send delivers value without blocking, replacing a pending value that
// the subscriber has not read yet. Callers hold the owner's lock, so there
// is a single sender per subscription.
func (s *Subscription[T]) send(value T) {
	select {
	case s.ch <- value:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- value:
	default:
	}
}

func (s *Subscription[T]) end() {
	s.once.Do(func() { close(s.done) })
}

// Unsubscribe detaches the subscription from its value and closes Done.
// Safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	if s == nil {
		return
	}
	s.owner.remove(s)
	s.end()
}

// Wait returns a command that blocks until the subscription delivers a
// value and wraps it into a message. It returns a nil message once the
// subscription has ended, which stops the listen loop.
func Wait[T any](sub *Subscription[T], wrap func(T) tea.Msg) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-sub.Done:
			return nil
		default:
		}
		select {
		case v := <-sub.C:
			return wrap(v)
		case <-sub.Done:
			return nil
		}
	}
}
