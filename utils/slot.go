package utils

import (
	"context"
	"sync"
)

// SingleSlot is a capacity-one mailbox with overwrite semantics: a Put while
// a value is still pending replaces the pending value, so readers only ever
// observe the most recent one.
type SingleSlot[T any] struct {
	mu     sync.Mutex
	val    T
	filled bool
	notify chan struct{}
}

// NewSingleSlot returns an empty slot.
func NewSingleSlot[T any]() *SingleSlot[T] {
	return &SingleSlot[T]{notify: make(chan struct{}, 1)}
}

// Put stores v, replacing any pending value.
func (s *SingleSlot[T]) Put(v T) {
	s.mu.Lock()
	s.val = v
	s.filled = true
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Take blocks until a value is pending or ctx is done, and consumes the
// value. ok is false only when ctx ended the wait.
func (s *SingleSlot[T]) Take(ctx context.Context) (T, bool) {
	for {
		s.mu.Lock()
		if s.filled {
			v := s.val
			var zero T
			s.val = zero
			s.filled = false
			s.mu.Unlock()
			return v, true
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			var zero T
			return zero, false
		case <-s.notify:
		}
	}
}

// Peek returns the pending value without consuming it.
func (s *SingleSlot[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val, s.filled
}
