package state

import (
	"cmp"
	"slices"
	"sync"
)

// Store holds a shared State record and fans changes out to subscribers.
//
// State and the registry are mutex-guarded, so State, IDs, Len and
// registration may be called from any goroutine. Notification runs on the
// goroutine that calls SetState, outside the lock; callers drive SetState
// from a single goroutine (typically the UI loop).
type Store struct {
	mu     sync.Mutex
	state  Record
	subs   []subscriber // ascending by ID
	logger Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes projection diagnostics to l instead of glog.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store seeded with initial. The record is used as-is.
func New(initial Record, opts ...Option) *Store {
	if initial == nil {
		initial = Record{}
	}
	s := &Store{state: initial, logger: glogLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current State. The record must not be modified.
func (s *Store) State() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState merges patch over the current State. When the merged record is
// shallow-equal to the current one nothing happens; otherwise the State is
// replaced and every active subscriber is notified, in ID order, before
// SetState returns.
func (s *Store) SetState(patch Record) {
	s.mu.Lock()
	next := Merge(s.state, patch)
	if ShallowEqual(s.state, next) {
		s.mu.Unlock()
		return
	}
	s.state = next
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.notify(next)
	}
}

// Disconnect removes the subscription with the given ID. Unknown IDs are
// ignored.
func (s *Store) Disconnect(id ID) {
	s.mu.Lock()
	i, found := s.index(id)
	if !found {
		s.mu.Unlock()
		return
	}
	sub := s.subs[i]
	s.subs = slices.Delete(s.subs, i, i+1)
	s.mu.Unlock()

	sub.destroy()
}

// IDs returns the registered subscription IDs in notification order.
func (s *Store) IDs() []ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]ID, len(s.subs))
	for i, sub := range s.subs {
		ids[i] = sub.ID()
	}
	return ids
}

// Len returns the number of registered subscriptions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store) register(sub subscriber) {
	s.mu.Lock()
	i, found := s.index(sub.ID())
	if !found {
		s.subs = slices.Insert(s.subs, i, sub)
	}
	s.mu.Unlock()

	sub.activate()
}

// index must be called with s.mu held.
func (s *Store) index(id ID) (int, bool) {
	return slices.BinarySearchFunc(s.subs, id, func(sub subscriber, id ID) int {
		return cmp.Compare(sub.ID(), id)
	})
}
