package state

import (
	"fmt"
	"sync"
)

// View is a lifecycle-bound delivery target. SetState receives each new
// derived value and is expected to re-render the view. The view exposes a
// single teardown slot that Connect wraps.
type View[D any] interface {
	SetState(D)
	TeardownHook() func()
	SetTeardownHook(func())
}

// Mount implements the teardown slot of View. Embed it in a view and call
// Unmount when the view is destroyed.
type Mount struct {
	teardown func()
}

// TeardownHook returns the installed teardown, or nil.
func (m *Mount) TeardownHook() func() { return m.teardown }

// SetTeardownHook replaces the teardown.
func (m *Mount) SetTeardownHook(fn func()) { m.teardown = fn }

// Unmount runs the installed teardown, if any.
func (m *Mount) Unmount() {
	if m.teardown != nil {
		m.teardown()
	}
}

// Connect subscribes view to the projection of s's State and returns the
// initial derived value so the view can seed itself; that value is not
// delivered through SetState. The view's teardown is wrapped so that it
// disconnects first and then runs the previous teardown.
//
// A nil project subscribes to the whole State (D must hold a Record). If the
// initial projection fails nothing is registered and the error is returned.
func Connect[D any](s *Store, view View[D], project Projection[D]) (D, ID, error) {
	sub, err := newSubscription[D](s.State(), viewTarget[D]{view: view}, project, s.logger)
	if err != nil {
		var zero D
		return zero, 0, fmt.Errorf("connect %T: %w", view, err)
	}
	s.register(sub)
	s.chainTeardown(view, sub.id)
	return sub.last, sub.id, nil
}

// chainTeardown installs a teardown that disconnects id and then calls the
// previously installed one. The composed teardown runs at most once.
func (s *Store) chainTeardown(view interface {
	TeardownHook() func()
	SetTeardownHook(func())
}, id ID) {
	prev := view.TeardownHook()
	var once sync.Once
	view.SetTeardownHook(func() {
		once.Do(func() {
			s.Disconnect(id)
			if prev != nil {
				prev()
			}
		})
	})
}
