package state

import "fmt"

// Binding is the reactive runtime a hook subscription lives in.
//
// State returns accessors for a value held across evaluations of the
// binding; init runs only the first time. Calling set must schedule a
// re-evaluation. Effect registers setup to run once when the binding is
// activated; the cleanup it returns runs once when the binding's scope ends.
type Binding interface {
	State(init func() any) (get func() any, set func(any))
	Effect(setup func() (cleanup func()))
}

// Use subscribes the current evaluation of b to a projection of s's State
// and returns the latest derived value. Call it on every evaluation, in the
// same position.
//
// The subscription is registered when b activates and disconnected when b's
// scope ends. The returned value changes only when a notification produces a
// result that is not shallow-equal to the previous one, so it is stable
// across evaluations otherwise. A nil project returns the whole State
// (D must hold a Record).
func Use[D any](s *Store, b Binding, project Projection[D]) D {
	getSub, _ := b.State(func() any {
		return newHook(s, b, project)
	})
	sub := getSub().(*subscription[D])

	get, set := b.State(func() any { return sub.last })
	if t := sub.target.(*callbackTarget[D]); t.set == nil {
		t.set = func(v D) { set(v) }
	}

	b.Effect(func() func() {
		s.register(sub)
		return func() { s.Disconnect(sub.id) }
	})

	v, _ := get().(D)
	return v
}

// newHook creates the subscription behind Use. A failing initial projection
// is logged and leaves the zero value in place.
func newHook[D any](s *Store, b Binding, project Projection[D]) *subscription[D] {
	t := &callbackTarget[D]{name: describeBinding(b)}
	sub, err := newSubscription[D](s.State(), t, project, s.logger)
	if err == nil {
		return sub
	}
	s.logger.Errorf("state: initial projection for %s failed: %v", t.name, err)
	return &subscription[D]{
		id:      nextID(),
		project: orIdentity(project),
		target:  t,
		logger:  s.logger,
	}
}

func describeBinding(b Binding) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b)
}
