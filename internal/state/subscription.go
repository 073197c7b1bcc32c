package state

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// ID identifies a subscription. IDs are assigned from a process-wide counter
// and never reused.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Subscription phases. A subscription moves forward only.
const (
	phaseCreated int32 = iota
	phaseActive
	phaseDestroyed
)

var errUndefined = errors.New("projection produced no value")

// subscriber is the type-erased view of a subscription held by the registry.
type subscriber interface {
	ID() ID
	activate()
	notify(Record)
	destroy()
}

// target is the closed set of delivery targets: views and callbacks.
type target[D any] interface {
	deliver(D)
	describe() string
}

type viewTarget[D any] struct {
	view View[D]
}

func (t viewTarget[D]) deliver(v D)      { t.view.SetState(v) }
func (t viewTarget[D]) describe() string { return fmt.Sprintf("%T", t.view) }

type callbackTarget[D any] struct {
	name string
	set  func(D)
}

func (t *callbackTarget[D]) deliver(v D) {
	if t.set != nil {
		t.set(v)
	}
}

func (t *callbackTarget[D]) describe() string { return t.name }

type subscription[D any] struct {
	id      ID
	project Projection[D]
	target  target[D]
	logger  Logger
	phase   atomic.Int32

	// last is the most recently delivered value. Only the notifying
	// goroutine touches it after creation.
	last D
}

// newSubscription evaluates the projection once against r. An undefined
// initial value is kept; any other failure is returned.
func newSubscription[D any](r Record, t target[D], project Projection[D], logger Logger) (*subscription[D], error) {
	sub := &subscription[D]{
		id:      nextID(),
		project: orIdentity(project),
		target:  t,
		logger:  logger,
	}
	v, err := sub.evaluate(r)
	if err != nil && !errors.Is(err, errUndefined) {
		return nil, err
	}
	sub.last = v
	return sub, nil
}

func (s *subscription[D]) ID() ID { return s.id }

func (s *subscription[D]) activate() {
	s.phase.CompareAndSwap(phaseCreated, phaseActive)
}

func (s *subscription[D]) destroy() {
	s.phase.Store(phaseDestroyed)
}

func (s *subscription[D]) notify(r Record) {
	if s.phase.Load() != phaseActive {
		return
	}
	next, err := s.evaluate(r)
	if err != nil {
		if !errors.Is(err, errUndefined) {
			s.logger.Errorf("state: projection for %s (subscription %d) failed: %v", s.target.describe(), s.id, err)
		}
		return
	}
	if ShallowEqual(s.last, next) {
		return
	}
	s.last = next
	s.target.deliver(next)
}

// evaluate runs the projection, converting a panic into an error.
func (s *subscription[D]) evaluate(r Record) (v D, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero D
			v, err = zero, fmt.Errorf("panic: %v", p)
		}
	}()
	v, err = s.project(r)
	if err == nil && undefined(v) {
		err = errUndefined
	}
	return v, err
}

// undefined reports whether v carries no value: a nil interface, pointer or
// map.
func undefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		return rv.IsNil()
	}
	return false
}
