// Package reactive is a minimal component-instance runtime: positional state
// slots that survive re-renders, mount effects, and scoped cleanup.
//
// An Instance is driven from a single goroutine. Slots are positional, so a
// render must request them in the same order every time.
package reactive

// Instance is one live component. It satisfies state.Binding.
type Instance struct {
	name string

	slots   []*slot
	slotIdx int

	// pending holds mount effects collected during the first render.
	pending  []func() func()
	cleanups []func()

	mounted  bool
	disposed bool
	dirty    bool
	renders  int

	onInvalidate func()
}

type slot struct {
	value any
}

// Option configures an Instance.
type Option func(*Instance)

// OnInvalidate registers fn to run whenever a slot is set.
func OnInvalidate(fn func()) Option {
	return func(i *Instance) { i.onInvalidate = fn }
}

// New returns an unmounted Instance. The name identifies it in diagnostics.
func New(name string, opts ...Option) *Instance {
	i := &Instance{name: name}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// String returns the instance name.
func (i *Instance) String() string { return i.name }

// Render runs one render pass. After the first pass the instance is mounted
// and the effects it registered run, in registration order.
func (i *Instance) Render(fn func()) {
	if i.disposed {
		return
	}
	i.slotIdx = 0
	i.dirty = false
	i.renders++
	fn()

	if i.mounted {
		return
	}
	i.mounted = true
	pending := i.pending
	i.pending = nil
	for _, setup := range pending {
		if cleanup := setup(); cleanup != nil {
			i.cleanups = append(i.cleanups, cleanup)
		}
	}
}

// Flush re-renders when a slot changed since the last pass and reports
// whether it did.
func (i *Instance) Flush(fn func()) bool {
	if !i.dirty || i.disposed {
		return false
	}
	i.Render(fn)
	return true
}

// State returns accessors for the slot at the current position, creating it
// with init on the first render.
func (i *Instance) State(init func() any) (func() any, func(any)) {
	if i.slotIdx == len(i.slots) {
		i.slots = append(i.slots, &slot{value: init()})
	}
	s := i.slots[i.slotIdx]
	i.slotIdx++

	get := func() any { return s.value }
	set := func(v any) {
		if i.disposed {
			return
		}
		s.value = v
		i.dirty = true
		if i.onInvalidate != nil {
			i.onInvalidate()
		}
	}
	return get, set
}

// Effect registers setup to run once, when the instance mounts. Calls after
// mount are ignored.
func (i *Instance) Effect(setup func() func()) {
	if i.mounted || i.disposed {
		return
	}
	i.pending = append(i.pending, setup)
}

// Dispose ends the instance's scope, running cleanups in reverse order.
// It is safe to call more than once.
func (i *Instance) Dispose() {
	if i.disposed {
		return
	}
	i.disposed = true
	i.pending = nil

	cleanups := i.cleanups
	i.cleanups = nil
	for j := len(cleanups) - 1; j >= 0; j-- {
		cleanups[j]()
	}
}

// Mounted reports whether the first render has completed.
func (i *Instance) Mounted() bool { return i.mounted }

// Disposed reports whether Dispose has run.
func (i *Instance) Disposed() bool { return i.disposed }

// Dirty reports whether a slot changed since the last render.
func (i *Instance) Dirty() bool { return i.dirty }

// Renders returns how many render passes have run.
func (i *Instance) Renders() int { return i.renders }
