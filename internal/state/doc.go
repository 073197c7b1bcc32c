// Package state propagates a shared State record to view subscribers.
//
// # Overview
//
// A Store owns one flat key/value Record and a registry of subscriptions.
// Each subscription pairs a projection (Record → derived value) with a
// delivery target. When the State changes, every subscription re-runs its
// projection and only those whose result changed are delivered to, so a view
// re-renders only when the slice of state it reads has moved.
//
//	caller                Store                   subscriptions
//	┌──────────────┐     ┌──────────────────┐    ┌─────────────────────┐
//	│ SetState(p)  │────→│ merge p onto S   │    │                     │
//	│              │     │ S' == S ? stop   │    │                     │
//	│              │     │ S = S'           │───→│ project(S')         │
//	│              │     │ notify in ID     │    │ equal to last? skip │
//	│              │     │ order            │    │ deliver(derived)    │
//	└──────────────┘     └──────────────────┘    └─────────────────────┘
//
// # Subscribing
//
// There are two kinds of subscription:
//
//   - Connect binds a View. The initial derived value is returned to the
//     caller rather than delivered. The view's teardown slot is wrapped so
//     that tearing the view down disconnects it before running the view's
//     own teardown.
//   - Use binds an evaluation of a reactive Binding (see package reactive).
//     The subscription registers when the binding activates and disconnects
//     when its scope ends; the returned value is held in the binding's state
//     slot and only replaced when a changed value is delivered.
//
// Disconnect removes a subscription by ID and is idempotent.
//
// # Change Detection
//
// Two checks use ShallowEqual, which compares first-level entries by
// identity:
//
//	// Store barrier: merged state equal to current state
//	store.SetState(Record{"a": 10}) // a is already 10
//	→ no replacement, no projection calls, no deliveries
//
//	// Subscription barrier: projection result equal to last delivered
//	store.SetState(Record{"b": 1}) // projection reads only "a"
//	→ projection runs, result equal, no delivery
//
// # Failing Projections
//
// A projection that returns an error or panics during a notification is
// logged with the target's description and skipped for that cycle. A result
// with no value (nil interface, pointer or map) is skipped without logging.
// In both cases the last delivered value is kept and other subscribers are
// unaffected. SetState never reports errors.
//
// # Usage Example
//
//	store := state.New(state.Record{"a": 10, "b": 0})
//
//	type counterView struct {
//		state.Mount
//		counter state.Record
//	}
//	func (v *counterView) SetState(r state.Record) { v.counter = r }
//
//	view := &counterView{}
//	initial, _, err := state.Connect(store, view, state.Select(func(s state.Record) state.Record {
//		return state.Record{"c": s["a"]}
//	}))
//	// initial == {c: 10}
//
//	store.SetState(state.Record{"a": 20}) // view.counter == {c: 20}
//	store.SetState(state.Record{"b": 20}) // no delivery
//	view.Unmount()                        // disconnected
package state
