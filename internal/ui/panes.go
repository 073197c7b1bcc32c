package ui

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/five82/gstate/internal/reactive"
	"github.com/five82/gstate/internal/state"
)

// Shared state keys.
const (
	keyCounterA = "counterA"
	keyCounterB = "counterB"
	keyTicks    = "ticks"
	keyPaused   = "paused"
	keyFault    = "fault"
)

var errFaultInjected = errors.New("fault injected")

// counterPane is a view-bound subscriber: it receives {counter: counterA}
// through SetState and is disconnected by its teardown.
type counterPane struct {
	state.Mount

	id      state.ID
	value   state.Record
	renders int
}

var counterProjection = state.Select(func(s state.Record) state.Record {
	return state.Record{"counter": s[keyCounterA]}
})

func openCounterPane(store *state.Store) (*counterPane, error) {
	p := &counterPane{}
	p.SetTeardownHook(func() {
		glog.Infof("counter pane (subscription %d) closed after %d renders", p.id, p.renders)
	})

	initial, id, err := state.Connect(store, p, counterProjection)
	if err != nil {
		return nil, fmt.Errorf("open counter pane: %w", err)
	}
	p.id = id
	p.value = initial
	p.renders = 1
	return p, nil
}

// SetState implements state.View.
func (p *counterPane) SetState(v state.Record) {
	p.value = v
	p.renders++
}

func (p *counterPane) lines() []string {
	return []string{
		fmt.Sprintf("counter   %v", p.value["counter"]),
		fmt.Sprintf("renders   %d", p.renders),
		fmt.Sprintf("sub       #%d", p.id),
	}
}

// hookPane is a function-bound subscriber rendered through a reactive
// instance. body runs on every render and returns the pane's lines.
type hookPane struct {
	title  string
	inst   *reactive.Instance
	render func()
	body   []string
}

func newHookPane(title string, body func(b state.Binding) []string) *hookPane {
	p := &hookPane{title: title, inst: reactive.New(title)}
	p.render = func() { p.body = body(p.inst) }
	p.inst.Render(p.render)
	return p
}

// flush re-renders the pane if a delivery changed it.
func (p *hookPane) flush() bool {
	return p.inst.Flush(p.render)
}

func (p *hookPane) close() {
	p.inst.Dispose()
}

func (p *hookPane) lines() []string {
	out := make([]string, 0, len(p.body)+1)
	out = append(out, p.body...)
	out = append(out, fmt.Sprintf("renders   %d", p.inst.Renders()))
	return out
}

// faultProjection reads both counters unless the fault flag is set, in which
// case it fails and the pane keeps its last value.
func faultProjection(s state.Record) (state.Record, error) {
	if fault, _ := s[keyFault].(bool); fault {
		return nil, errFaultInjected
	}
	return state.Pick(keyCounterA, keyCounterB)(s)
}

func hookPanes(store *state.Store) []*hookPane {
	return []*hookPane{
		newHookPane("Counter B", func(b state.Binding) []string {
			v := state.Use(store, b, state.Key[int](keyCounterB))
			return []string{fmt.Sprintf("counterB  %d", v)}
		}),
		newHookPane("Ticks", func(b state.Binding) []string {
			v := state.Use(store, b, state.Key[int](keyTicks))
			return []string{fmt.Sprintf("ticks     %d", v)}
		}),
		newHookPane("Fault", func(b state.Binding) []string {
			v := state.Use[state.Record](store, b, faultProjection)
			return []string{fmt.Sprintf("a+b       %d", intValue(v, keyCounterA)+intValue(v, keyCounterB))}
		}),
	}
}

// newStatusPane subscribes to the whole State, so it re-renders on every
// change.
func newStatusPane(store *state.Store) *hookPane {
	return newHookPane("Status", func(b state.Binding) []string {
		s := state.Use[state.Record](store, b, nil)
		return []string{
			fmt.Sprintf("paused    %t", boolValue(s, keyPaused)),
			fmt.Sprintf("fault     %t", boolValue(s, keyFault)),
			fmt.Sprintf("keys      %d", len(s)),
		}
	})
}

func intValue(r state.Record, key string) int {
	n, _ := r[key].(int)
	return n
}

func boolValue(r state.Record, key string) bool {
	b, _ := r[key].(bool)
	return b
}
