// Package ui provides the terminal dashboard for gstate.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program whose panes are subscribers of a shared
// state.Store. Every keypress or tick that changes the State fans out through
// the Store, and each pane shows how often it has rendered, so skipped
// renders are visible while you drive the counters.
//
// # Package Structure
//
//   - app.go: Model, Update loop, layout and Run
//   - panes.go: the subscribing panes and their projections
//   - diagnostics.go: viewport tailing the glog INFO file
//   - keys.go: key bindings and help bar
//   - theme.go: color palettes and Lipgloss styles
//
// # Panes
//
//   - Counter A: view-bound, connected with state.Connect. Closing it runs
//     its teardown, which disconnects the subscription.
//   - Counter B and Ticks: hook panes reading one key with state.Key.
//   - Fault: hook pane whose projection fails while the fault flag is set.
//     The failure is logged and the pane keeps its last value.
//   - Status: hook pane on the whole State (nil projection).
//   - Diagnostics: log tail, refreshed on every tick.
//
// Hook panes render through a reactive.Instance. Deliveries only mark the
// instance dirty; the model flushes dirty panes after each Update.
//
// # Key Bindings
//
//   - a/A: counterA +1/-1
//   - b/B: counterB +1/-1
//   - Space: pause ticks
//   - f: toggle the fault flag
//   - x/r: close/reopen the counter pane
//   - T: cycle theme (saved to the config file)
//   - h or ?: toggle help
//   - e or Ctrl+C: exit
package ui
