// Package app is the composition root for gstate.
//
// Run loads the config, points glog at the log directory, seeds a
// state.Store from the configured counters, builds the ui.Model and starts
// the Bubble Tea program. A background ticker sends ui.TickMsg into the
// program at the configured interval; the Update loop turns each tick into a
// SetState, so every notification is driven from the program goroutine.
//
//	Run()
//	  ├─> config.Load()      read ~/.config/gstate/config.toml
//	  ├─> setupLogging()     glog files under log_dir
//	  ├─> state.New()        shared store
//	  ├─> ui.New()           panes subscribe
//	  ├─> StartTicker()      ui.TickMsg every tick_seconds
//	  └─> ui.Run()           blocks until quit or ctx done
//
// When the program exits the final model is closed, which tears down every
// pane and disconnects its subscription.
//
// Errors loading the config or creating the log directory are returned from
// Run. Projection failures inside the store are logged and never stop the UI.
package app
