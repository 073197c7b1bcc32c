package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Counters
	IncA key.Binding
	DecA key.Binding
	IncB key.Binding
	DecB key.Binding

	// Store flags
	Pause key.Binding
	Fault key.Binding

	// Panes
	ClosePane  key.Binding
	ReopenPane key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		IncA: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "counterA +1"),
		),
		DecA: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "counterA -1"),
		),
		IncB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "counterB +1"),
		),
		DecB: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "counterB -1"),
		),

		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Pause ticks"),
		),
		Fault: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle fault"),
		),

		ClosePane: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close counter pane"),
		),
		ReopenPane: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reopen counter pane"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.IncA, k.IncB, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.IncA, k.DecA, k.IncB, k.DecB},
		{k.Pause, k.Fault},
		{k.ClosePane, k.ReopenPane},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
