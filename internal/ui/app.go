package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"

	"github.com/five82/gstate/internal/config"
	"github.com/five82/gstate/internal/state"
)

// Options configures the UI.
type Options struct {
	Store      *state.Store
	Config     config.Config
	ConfigPath string // empty disables saving the theme
	LogPath    string // glog file shown in the diagnostics pane
}

// TickMsg advances the shared tick counter unless ticks are paused.
type TickMsg time.Time

// InitialState builds the shared State seeded from cfg.
func InitialState(cfg config.Config) state.Record {
	return state.Record{
		keyCounterA: cfg.CounterA,
		keyCounterB: cfg.CounterB,
		keyTicks:    0,
		keyPaused:   false,
		keyFault:    false,
	}
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store      *state.Store
	cfg        config.Config
	configPath string

	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// counter is nil while the pane is closed.
	counter *counterPane
	hooks   []*hookPane
	status  *hookPane
	diag    *diagnostics
}

// New creates the model and subscribes its panes to opts.Store.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, errors.New("ui requires a state store")
	}

	counter, err := openCounterPane(opts.Store)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		store:      opts.Store,
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		theme:      GetTheme(opts.Config.Theme),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		counter:    counter,
		hooks:      hookPanes(opts.Store),
		status:     newStatusPane(opts.Store),
		diag:       newDiagnostics(opts.LogPath),
	}
	m.diag.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.flush()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.diag.resize(msg.Width - 4)
		m.ready = true
		return m, nil

	case TickMsg:
		if !boolValue(m.store.State(), keyPaused) {
			m.store.SetState(state.Record{keyTicks: intValue(m.store.State(), keyTicks) + 1})
		}
		m.flush()
		m.diag.refresh()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.store.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.IncA):
		m.store.SetState(state.Record{keyCounterA: intValue(s, keyCounterA) + 1})
	case key.Matches(msg, m.keys.DecA):
		m.store.SetState(state.Record{keyCounterA: intValue(s, keyCounterA) - 1})
	case key.Matches(msg, m.keys.IncB):
		m.store.SetState(state.Record{keyCounterB: intValue(s, keyCounterB) + 1})
	case key.Matches(msg, m.keys.DecB):
		m.store.SetState(state.Record{keyCounterB: intValue(s, keyCounterB) - 1})

	case key.Matches(msg, m.keys.Pause):
		m.store.SetState(state.Record{keyPaused: !boolValue(s, keyPaused)})
	case key.Matches(msg, m.keys.Fault):
		m.store.SetState(state.Record{keyFault: !boolValue(s, keyFault)})

	case key.Matches(msg, m.keys.ClosePane):
		if m.counter != nil {
			m.counter.Unmount()
			m.counter = nil
		}
	case key.Matches(msg, m.keys.ReopenPane):
		if m.counter == nil {
			counter, err := openCounterPane(m.store)
			if err != nil {
				glog.Errorf("reopen counter pane: %v", err)
				break
			}
			m.counter = counter
		}

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.cfg.Theme = m.theme.Name
		if m.configPath != "" {
			if err := config.Save(m.configPath, m.cfg); err != nil {
				glog.Warningf("save theme: %v", err)
			}
		}
	}

	return m, nil
}

// flush re-renders hook panes that received a delivery.
func (m Model) flush() {
	for _, p := range m.hooks {
		p.flush()
	}
	m.status.flush()
}

// Store returns the store the model subscribes to.
func (m Model) Store() *state.Store { return m.store }

// Close tears down every pane, disconnecting it from the store.
func (m Model) Close() {
	if m.counter != nil {
		m.counter.Unmount()
	}
	for _, p := range m.hooks {
		p.close()
	}
	m.status.close()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.renderPanes(styles))
	b.WriteString("\n")
	b.WriteString(styles.Pane.Width(max(m.width-2, 10)).Render(
		styles.PaneTitle.Render("Diagnostics") + "\n" + m.diag.view(styles)))
	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	text := fmt.Sprintf("gstate  subscribers %d  theme %s", m.store.Len(), m.theme.Name)
	return styles.Header.Width(m.width).Render(text)
}

func (m Model) renderPanes(styles Styles) string {
	count := len(m.hooks) + 2
	width := max((m.width/count)-2, 16)

	boxes := make([]string, 0, count)
	if m.counter != nil {
		boxes = append(boxes, renderBox(styles, styles.Pane, width, "Counter A", m.counter.lines()))
	} else {
		boxes = append(boxes, renderBox(styles, styles.PaneClosed, width, "Counter A", []string{"closed (r to reopen)"}))
	}
	for _, p := range m.hooks {
		boxes = append(boxes, renderBox(styles, styles.Pane, width, p.title, p.lines()))
	}
	boxes = append(boxes, renderBox(styles, styles.Pane, width, m.status.title, m.status.lines()))

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderBox(styles Styles, box lipgloss.Style, width int, title string, lines []string) string {
	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render(title))
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(line))
	}
	return box.Width(width).Render(b.String())
}

// Run starts the Bubble Tea program and returns the final model.
func Run(p *tea.Program) (Model, error) {
	final, err := p.Run()
	m, _ := final.(Model)
	return m, err
}
