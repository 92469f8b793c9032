package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"docnav/internal/clipboard"
	"docnav/internal/config"
	"docnav/internal/eventbus"
	"docnav/internal/navigator"
	"docnav/internal/opener"
	"docnav/internal/ui/input"
	"docnav/internal/ui/input/types"
	"docnav/internal/ui/state"
	"docnav/internal/ui/views"
)

// Model is the Bubble Tea model wiring the navigation controller to its
// collaborators: input dispatch, rendering, status display, the clipboard
// and the link opener.
type Model struct {
	nav      *navigator.Service
	input    *input.Handler
	state    *state.AppState
	renderer *views.Renderer
	bus      eventbus.EventBus
	cfg      *config.Config
	open     *opener.Opener
	pager    *PagerOps

	helpModel help.Model

	// clipboardWrite is swapped out in tests
	clipboardWrite func(string) error

	width  int
	height int
}

// NewModel creates the UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	navBus := navigator.NewBus()
	navBus.Subscribe("navigator.ModeChangedEvent", func(e interface{}) {
		if event, ok := e.(navigator.ModeChangedEvent); ok {
			log.Printf("mode changed: %s", event.Mode)
		}
	})
	navBus.Subscribe("navigator.ActivateRequestedEvent", func(e interface{}) {
		if event, ok := e.(navigator.ActivateRequestedEvent); ok {
			log.Printf("activate requested: %s", event.Target)
		}
	})

	appState := state.NewAppState()
	appState.ShowLinkTargets = cfg.UISettings.ShowLinkTargets
	appState.ShowLineNumbers = cfg.UISettings.ShowLineNumbers

	return &Model{
		nav:            navigator.NewService(navBus),
		input:          input.New(),
		state:          appState,
		renderer:       views.NewRenderer(),
		bus:            bus,
		cfg:            cfg,
		open:           opener.New(cfg.OpenCommand),
		pager:          NewPagerOps(nil),
		helpModel:      help.New(),
		clipboardWrite: clipboard.Write,
	}
}

// SetProgram hands the model the running program, needed for pager handoff
func (m *Model) SetProgram(program *tea.Program) {
	m.pager.SetProgram(program)
}

// Navigator exposes the navigation controller
func (m *Model) Navigator() *navigator.Service {
	return m.nav
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// navContext adapts the navigator to the input layer's Context
type navContext struct {
	nav *navigator.Service
}

func (c navContext) Mode() types.Mode {
	if c.nav.Mode() == navigator.ModeVisual {
		return types.ModeVisual
	}
	return types.ModeNormal
}

func (c navContext) CurrentIndex() int  { return c.nav.Cursor() }
func (c navContext) TotalElements() int { return c.nav.Len() }

func (c navContext) CurrentIsActivatable() bool {
	current, ok := c.nav.Current()
	return ok && current.Activatable()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpModel.Width = msg.Width
		m.state.SetViewportHeight(msg.Height)
		m.state.EnsureVisible(m.nav.Cursor())
		return m, nil

	case tea.KeyMsg:
		actions, _ := m.input.HandleKey(msg, navContext{nav: m.nav})
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.executeAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case yankResultMsg:
		m.bus.Publish(eventbus.YankCompletedEvent{Elements: msg.elements, Err: msg.err})
		if msg.err != nil {
			// Keep visual mode and the anchor so the user can retry
			return m, m.setStatus(fmt.Sprintf("clipboard: %v", msg.err), true)
		}
		m.nav.ExitVisual()
		return m, m.setStatus(fmt.Sprintf("Yanked %d element(s)", msg.elements), false)

	case openResultMsg:
		m.bus.Publish(eventbus.OpenCompletedEvent{Target: msg.target, Err: msg.err})
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("open: %v", msg.err), true)
		}
		return m, m.setStatus(fmt.Sprintf("Opened %s", msg.target), false)

	case sourcePagerMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("pager: %v", msg.err), true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.state.StatusSeq {
			m.state.StatusMessage = ""
			m.state.StatusIsError = false
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch event := event.(type) {
	case eventbus.ScanStartedEvent:
		m.state.Scanning = true

	case eventbus.ElementsDiscoveredEvent:
		doc := event.Document
		m.state.Document = &doc
		m.state.ViewportOffset = 0
		m.nav.SetElements(doc.Elements)

	case eventbus.ScanCompletedEvent:
		m.state.Scanning = false
		return m.setStatus(fmt.Sprintf("%d element(s)", event.ElementsFound), false)

	case eventbus.ErrorEvent:
		m.state.Scanning = false
		return m.setStatus(event.Message, true)
	}

	return nil
}

func (m *Model) executeAction(action types.Action) tea.Cmd {
	switch action := action.(type) {
	case types.NavigateAction:
		switch action.Direction {
		case "up":
			m.nav.Move(navigator.DirectionBackward)
		case "down":
			m.nav.Move(navigator.DirectionForward)
		case "top":
			m.nav.MoveTo(0)
		case "bottom":
			m.nav.MoveTo(m.nav.Len() - 1)
		}
		m.state.EnsureVisible(m.nav.Cursor())

	case types.EnterVisualAction:
		m.nav.EnterVisual()

	case types.ExitVisualAction:
		m.nav.ExitVisual()

	case types.YankAction:
		payload, err := m.nav.Yank()
		if err != nil {
			// Unreachable through key dispatch; the routing table
			// never yields a yank outside visual mode.
			return nil
		}
		return func() tea.Msg {
			return yankResultMsg{
				elements: payload.Elements,
				err:      m.clipboardWrite(payload.Text),
			}
		}

	case types.ActivateAction:
		activation := m.nav.Activate()
		if activation == nil {
			return nil
		}
		m.bus.Publish(eventbus.OpenRequestedEvent{
			Target: activation.Target,
			Index:  activation.Index,
		})
		return func() tea.Msg {
			return openResultMsg{
				target: activation.Target,
				err:    m.open.Open(activation.Target),
			}
		}

	case types.ShowSourceAction:
		if m.state.Document == nil {
			return nil
		}
		path := m.state.Document.Path
		return func() tea.Msg {
			return sourcePagerMsg{err: m.pager.ShowFileInPager(path)}
		}

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case types.QuitAction:
		return tea.Quit
	}

	return nil
}

// setStatus shows a transient status message
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.StatusMessage = message
	m.state.StatusIsError = isError
	m.state.StatusSeq++
	seq := m.state.StatusSeq

	timeout := time.Duration(m.cfg.UISettings.StatusTimeoutMS) * time.Millisecond
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View implements tea.Model
func (m *Model) View() string {
	var selection *navigator.Range
	if r, err := m.nav.SelectionRange(); err == nil {
		selection = &r
	}

	viewState := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Cursor:          m.nav.Cursor(),
		Visual:          m.nav.Mode() == navigator.ModeVisual,
		Selection:       selection,
		Elements:        m.state.Elements(),
		ViewportOffset:  m.state.ViewportOffset,
		ViewportHeight:  m.state.ViewportHeight,
		StatusMessage:   m.state.StatusMessage,
		StatusIsError:   m.state.StatusIsError,
		Scanning:        m.state.Scanning,
		ShowHelp:        m.state.ShowHelp,
		ShowLinkTargets: m.state.ShowLinkTargets,
		ShowLineNumbers: m.state.ShowLineNumbers,
		HelpModel:       m.helpModel,
	}
	if m.state.Document != nil {
		viewState.Title = m.state.Document.Title
		viewState.Path = m.state.Document.Path
	}

	return m.renderer.Render(viewState)
}
