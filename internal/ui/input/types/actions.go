package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type EnterVisualAction struct{}

func (a EnterVisualAction) Type() string { return "enter_visual" }

type ExitVisualAction struct{}

func (a ExitVisualAction) Type() string { return "exit_visual" }

// Selection actions
type YankAction struct{}

func (a YankAction) Type() string { return "yank" }

// Element actions
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

type ShowSourceAction struct{}

func (a ShowSourceAction) Type() string { return "show_source" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
