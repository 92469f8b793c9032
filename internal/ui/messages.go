package ui

import (
	"docnav/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// yankResultMsg contains the outcome of a clipboard write
type yankResultMsg struct {
	elements int
	err      error
}

// openResultMsg contains the outcome of opening an activation target
type openResultMsg struct {
	target string
	err    error
}

// sourcePagerMsg contains the result of a source pager session
type sourcePagerMsg struct {
	err error
}

// clearStatusMsg clears the transient status message
type clearStatusMsg struct {
	seq int
}
