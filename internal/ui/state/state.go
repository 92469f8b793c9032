package state

import (
	"docnav/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Document data
	Document *domain.Document
	Scanning bool

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the element list
	StatusMessage  string
	StatusIsError  bool
	StatusSeq      int // guards stale status-timeout messages
	ShowHelp       bool
	HelpScroll     int

	// Display settings
	ShowLinkTargets bool
	ShowLineNumbers bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default, updated on the first resize
	}
}

// Elements returns the document's elements, or nil before the scan lands
func (s *AppState) Elements() []domain.Element {
	if s.Document == nil {
		return nil
	}
	return s.Document.Elements
}

// EnsureVisible adjusts the viewport so the cursor stays on screen
func (s *AppState) EnsureVisible(cursor int) {
	if cursor < s.ViewportOffset {
		s.ViewportOffset = cursor
	}
	if cursor >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = cursor - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// SetViewportHeight updates the height, reserving space for the chrome
func (s *AppState) SetViewportHeight(height int) {
	// Title, mode line, status bar and help bar take a few rows
	effective := height - 6
	if effective < 1 {
		effective = 1
	}
	s.ViewportHeight = effective
}
