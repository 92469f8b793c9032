package navigator

import (
	"strings"

	"docnav/internal/domain"
)

// Service is the navigation controller: it owns the ordered element list,
// the cursor, the mode and the selection anchor, and responds to discrete
// commands with descriptive results. It performs no I/O; rendering, status
// display and clipboard writes are the caller's concern.
type Service struct {
	elements []domain.Element
	state    *State
	bus      EventBus
}

// NewService creates a new navigation controller
func NewService(bus EventBus) *Service {
	if bus == nil {
		bus = &NullBus{}
	}
	return &Service{
		state: &State{
			Cursor: 0,
			Mode:   ModeNormal,
			Anchor: -1,
		},
		bus: bus,
	}
}

// SetElements replaces the element list and resets the controller:
// cursor back to 0, normal mode, no anchor. An empty list is valid and
// turns every movement and activation operation into a no-op.
func (s *Service) SetElements(elements []domain.Element) {
	s.elements = elements
	s.state.Cursor = 0
	s.state.Mode = ModeNormal
	s.state.Anchor = -1
}

// Elements returns the ordered element list
func (s *Service) Elements() []domain.Element {
	return s.elements
}

// Len returns the number of navigable elements
func (s *Service) Len() int {
	return len(s.elements)
}

// Cursor returns the current cursor index
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Mode returns the current mode
func (s *Service) Mode() Mode {
	return s.state.Mode
}

// Current returns the active element, if any
func (s *Service) Current() (domain.Element, bool) {
	if len(s.elements) == 0 {
		return domain.Element{}, false
	}
	return s.elements[s.state.Cursor], true
}

// Move steps the cursor one element in the given direction, clamped to
// the list bounds. A move at a boundary keeps the cursor in place but
// still yields a result and a CursorMovedEvent, so cursor rendering
// refreshes consistently.
func (s *Service) Move(direction Direction) MoveResult {
	if len(s.elements) == 0 {
		return MoveResult{}
	}

	target := s.state.Cursor
	if direction == DirectionForward {
		target++
	} else {
		target--
	}

	return s.moveTo(target)
}

// MoveTo jumps the cursor to the given index, clamped to the list bounds
func (s *Service) MoveTo(index int) MoveResult {
	if len(s.elements) == 0 {
		return MoveResult{}
	}
	return s.moveTo(index)
}

func (s *Service) moveTo(target int) MoveResult {
	old := s.state.Cursor
	s.state.Cursor = s.clampIndex(target)

	result := MoveResult{
		Moved:    true,
		OldIndex: old,
		NewIndex: s.state.Cursor,
	}

	s.bus.Publish(CursorMovedEvent{
		OldIndex: old,
		NewIndex: s.state.Cursor,
	})

	if s.state.Mode == ModeVisual {
		r := s.rangeFrom(s.state.Anchor, s.state.Cursor)
		result.Selection = &r
		s.bus.Publish(SelectionChangedEvent{Range: r})
	}

	return result
}

// EnterVisual switches to visual mode, anchoring the selection at the
// cursor. Idempotent: a second call does not move the anchor.
func (s *Service) EnterVisual() ModeChange {
	if len(s.elements) == 0 {
		return ModeChange{Mode: s.state.Mode}
	}
	if s.state.Mode == ModeVisual {
		r := s.rangeFrom(s.state.Anchor, s.state.Cursor)
		return ModeChange{Mode: ModeVisual, Selection: &r}
	}

	s.state.Mode = ModeVisual
	s.state.Anchor = s.state.Cursor

	r := s.rangeFrom(s.state.Anchor, s.state.Cursor)
	s.bus.Publish(ModeChangedEvent{Mode: ModeVisual})
	s.bus.Publish(SelectionChangedEvent{Range: r})

	return ModeChange{Changed: true, Mode: ModeVisual, Selection: &r}
}

// ExitVisual switches back to normal mode and clears the anchor.
// Idempotent, so a stray cancel from a yank callback is harmless.
func (s *Service) ExitVisual() ModeChange {
	if s.state.Mode == ModeNormal {
		return ModeChange{Mode: ModeNormal}
	}

	s.state.Mode = ModeNormal
	s.state.Anchor = -1

	s.bus.Publish(ModeChangedEvent{Mode: ModeNormal})
	s.bus.Publish(SelectionClearedEvent{})

	return ModeChange{Changed: true, Mode: ModeNormal}
}

// SelectionRange returns the inclusive range between anchor and cursor.
// Only defined in visual mode.
func (s *Service) SelectionRange() (Range, error) {
	if s.state.Mode != ModeVisual {
		return Range{}, ErrNotVisual
	}
	return s.rangeFrom(s.state.Anchor, s.state.Cursor), nil
}

// Activate emits an activation for the current element if it has a
// target. State never changes; a non-activatable element yields nil.
func (s *Service) Activate() *Activation {
	current, ok := s.Current()
	if !ok || !current.Activatable() {
		return nil
	}

	s.bus.Publish(ActivateRequestedEvent{
		Index:  s.state.Cursor,
		Target: current.Target,
	})

	return &Activation{Index: s.state.Cursor, Target: current.Target}
}

// Yank produces the selection's text: each element trimmed, joined by a
// newline, in ascending index order regardless of which way the cursor
// moved from the anchor. It does not exit visual mode; the dispatch
// layer exits only after the clipboard write succeeds, so a failed
// write leaves the selection intact for retry.
func (s *Service) Yank() (YankPayload, error) {
	r, err := s.SelectionRange()
	if err != nil {
		return YankPayload{}, err
	}

	parts := make([]string, 0, r.Len())
	for i := r.Lo; i <= r.Hi; i++ {
		parts = append(parts, strings.TrimSpace(s.elements[i].Text))
	}

	return YankPayload{
		Text:     strings.Join(parts, "\n"),
		Range:    r,
		Elements: r.Len(),
	}, nil
}

// Dispatch routes a command through the mode-gated table. Commands
// undefined for the current mode are swallowed as no-ops.
func (s *Service) Dispatch(cmd Command) DispatchResult {
	var result DispatchResult

	switch s.state.Mode {
	case ModeNormal:
		switch cmd {
		case CommandMoveDown:
			r := s.Move(DirectionForward)
			result.Move = &r
		case CommandMoveUp:
			r := s.Move(DirectionBackward)
			result.Move = &r
		case CommandActivate:
			result.Activation = s.Activate()
		case CommandEnterVisual:
			c := s.EnterVisual()
			result.ModeChange = &c
		}

	case ModeVisual:
		switch cmd {
		case CommandMoveDown:
			r := s.Move(DirectionForward)
			result.Move = &r
		case CommandMoveUp:
			r := s.Move(DirectionBackward)
			result.Move = &r
		case CommandYank:
			if payload, err := s.Yank(); err == nil {
				result.Yank = &payload
			}
		case CommandCancel:
			c := s.ExitVisual()
			result.ModeChange = &c
		}
	}

	return result
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if max := len(s.elements) - 1; index > max {
		return max
	}
	return index
}

func (s *Service) rangeFrom(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Lo: a, Hi: b}
}
