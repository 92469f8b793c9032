package navigator

import "errors"

// Mode represents the controller's input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeVisual:
		return "visual"
	default:
		return "normal"
	}
}

// Direction represents movement directions
type Direction string

const (
	DirectionBackward Direction = "backward"
	DirectionForward  Direction = "forward"
)

// Command is a discrete key command routed through Dispatch
type Command string

const (
	CommandMoveDown    Command = "move-down"
	CommandMoveUp      Command = "move-up"
	CommandEnterVisual Command = "enter-visual"
	CommandActivate    Command = "activate"
	CommandYank        Command = "yank"
	CommandCancel      Command = "cancel"
)

// Sentinel errors
var (
	ErrNotVisual  = errors.New("operation requires visual mode")
	ErrNoElements = errors.New("no navigable elements")
)

// State holds the controller's mutable state
type State struct {
	Cursor int
	Mode   Mode
	Anchor int // selection anchor, meaningful only while Mode == ModeVisual
}

// Range is an inclusive index range with Lo <= Hi
type Range struct {
	Lo, Hi int
}

// Len returns the number of elements in the range
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// Contains reports whether i falls inside the range
func (r Range) Contains(i int) bool {
	return i >= r.Lo && i <= r.Hi
}

// MoveResult describes the outcome of a cursor move
type MoveResult struct {
	Moved     bool // false when the element set is empty
	OldIndex  int
	NewIndex  int
	Selection *Range // recomputed range while in visual mode, nil otherwise
}

// ModeChange describes the outcome of a mode transition
type ModeChange struct {
	Changed   bool // false when the transition was a no-op
	Mode      Mode
	Selection *Range // initial range on visual entry, nil otherwise
}

// Activation carries the destination of an activated element
type Activation struct {
	Index  int
	Target string
}

// YankPayload is the text produced from the current selection
type YankPayload struct {
	Text     string
	Range    Range
	Elements int
}

// DispatchResult aggregates whatever a routed command produced
type DispatchResult struct {
	Move       *MoveResult
	ModeChange *ModeChange
	Activation *Activation
	Yank       *YankPayload
}

// Event types published on the navigator bus

// CursorMovedEvent is published on every move, including boundary
// no-ops, so cursor rendering can refresh unconditionally.
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

// SelectionChangedEvent is published whenever the visual range changes
type SelectionChangedEvent struct {
	Range Range
}

// SelectionClearedEvent is published when visual mode exits
type SelectionClearedEvent struct{}

// ModeChangedEvent is published on mode transitions
type ModeChangedEvent struct {
	Mode Mode
}

// ActivateRequestedEvent is published when an activatable element is activated
type ActivateRequestedEvent struct {
	Index  int
	Target string
}
