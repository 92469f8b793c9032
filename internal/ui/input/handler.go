package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"docnav/internal/ui/input/modes"
	"docnav/internal/ui/input/types"
)

// Handler routes key messages to the handler for the current mode.
// It holds no mode state of its own: the navigation controller owns the
// mode, and the context reports it per key.
type Handler struct {
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		modes: make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeVisual] = modes.NewVisualMode()

	return h
}

// HandleKey dispatches a key to the current mode's handler. The second
// return value reports whether the key was consumed; consumed keys get
// no further default handling.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[ctx.Mode()]
	if handler == nil {
		return nil, false
	}

	return handler.HandleKey(msg, ctx)
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName(ctx types.Context) string {
	if handler := h.modes[ctx.Mode()]; handler != nil {
		return handler.Name()
	}
	return ""
}

// RegisterMode registers or replaces a mode handler
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
