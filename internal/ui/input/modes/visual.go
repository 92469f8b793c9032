package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docnav/internal/ui/input/types"
)

type VisualMode struct{}

func NewVisualMode() *VisualMode {
	return &VisualMode{}
}

func (m *VisualMode) Name() string {
	return "visual"
}

func (m *VisualMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.ExitVisualAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case tea.KeyEnter:
		// Activation is undefined while selecting; swallow the key
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case "y":
		return []types.Action{types.YankAction{}}, true

	case "v":
		// Already in visual mode; re-entering is undefined, swallow it
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
