package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docnav/internal/ui/input/types"
)

type stubContext struct {
	mode        types.Mode
	index       int
	total       int
	activatable bool
}

func (c stubContext) Mode() types.Mode           { return c.mode }
func (c stubContext) CurrentIndex() int          { return c.index }
func (c stubContext) TotalElements() int         { return c.total }
func (c stubContext) CurrentIsActivatable() bool { return c.activatable }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNormalModeMovementKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := stubContext{total: 5}

	tests := []struct {
		msg       tea.KeyMsg
		direction string
	}{
		{runeKey('j'), "down"},
		{runeKey('k'), "up"},
		{tea.KeyMsg{Type: tea.KeyDown}, "down"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{runeKey('g'), "top"},
		{runeKey('G'), "bottom"},
		{tea.KeyMsg{Type: tea.KeyHome}, "top"},
		{tea.KeyMsg{Type: tea.KeyEnd}, "bottom"},
	}

	for _, tt := range tests {
		actions, consumed := m.HandleKey(tt.msg, ctx)
		require.True(t, consumed, "key %s should be consumed", tt.msg.String())
		require.Len(t, actions, 1)
		nav, ok := actions[0].(types.NavigateAction)
		require.True(t, ok)
		assert.Equal(t, tt.direction, nav.Direction)
	}
}

func TestNormalModeEnterVisual(t *testing.T) {
	m := NewNormalMode()

	actions, consumed := m.HandleKey(runeKey('v'), stubContext{total: 3})
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.EnterVisualAction{}, actions[0])
}

func TestNormalModeActivateGatedOnTarget(t *testing.T) {
	m := NewNormalMode()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	actions, consumed := m.HandleKey(enter, stubContext{total: 3, activatable: true})
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ActivateAction{}, actions[0])

	actions, consumed = m.HandleKey(enter, stubContext{total: 3, activatable: false})
	assert.False(t, consumed)
	assert.Empty(t, actions)
}

func TestNormalModeUndefinedKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := stubContext{total: 3}

	// Yank and Esc have no meaning in normal mode
	actions, consumed := m.HandleKey(runeKey('y'), ctx)
	assert.False(t, consumed)
	assert.Empty(t, actions)

	actions, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.False(t, consumed)
	assert.Empty(t, actions)
}

func TestVisualModeYankAndCancel(t *testing.T) {
	m := NewVisualMode()
	ctx := stubContext{mode: types.ModeVisual, total: 3}

	actions, consumed := m.HandleKey(runeKey('y'), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.YankAction{}, actions[0])

	actions, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ExitVisualAction{}, actions[0])
}

func TestVisualModeSwallowsUndefinedCommands(t *testing.T) {
	m := NewVisualMode()
	ctx := stubContext{mode: types.ModeVisual, total: 3, activatable: true}

	// v and enter are undefined while selecting: consumed, no actions
	actions, consumed := m.HandleKey(runeKey('v'), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestVisualModeMovementExtends(t *testing.T) {
	m := NewVisualMode()
	ctx := stubContext{mode: types.ModeVisual, total: 3}

	actions, consumed := m.HandleKey(runeKey('j'), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	nav, ok := actions[0].(types.NavigateAction)
	require.True(t, ok)
	assert.Equal(t, "down", nav.Direction)
}

func TestBothModesQuit(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	for _, m := range []types.ModeHandler{NewNormalMode(), NewVisualMode()} {
		actions, consumed := m.HandleKey(ctrlC, stubContext{total: 1})
		require.True(t, consumed, "mode %s", m.Name())
		require.Len(t, actions, 1)
		quit, ok := actions[0].(types.QuitAction)
		require.True(t, ok)
		assert.True(t, quit.Force)
	}
}
