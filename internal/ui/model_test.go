package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docnav/internal/config"
	"docnav/internal/domain"
	"docnav/internal/eventbus"
	"docnav/internal/navigator"
)

func newTestModel(t *testing.T, texts ...string) *Model {
	t.Helper()

	bus := eventbus.New()
	t.Cleanup(bus.Close)

	m := NewModel(bus, config.DefaultConfig())

	elems := make([]domain.Element, len(texts))
	for i, text := range texts {
		elems[i] = domain.Element{ID: i, Kind: domain.KindParagraph, Text: text}
	}
	doc := domain.Document{Path: "test.md", Title: "test", Elements: elems}
	m.handleEvent(eventbus.ElementsDiscoveredEvent{Document: doc})

	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestKeysDriveNavigator(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")

	press(m, "j", "j")
	assert.Equal(t, 2, m.nav.Cursor())

	press(m, "k")
	assert.Equal(t, 1, m.nav.Cursor())

	press(m, "G")
	assert.Equal(t, 2, m.nav.Cursor())

	press(m, "g")
	assert.Equal(t, 0, m.nav.Cursor())
}

func TestVisualModeKeyFlow(t *testing.T) {
	m := newTestModel(t, "A", "B", "C", "D")

	press(m, "v", "j", "j")
	assert.Equal(t, navigator.ModeVisual, m.nav.Mode())

	r, err := m.nav.SelectionRange()
	require.NoError(t, err)
	assert.Equal(t, navigator.Range{Lo: 0, Hi: 2}, r)

	press(m, "esc")
	assert.Equal(t, navigator.ModeNormal, m.nav.Mode())
}

func TestYankSuccessExitsVisualMode(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")

	var written string
	m.clipboardWrite = func(text string) error {
		written = text
		return nil
	}

	press(m, "v", "j")

	// The yank key produces a command that performs the clipboard write
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(yankResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Equal(t, "A\nB", written)

	// Feeding the success back exits visual mode
	m.Update(result)
	assert.Equal(t, navigator.ModeNormal, m.nav.Mode())
	assert.Contains(t, m.state.StatusMessage, "Yanked 2")
}

func TestYankFailureRetainsSelection(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	m.clipboardWrite = func(string) error {
		return errors.New("no clipboard backend")
	}

	press(m, "v", "j")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)

	result, ok := cmd().(yankResultMsg)
	require.True(t, ok)
	require.Error(t, result.err)

	m.Update(result)

	// The selection survives a failed clipboard write, ready for retry
	assert.Equal(t, navigator.ModeVisual, m.nav.Mode())
	r, err := m.nav.SelectionRange()
	require.NoError(t, err)
	assert.Equal(t, navigator.Range{Lo: 0, Hi: 1}, r)
	assert.True(t, m.state.StatusIsError)

	// Retrying after the backend recovers succeeds
	m.clipboardWrite = func(string) error { return nil }
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, navigator.ModeNormal, m.nav.Mode())
}

func TestActivateOnlyFiresForLinks(t *testing.T) {
	m := newTestModel(t)
	m.handleEvent(eventbus.ElementsDiscoveredEvent{Document: domain.Document{
		Path: "test.md",
		Elements: []domain.Element{
			{ID: 0, Kind: domain.KindParagraph, Text: "plain"},
			{ID: 1, Kind: domain.KindLink, Text: "link", Target: "https://x"},
		},
	}})

	// Enter on a plain element does nothing
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	press(m, "j")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestEmptyDocumentIgnoresCommands(t *testing.T) {
	m := newTestModel(t)

	press(m, "j", "k", "v", "y", "enter", "esc")

	assert.Equal(t, 0, m.nav.Cursor())
	assert.Equal(t, navigator.ModeNormal, m.nav.Mode())
}

func TestScanEventsUpdateState(t *testing.T) {
	m := newTestModel(t, "A")

	m.handleEvent(eventbus.ScanStartedEvent{Path: "doc.md"})
	assert.True(t, m.state.Scanning)

	m.handleEvent(eventbus.ScanCompletedEvent{Path: "doc.md", ElementsFound: 1})
	assert.False(t, m.state.Scanning)
}

func TestClearStatusIgnoresStaleTimeouts(t *testing.T) {
	m := newTestModel(t, "A")

	m.setStatus("first", false)
	staleSeq := m.state.StatusSeq
	m.setStatus("second", false)

	m.Update(clearStatusMsg{seq: staleSeq})
	assert.Equal(t, "second", m.state.StatusMessage)

	m.Update(clearStatusMsg{seq: m.state.StatusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestViewRendersModeAndSelection(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Gamma")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(m, "v", "j")
	view := m.View()

	assert.Contains(t, view, "VISUAL")
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "2 selected")
}
