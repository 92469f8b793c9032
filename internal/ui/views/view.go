package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"docnav/internal/domain"
	"docnav/internal/navigator"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Title           string
	Path            string
	Elements        []domain.Element
	Cursor          int
	Visual          bool
	Selection       *navigator.Range
	ViewportOffset  int
	ViewportHeight  int
	StatusMessage   string
	StatusIsError   bool
	Scanning        bool
	ShowHelp        bool
	ShowLinkTargets bool
	ShowLineNumbers bool
	HelpModel       help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	keys   KeyMap
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		keys:   DefaultKeyMap(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	if state.ShowHelp {
		content.WriteString(r.renderHelpOverlay(state))
	} else {
		content.WriteString(r.renderElements(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatusLine(state))
	content.WriteString("\n")
	content.WriteString(state.HelpModel.View(r.keys.ForMode(state.Visual)))

	return content.String()
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("docnav")

	title := state.Title
	if title == "" {
		title = state.Path
	}

	parts := []string{logo}
	if title != "" {
		parts = append(parts, r.styles.Dim.Render(title))
	}
	if state.Scanning {
		parts = append(parts, r.styles.Dim.Render("scanning..."))
	}

	return strings.Join(parts, "  ")
}

func (r *Renderer) renderElements(state ViewState) string {
	if len(state.Elements) == 0 {
		if state.Scanning {
			return r.styles.Dim.Render("  Loading document...")
		}
		return r.styles.Dim.Render("  No navigable elements in this document.")
	}

	elemRender := NewElementRenderer(r.styles, state.ShowLinkTargets, state.ShowLineNumbers)

	start := state.ViewportOffset
	if start > len(state.Elements)-1 {
		start = len(state.Elements) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + state.ViewportHeight
	if end > len(state.Elements) {
		end = len(state.Elements)
	}

	lines := make([]string, 0, end-start+2)

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render("  ↑ more"))
	}

	for i := start; i < end; i++ {
		active := i == state.Cursor
		selected := state.Selection != nil && state.Selection.Contains(i)
		lines = append(lines, elemRender.RenderLine(state.Elements[i], active, selected, state.Width))
	}

	if end < len(state.Elements) {
		lines = append(lines, r.styles.Scroll.Render("  ↓ more"))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	parts := []string{}

	if state.Visual {
		parts = append(parts, r.styles.ModeVisual.Render(" VISUAL "))
		if state.Selection != nil {
			parts = append(parts, r.styles.Dim.Render(
				fmt.Sprintf("%d selected", state.Selection.Len())))
		}
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}

	if len(parts) == 0 && len(state.Elements) > 0 {
		parts = append(parts, r.styles.Dim.Render(
			fmt.Sprintf("%d/%d", state.Cursor+1, len(state.Elements))))
	}

	return strings.Join(parts, "  ")
}

func (r *Renderer) renderHelpOverlay(state ViewState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("docnav Help"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move between elements")))
	b.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("g/G"), descStyle.Render("Jump to first/last element")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Selection"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("v"), descStyle.Render("Enter visual mode")))
	b.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("y"), descStyle.Render("Yank selection to clipboard")))
	b.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Leave visual mode")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Elements"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Open the current element's link")))
	b.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("o"), descStyle.Render("View document source in pager")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Other"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	b.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return b.String()
}
