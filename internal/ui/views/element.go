package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docnav/internal/domain"
)

// ElementRenderer renders individual element lines
type ElementRenderer struct {
	styles          *Styles
	showLinkTargets bool
	showLineNumbers bool
}

// NewElementRenderer creates a new element renderer
func NewElementRenderer(styles *Styles, showLinkTargets, showLineNumbers bool) *ElementRenderer {
	return &ElementRenderer{
		styles:          styles,
		showLinkTargets: showLinkTargets,
		showLineNumbers: showLineNumbers,
	}
}

// RenderLine renders one element row with its cursor and selection markers
func (r *ElementRenderer) RenderLine(e domain.Element, active, selected bool, width int) string {
	marker := "  "
	if active {
		marker = r.styles.Cursor.Render("❯ ")
	}

	var line strings.Builder
	line.WriteString(marker)

	if r.showLineNumbers {
		line.WriteString(r.styles.LineNumber.Render(fmt.Sprintf("%4d ", e.Line)))
	}

	body := r.renderBody(e)
	if selected {
		body = r.styles.SelectionBg.Render(body)
	}
	line.WriteString(body)

	return truncate(line.String(), width)
}

func (r *ElementRenderer) renderBody(e domain.Element) string {
	switch e.Kind {
	case domain.KindHeading:
		prefix := strings.Repeat("#", e.Level) + " "
		return r.styles.Heading.Render(prefix + e.Text)

	case domain.KindLink:
		text := r.styles.Link.Render(e.Text)
		if r.showLinkTargets && e.Target != "" {
			text += " " + r.styles.LinkTarget.Render("("+e.Target+")")
		}
		return text

	case domain.KindListItem:
		text := r.styles.ListItem.Render("• " + e.Text)
		if e.Activatable() && r.showLinkTargets {
			text += " " + r.styles.LinkTarget.Render("("+e.Target+")")
		}
		return text

	default:
		text := e.Text
		if e.Activatable() {
			text += " " + r.styles.LinkTarget.Render("⎘")
		}
		return text
	}
}

// truncate caps a rendered line at the terminal width
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
