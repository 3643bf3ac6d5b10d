package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border characters.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderTitledBox frames content with a rounded border carrying a title in
// the top edge: ╭─ Title ──────╮. The focused flag switches the border to
// the focused color. Content is constrained to the inner width and padded
// to the inner height.
func RenderTitledBox(content, title string, width, height int, focused bool) string {
	borderColor := lipgloss.TerminalColor(BorderDefaultColor)
	if focused {
		borderColor = BorderFocusedColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)

	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 1)

	top := buildTitledTop(title, innerWidth, borderStyle, titleStyle)
	bottom := borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	constrained := lipgloss.NewStyle().Width(innerWidth).Height(innerHeight).Render(content)
	contentLines := strings.Split(constrained, "\n")

	rows := make([]string, innerHeight)
	for i := range rows {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if pad := innerWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}

func buildTitledTop(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if title == "" {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	decorated := " " + title + " "
	titleWidth := lipgloss.Width(decorated) + 1 // leading ─
	if titleWidth >= innerWidth {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	var b strings.Builder
	b.WriteString(borderStyle.Render(borderTopLeft + borderHorizontal))
	b.WriteString(titleStyle.Render(decorated))
	b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, innerWidth-titleWidth) + borderTopRight))
	return b.String()
}
