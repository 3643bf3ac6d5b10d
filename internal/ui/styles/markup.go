package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitplay/internal/playground/markup"
)

// RenderMarkup converts the interpreter's span sentinels into styled text.
// Success spans render in the success color, error spans in the error color,
// text outside any span in the primary text color. Spans do not nest; an
// unterminated span runs to the end of its line.
func RenderMarkup(s string) string {
	successStyle := lipgloss.NewStyle().Foreground(StatusSuccessColor)
	errorStyle := lipgloss.NewStyle().Foreground(StatusErrorColor)
	plainStyle := lipgloss.NewStyle().Foreground(TextPrimaryColor)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		var b strings.Builder
		style := plainStyle
		var segment strings.Builder

		flush := func() {
			if segment.Len() > 0 {
				b.WriteString(style.Render(segment.String()))
				segment.Reset()
			}
		}

		for _, r := range line {
			switch string(r) {
			case markup.BeginSuccess:
				flush()
				style = successStyle
			case markup.BeginError:
				flush()
				style = errorStyle
			case markup.End:
				flush()
				style = plainStyle
			default:
				segment.WriteRune(r)
			}
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
