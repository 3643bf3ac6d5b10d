// Package lessonpanel provides the lesson sidebar: the course list with
// completion marks, lesson bodies rendered as markdown, and the check
// verdict for the current lesson.
package lessonpanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitplay/internal/lessons"
	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/ui/styles"
)

// CheckRequestedMsg asks the app to check the selected lesson against the
// playground history.
type CheckRequestedMsg struct {
	Lesson lessons.Lesson
}

// CheckedMsg carries a check verdict back into the panel.
type CheckedMsg struct {
	Lesson lessons.Lesson
	Result lessons.CheckResult
}

// Config wires the lesson panel.
type Config struct {
	Catalog []lessons.Lesson
	// IsCompleted reports persisted completion state; called during render.
	IsCompleted func(lessonID string) bool
}

// Model holds the lesson panel state.
type Model struct {
	catalog     []lessons.Lesson
	isCompleted func(string) bool

	cursor     int
	width      int
	height     int
	focused    bool
	lastResult *CheckedMsg
}

// New creates a lesson panel.
func New(cfg Config) Model {
	isCompleted := cfg.IsCompleted
	if isCompleted == nil {
		isCompleted = func(string) bool { return false }
	}
	return Model{
		catalog:     cfg.Catalog,
		isCompleted: isCompleted,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the panel keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// SetSize resizes the panel to the given outer dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Selected returns the lesson under the cursor.
func (m Model) Selected() (lessons.Lesson, bool) {
	if m.cursor < 0 || m.cursor >= len(m.catalog) {
		return lessons.Lesson{}, false
	}
	return m.catalog[m.cursor], true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CheckedMsg:
		res := msg
		m.lastResult = &res
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.catalog)-1 {
				m.cursor++
				m.lastResult = nil
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.lastResult = nil
			}
		case "c", "enter":
			if lesson, ok := m.Selected(); ok {
				log.Debug(log.CatLessons, "Check requested", "lesson", lesson.ID)
				return m, func() tea.Msg { return CheckRequestedMsg{Lesson: lesson} }
			}
		}
	}
	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	doneStyle := lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
	failStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)

	var b strings.Builder
	for i, l := range m.catalog {
		mark := mutedStyle.Render("○")
		if m.isCompleted(l.ID) {
			mark = doneStyle.Render("✓")
		}
		title := l.Title
		if i == m.cursor {
			title = titleStyle.Render("> " + title)
		} else {
			title = "  " + title
		}
		b.WriteString(mark + " " + title + "\n")
	}

	if lesson, ok := m.Selected(); ok {
		b.WriteString("\n")
		if body, err := lesson.RenderBody(max(m.width-4, 20)); err == nil {
			b.WriteString(body)
		} else {
			log.ErrorErr(log.CatLessons, "Markdown render failed", err, "lesson", lesson.ID)
			b.WriteString(lesson.Body)
		}
	}

	if m.lastResult != nil {
		b.WriteString("\n\n")
		if m.lastResult.Result.Passed {
			b.WriteString(doneStyle.Render("✓ Lesson complete!"))
		} else {
			b.WriteString(failStyle.Render("Not quite. Compared to the lesson:"))
			b.WriteString("\n" + m.lastResult.Result.Diff)
		}
	}

	b.WriteString("\n\n" + styles.HintStyle().Render("j/k select · enter check · ctrl+b back"))

	return styles.RenderTitledBox(b.String(), "Lessons", m.width, m.height, m.focused)
}
