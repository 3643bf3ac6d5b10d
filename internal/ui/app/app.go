// Package app composes the playground terminal and the lesson panel into
// the root Bubble Tea model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitplay/internal/lessons"
	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/progress"
	"github.com/zjrosen/gitplay/internal/ui/lessonpanel"
	"github.com/zjrosen/gitplay/internal/ui/terminal"
)

// ConfigReloadedMsg is sent from the config watcher after a live theme
// change; it forces a repaint with the new colors.
type ConfigReloadedMsg struct{}

// Config wires the root model.
type Config struct {
	Terminal terminal.Model
	Catalog  []lessons.Lesson
	Progress *progress.Service
	// DemoScript, when non-empty, plays once at startup.
	DemoScript []string
}

// Model is the root application model.
type Model struct {
	terminal  terminal.Model
	panel     lessonpanel.Model
	progress  *progress.Service
	demo      []string
	showPanel bool
	width     int
	height    int
}

// New creates the root model.
func New(cfg Config) Model {
	return Model{
		terminal: cfg.Terminal,
		panel: lessonpanel.New(lessonpanel.Config{
			Catalog:     cfg.Catalog,
			IsCompleted: cfg.Progress.IsCompleted,
		}),
		progress: cfg.Progress,
		demo:     cfg.DemoScript,
	}
}

// startDemoMsg kicks off the scripted tour after the first Update cycle, so
// the state change survives Init's value semantics.
type startDemoMsg struct{}

// Init starts cursor blink and, when configured, the demo script.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.terminal.Init()}
	if len(m.demo) > 0 {
		cmds = append(cmds, func() tea.Msg { return startDemoMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.layout(), nil

	case ConfigReloadedMsg:
		log.Debug(log.CatUI, "Theme reloaded")
		return m, nil

	case startDemoMsg:
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.StartDemo(m.demo)
		return m, cmd

	case terminal.CommandExecutedMsg:
		m.progress.CommandExecuted()
		return m, nil

	case lessonpanel.CheckRequestedMsg:
		return m.checkLesson(msg.Lesson)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+b":
			m.showPanel = !m.showPanel
			if m.showPanel {
				m.terminal = m.terminal.Blur()
				m.panel = m.panel.Focus()
			} else {
				m.panel = m.panel.Blur()
				m.terminal = m.terminal.Focus()
			}
			return m.layout(), nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.terminal, cmd = m.terminal.Update(msg)
	cmds = append(cmds, cmd)
	m.panel, cmd = m.panel.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// checkLesson runs the lesson check against the interpreter history and
// persists a pass.
func (m Model) checkLesson(lesson lessons.Lesson) (tea.Model, tea.Cmd) {
	interp := m.terminal.Interpreter()
	result := lesson.Check(interp.Tool(), interp.History())
	if result.Passed {
		if err := m.progress.MarkCompleted(lesson.ID); err != nil {
			log.ErrorErr(log.CatLessons, "Failed to persist completion", err, "lesson", lesson.ID)
		}
	}
	verdict := lessonpanel.CheckedMsg{Lesson: lesson, Result: result}
	return m, func() tea.Msg { return verdict }
}

// layout distributes the window between the terminal and the panel.
func (m Model) layout() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	if !m.showPanel {
		m.terminal = m.terminal.SetSize(m.width, m.height)
		return m
	}
	panelWidth := m.width * 2 / 5
	m.terminal = m.terminal.SetSize(m.width-panelWidth, m.height)
	m.panel = m.panel.SetSize(panelWidth, m.height)
	return m
}

// View renders the application.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.showPanel {
		return m.terminal.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.terminal.View(), m.panel.View())
}
