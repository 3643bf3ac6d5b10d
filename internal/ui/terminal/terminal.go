// Package terminal provides the playground terminal widget: an append-only
// output log above a single-line prompt, driving the command interpreter.
package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/playground"
	"github.com/zjrosen/gitplay/internal/telemetry"
	"github.com/zjrosen/gitplay/internal/ui/styles"
)

// CommandExecutedMsg is emitted after every non-empty submitted line so the
// surrounding app can count commands and refresh lesson state.
type CommandExecutedMsg struct {
	Key string // dispatch key of the executed command
}

// Config wires the terminal widget.
type Config struct {
	Interpreter *playground.Interpreter
	Prompt      string       // prompt label, e.g. "$ "
	Banner      string       // welcome text printed on start, clear, and reset
	Tracer      trace.Tracer // optional; nil disables command spans
}

// Model holds the terminal widget state.
type Model struct {
	interp *playground.Interpreter
	prompt string
	banner string

	input   textinput.Model
	log     viewport.Model
	tracer  trace.Tracer
	lines   []string // rendered log lines, append-only between clears
	width   int
	height  int
	focused bool
	demo    demoState
}

// New creates a terminal widget around an interpreter.
func New(cfg Config) Model {
	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.Placeholder = "type 'help' to get started"
	input.Focus()

	m := Model{
		interp:  cfg.Interpreter,
		prompt:  cfg.Prompt,
		banner:  cfg.Banner,
		tracer:  cfg.Tracer,
		input:   input,
		log:     viewport.New(0, 0),
		focused: true,
	}
	m.resetLog()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the prompt keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	m.input.Focus()
	return m
}

// Blur removes keyboard focus from the prompt.
func (m Model) Blur() Model {
	m.focused = false
	m.input.Blur()
	return m
}

// Focused reports whether the prompt has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetSize resizes the widget to the given outer dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	// Outer border (2) plus prompt and hint rows inside.
	m.log.Width = max(width-2, 1)
	m.log.Height = max(height-4, 1)
	m.input.Width = max(width-len(m.prompt)-4, 1)
	m.refreshLog()
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.demo.active {
			// Any keypress hands the terminal back to the student.
			m.demo = demoState{}
		}
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit(m.input.Value())
		case "ctrl+r":
			return m.reset()
		}

	case demoTickMsg:
		return m.demoStep()
	}

	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit echoes raw, executes it, and renders the result.
func (m Model) submit(raw string) (Model, tea.Cmd) {
	m.input.SetValue("")
	if strings.TrimSpace(raw) == "" {
		// Echo the bare prompt like a real shell, produce no output.
		m.appendLine(styles.PromptStyle().Render(m.prompt))
		return m, nil
	}

	echo := styles.PromptStyle().Render(m.prompt) + styles.EchoStyle().Render(raw)
	if m.log.Width > 0 {
		echo = runewidth.Truncate(echo, m.log.Width*3, "…") // guard against pasted noise
	}
	m.appendLine(echo)

	var res playground.Result
	if m.tracer != nil {
		telemetry.TraceCommand(m.tracer, raw, func() {
			res = m.interp.Execute(raw)
		})
	} else {
		res = m.interp.Execute(raw)
	}
	log.Debug(log.CatPlayground, "Command executed", "input", raw, "clear", res.Clear)

	if res.Clear {
		m.resetLog()
	} else if res.Text != "" {
		m.appendLine(styles.RenderMarkup(res.Text))
	}

	history := m.interp.History()
	key := ""
	if len(history) > 0 {
		key = history[len(history)-1]
	}
	return m, func() tea.Msg { return CommandExecutedMsg{Key: key} }
}

// reset discards the simulated repository and starts the log over.
func (m Model) reset() (Model, tea.Cmd) {
	res := m.interp.Reset()
	m.resetLog()
	m.appendLine(styles.RenderMarkup(res.Text))
	log.Info(log.CatPlayground, "Playground reset")
	return m, nil
}

// resetLog clears the output log back to the welcome banner.
func (m *Model) resetLog() {
	m.lines = nil
	if m.banner != "" {
		m.lines = append(m.lines, styles.BannerStyle().Render(m.wrapBanner()))
	}
	m.refreshLog()
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

func (m Model) wrapBanner() string {
	if m.log.Width <= 0 {
		return m.banner
	}
	return wordwrap.String(m.banner, m.log.Width)
}

// View renders the framed terminal.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	hint := styles.HintStyle().Render("enter run · ctrl+r reset · ctrl+b lessons · ctrl+c quit")
	inner := lipgloss.JoinVertical(lipgloss.Left,
		m.log.View(),
		m.input.View(),
		hint,
	)
	return styles.RenderTitledBox(inner, "Git Playground", m.width, m.height, m.focused)
}

// Interpreter exposes the widget's interpreter for lesson checks.
func (m Model) Interpreter() *playground.Interpreter {
	return m.interp
}
