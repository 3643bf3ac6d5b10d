package terminal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The demo script types a short guided tour into the prompt, one character
// per tick, purely for visual pacing. It touches the interpreter only
// through the same submit path a student uses, and any keypress cancels it.

const (
	demoKeyDelay  = 60 * time.Millisecond
	demoLineDelay = 900 * time.Millisecond
)

// DefaultDemoScript is the guided tour played when demo mode is on.
func DefaultDemoScript(tool string) []string {
	return []string{
		"help",
		tool + " init",
		tool + " status",
		tool + " add .",
		tool + " commit -m \"my first commit\"",
		tool + " log",
	}
}

type demoTickMsg struct{}

type demoState struct {
	active bool
	script []string
	line   int // index into script
	pos    int // next rune within script[line]
}

// StartDemo begins playing script on the next tick.
func (m Model) StartDemo(script []string) (Model, tea.Cmd) {
	if len(script) == 0 {
		return m, nil
	}
	m.demo = demoState{active: true, script: script}
	return m, demoTick(demoKeyDelay)
}

// DemoActive reports whether the scripted tour is still running.
func (m Model) DemoActive() bool {
	return m.demo.active
}

func demoTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return demoTickMsg{} })
}

// demoStep advances the typewriter by one character, or submits the line
// when it is fully typed.
func (m Model) demoStep() (Model, tea.Cmd) {
	if !m.demo.active || m.demo.line >= len(m.demo.script) {
		m.demo = demoState{}
		return m, nil
	}

	line := []rune(m.demo.script[m.demo.line])
	if m.demo.pos < len(line) {
		m.input.SetValue(string(line[:m.demo.pos+1]))
		m.demo.pos++
		return m, demoTick(demoKeyDelay)
	}

	// Line complete: run it, pause, move on.
	demo := m.demo
	next, cmd := m.submit(string(line))
	next.demo = demo
	next.demo.line++
	next.demo.pos = 0
	if next.demo.line >= len(next.demo.script) {
		next.demo = demoState{}
		return next, cmd
	}
	return next, tea.Batch(cmd, demoTick(demoLineDelay))
}
