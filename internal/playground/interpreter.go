// Package playground implements the command interpreter behind the git
// teaching terminal. It owns a single simulated repository state, a fixed
// table of recognized commands, and produces markup-bearing text blocks for
// an append-only output log. No real version-control system is involved.
package playground

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zjrosen/gitplay/internal/playground/domain"
)

// Result is the outcome of executing one raw input line. Logically a
// sequence of output lines: Text holds a newline-joined block, empty when
// there is nothing to print. Clear asks the rendering layer to wipe its log
// and re-print the welcome banner; it is the only command outcome with no
// text of its own.
type Result struct {
	Text  string
	Clear bool
}

// Config controls a playground session.
type Config struct {
	Tool        string   // command prefix, e.g. "git"
	BranchName  string   // the single fixed branch name
	WorkingDir  string   // cosmetic path shown in init output
	SeedFiles   []string // initial tracked-file universe
	AuthorName  string   // synthetic author for log output
	AuthorEmail string

	// Rand and Now are the interpreter's nondeterministic inputs. Tests
	// inject fixed values so exact output strings can be asserted. Nil
	// selects a time-seeded source and the wall clock.
	Rand *rand.Rand
	Now  func() time.Time
}

type handler func(args []string) Result

// Interpreter executes playground commands against its repository state.
// Every command either fully succeeds (possibly mutating state) or fully
// fails with state untouched, and yields exactly one text block.
type Interpreter struct {
	cfg     Config
	state   *domain.State
	rng     *rand.Rand
	now     func() time.Time
	table   map[string]handler
	history []string
}

// New creates an interpreter with a freshly seeded repository state.
func New(cfg Config) *Interpreter {
	if cfg.Tool == "" {
		cfg.Tool = "git"
	}
	if cfg.BranchName == "" {
		cfg.BranchName = "main"
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "/home/student/project"
	}
	if len(cfg.SeedFiles) == 0 {
		cfg.SeedFiles = []string{"README.md", "index.html", "style.css"}
	}
	if cfg.AuthorName == "" {
		cfg.AuthorName = "Git Student"
	}
	if cfg.AuthorEmail == "" {
		cfg.AuthorEmail = "student@playground.local"
	}

	in := &Interpreter{
		cfg: cfg,
		rng: cfg.Rand,
		now: cfg.Now,
	}
	if in.rng == nil {
		in.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if in.now == nil {
		in.now = time.Now
	}
	in.state = in.freshState()

	tool := cfg.Tool
	in.table = map[string]handler{
		"help":           in.cmdHelp,
		"clear":          in.cmdClear,
		tool + " init":   in.cmdInit,
		tool + " status": in.cmdStatus,
		tool + " add":    in.cmdAdd,
		tool + " commit": in.cmdCommit,
		tool + " log":    in.cmdLog,
		tool + " branch": in.cmdBranch,
	}
	return in
}

func (in *Interpreter) freshState() *domain.State {
	return domain.NewState(in.cfg.BranchName, in.cfg.WorkingDir, in.cfg.SeedFiles)
}

// Execute runs one raw input line. Empty or whitespace-only input produces
// no output at all, not even a blank echo.
func (in *Interpreter) Execute(raw string) Result {
	p, ok := parse(in.cfg.Tool, raw)
	if !ok {
		return Result{}
	}
	in.history = append(in.history, p.key)

	h, ok := in.table[p.key]
	if !ok {
		return in.unknown(p)
	}
	return h(p.args)
}

// Reset discards the repository state and replaces it with a freshly seeded
// one. The caller clears its output log; the returned text is the
// confirmation line to print afterwards.
func (in *Interpreter) Reset() Result {
	in.state = in.freshState()
	in.history = nil
	return Result{
		Text:  successf("Playground reset. Fresh repository loaded."),
		Clear: true,
	}
}

// State exposes the current repository state for rendering and tests.
func (in *Interpreter) State() *domain.State {
	return in.state
}

// History returns the dispatch keys of every non-empty line executed since
// creation or the last reset, in order. Lesson checks compare it against a
// lesson's expected command sequence.
func (in *Interpreter) History() []string {
	return append([]string(nil), in.history...)
}

// Tool returns the configured command prefix.
func (in *Interpreter) Tool() string {
	return in.cfg.Tool
}

// unknown formats the two unknown-command message shapes. The tool-prefix
// form fires whenever the first token equals the tool name, including a bare
// tool name with no subcommand at all.
func (in *Interpreter) unknown(p parsed) Result {
	tool := in.cfg.Tool
	if p.key == tool || (len(p.key) > len(tool) && p.key[:len(tool)+1] == tool+" ") {
		sub := ""
		if len(p.key) > len(tool)+1 {
			sub = p.key[len(tool)+1:]
		}
		return Result{Text: errorf("%s: '%s' is not a %s command. See 'help'.", tool, sub, tool)}
	}
	return Result{Text: errorf("Command not found: %s. Type 'help' for available commands.", p.key)}
}

func successf(format string, a ...any) string {
	return successSpan(fmt.Sprintf(format, a...))
}

func errorf(format string, a ...any) string {
	return errorSpan(fmt.Sprintf(format, a...))
}
