package playground

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitplay/internal/playground/markup"
)

// newTestInterpreter builds an interpreter with a fixed random source and
// clock so output strings are stable across runs.
func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	return New(Config{
		SeedFiles: []string{"README.md", "index.html", "style.css"},
		Rand:      rand.New(rand.NewSource(1)),
		Now: func() time.Time {
			return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		},
	})
}

// run executes raw and returns the output text with markup spans stripped.
func run(t *testing.T, in *Interpreter, raw string) string {
	t.Helper()
	return markup.Strip(in.Execute(raw).Text)
}

func TestExecute_EmptyInput_ProducesNoOutput(t *testing.T) {
	in := newTestInterpreter(t)

	for _, raw := range []string{"", "   ", "\t", " \t  "} {
		res := in.Execute(raw)
		require.Empty(t, res.Text, "input %q should print nothing", raw)
		require.False(t, res.Clear)
	}
}

func TestExecute_BeforeInit_AllCommandsRejected(t *testing.T) {
	in := newTestInterpreter(t)
	want := "fatal: not a git repository (or any of the parent directories): .git"

	for _, raw := range []string{"git status", "git add .", "git commit -m \"x\"", "git log", "git branch"} {
		require.Equal(t, want, run(t, in, raw), "command %q", raw)
	}

	// State stays at its initial values.
	st := in.State()
	require.False(t, st.Initialized)
	require.Empty(t, st.StagedFiles)
	require.Empty(t, st.Commits)
	require.Equal(t, []string{"README.md", "index.html", "style.css"}, st.ModifiedFiles)
}

func TestExecute_Init_ThenReinit(t *testing.T) {
	in := newTestInterpreter(t)

	out := run(t, in, "git init")
	require.True(t, strings.HasPrefix(out, "Initialized empty repository"), "got %q", out)
	require.True(t, in.State().Initialized)

	out = run(t, in, "git init")
	require.True(t, strings.HasPrefix(out, "Reinitialized existing repository"), "got %q", out)
	require.True(t, in.State().Initialized)
}

func TestExecute_AddSingleFile(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	require.Equal(t, "Added 'README.md' to staging area.", run(t, in, "git add README.md"))
	require.Equal(t, "'README.md' is already staged.", run(t, in, "git add README.md"))
	require.Equal(t, []string{"README.md"}, in.State().StagedFiles)
}

func TestExecute_AddUnknownFile_IsFatalAndLeavesStateUntouched(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, "git add missing.txt")
	require.Equal(t, "fatal: pathspec 'missing.txt' did not match any files", out)
	require.Empty(t, in.State().StagedFiles)
}

func TestExecute_AddNoArgument_PrintsHint(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, "git add")
	require.Contains(t, out, "Nothing specified, nothing added.")
	require.Contains(t, out, "hint:")
	require.Empty(t, in.State().StagedFiles)
}

func TestExecute_AddDot_StagesEverything(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	require.Equal(t, "Added 3 file(s) to staging area.", run(t, in, "git add ."))
	require.Equal(t, []string{"README.md", "index.html", "style.css"}, in.State().StagedFiles)

	// Second invocation stages nothing new.
	require.Equal(t, "All files are already staged.", run(t, in, "git add ."))
	require.Equal(t, []string{"README.md", "index.html", "style.css"}, in.State().StagedFiles)
}

func TestExecute_CommitHappyPath(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add README.md")

	out := run(t, in, `git commit -m "first"`)
	require.Regexp(t, regexp.MustCompile(`^\[main [0-9a-f]{7}\] first\n 1 file\(s\) changed$`), out)

	st := in.State()
	require.Empty(t, st.StagedFiles)
	require.Len(t, st.Commits, 1)
	require.Equal(t, "first", st.Commits[0].Message)
	require.Equal(t, []string{"README.md"}, st.Commits[0].Files)
	require.Regexp(t, `^[0-9a-f]{40}$`, st.Commits[0].Hash)
	require.True(t, strings.HasPrefix(st.Commits[0].Hash, st.Commits[0].ShortHash()))
}

func TestExecute_CommitMessageForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "double quoted", raw: `git commit -m "hello world"`, want: "hello world"},
		{name: "single quoted", raw: `git commit -m 'hello world'`, want: "hello world"},
		{name: "no space before quote", raw: `git commit -m"tight"`, want: "tight"},
		{name: "bare remainder kept verbatim", raw: `git commit -m hello world`, want: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTestInterpreter(t)
			run(t, in, "git init")
			run(t, in, "git add .")
			run(t, in, tt.raw)

			require.Len(t, in.State().Commits, 1)
			require.Equal(t, tt.want, in.State().Commits[0].Message)
		})
	}
}

func TestExecute_CommitWithoutMessage_IsUsageError(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add .")

	for _, raw := range []string{"git commit", "git commit -m", "git commit --amend"} {
		out := run(t, in, raw)
		require.Contains(t, out, "no commit message given", "input %q", raw)
		require.Empty(t, in.State().Commits, "input %q must not create a commit", raw)
		require.Len(t, in.State().StagedFiles, 3, "input %q must leave the staged set alone", raw)
	}
}

func TestExecute_CommitNothingStaged(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, `git commit -m "x"`)
	require.Equal(t, `nothing to commit (use "git add" to stage files)`, out)
	require.Empty(t, in.State().Commits)
}

func TestExecute_StatusSections(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, "git status")
	require.Contains(t, out, "On branch main")
	require.Contains(t, out, "No commits yet")
	require.Contains(t, out, "Untracked files:")
	require.NotContains(t, out, "Changes to be committed:")

	run(t, in, "git add README.md")
	out = run(t, in, "git status")
	require.Contains(t, out, "Changes to be committed:")
	require.Contains(t, out, "README.md")
	require.Contains(t, out, "Untracked files:")
	require.Contains(t, out, "index.html")
	require.Contains(t, out, "style.css")

	run(t, in, "git add .")
	run(t, in, `git commit -m "all of it"`)
	out = run(t, in, "git status")
	require.Contains(t, out, "nothing to commit, working tree clean")
	require.NotContains(t, out, "No commits yet")
}

// TestExecute_CommitRemovesFilesFromWorkingTree verifies that committed
// files stop showing as untracked: a partial commit leaves only the
// uncommitted remainder, and committing everything makes the clean-tree
// message reachable.
func TestExecute_CommitRemovesFilesFromWorkingTree(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add README.md")
	run(t, in, `git commit -m "docs"`)

	out := run(t, in, "git status")
	require.NotContains(t, out, "README.md")
	require.Contains(t, out, "Untracked files:")
	require.Contains(t, out, "index.html")
	require.Contains(t, out, "style.css")

	run(t, in, "git add .")
	run(t, in, `git commit -m "the rest"`)
	out = run(t, in, "git status")
	require.Contains(t, out, "nothing to commit, working tree clean")
	require.NotContains(t, out, "Untracked files:")
}

func TestExecute_LogRoundTrip(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add .")
	run(t, in, `git commit -m "msg"`)

	out := run(t, in, "git log")
	require.Regexp(t, regexp.MustCompile(`commit [0-9a-f]{40} \(HEAD -> main\)`), out)
	require.Contains(t, out, "Author: Git Student <student@playground.local>")
	require.Contains(t, out, "Date:   Fri Mar 1 12:00:00 2024 +0000")
	require.Contains(t, out, "\n    msg")
}

func TestExecute_LogOrdersNewestFirst(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add README.md")
	run(t, in, `git commit -m "older"`)
	run(t, in, "git add index.html")
	run(t, in, `git commit -m "newer"`)

	out := run(t, in, "git log")
	require.Less(t, strings.Index(out, "newer"), strings.Index(out, "older"))

	// Only the newest commit carries the HEAD annotation.
	require.Equal(t, 1, strings.Count(out, "(HEAD -> main)"))
	require.True(t, strings.Contains(strings.SplitN(out, "\n", 2)[0], "HEAD -> main"))
}

func TestExecute_LogWithoutCommits_IsFatal(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, "git log")
	require.Equal(t, "fatal: your current branch 'main' does not have any commits yet", out)
}

func TestExecute_Branch(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")

	out := run(t, in, "git branch")
	require.True(t, strings.HasPrefix(out, "* main"), "got %q", out)
	require.Contains(t, out, "hint:")
}

func TestExecute_UnknownCommands(t *testing.T) {
	in := newTestInterpreter(t)

	require.Equal(t, "Command not found: foo. Type 'help' for available commands.", run(t, in, "foo"))
	require.Equal(t, "git: 'frobnicate' is not a git command. See 'help'.", run(t, in, "git frobnicate"))
	require.Equal(t, "git: '' is not a git command. See 'help'.", run(t, in, "git"))

	// A known subcommand name without the tool prefix is a plain unknown key.
	require.Equal(t, "Command not found: status. Type 'help' for available commands.", run(t, in, "status"))
}

func TestExecute_HelpAndClear(t *testing.T) {
	in := newTestInterpreter(t)

	out := run(t, in, "help")
	for _, want := range []string{"help", "clear", "git init", "git status", "git add", "git commit", "git log", "git branch"} {
		require.Contains(t, out, want)
	}

	res := in.Execute("clear")
	require.True(t, res.Clear)
	require.Empty(t, res.Text)
}

func TestReset_ReplacesStateWholesale(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add .")
	run(t, in, `git commit -m "kept?"`)

	res := in.Reset()
	require.True(t, res.Clear)
	require.Contains(t, markup.Strip(res.Text), "reset")

	st := in.State()
	require.False(t, st.Initialized)
	require.Empty(t, st.StagedFiles)
	require.Empty(t, st.Commits)
	require.Equal(t, []string{"README.md", "index.html", "style.css"}, st.ModifiedFiles)
	require.Empty(t, in.History())
}

func TestExecute_MarkupSpans(t *testing.T) {
	in := newTestInterpreter(t)

	res := in.Execute("git status")
	require.Contains(t, res.Text, markup.BeginError)
	require.Contains(t, res.Text, markup.End)

	res = in.Execute("git init")
	require.Contains(t, res.Text, markup.BeginSuccess)
	require.Contains(t, res.Text, markup.End)
}

func TestHistory_RecordsDispatchKeys(t *testing.T) {
	in := newTestInterpreter(t)
	run(t, in, "git init")
	run(t, in, "git add .")
	run(t, in, "")
	run(t, in, `git commit -m "m"`)

	require.Equal(t, []string{"git init", "git add", "git commit"}, in.History())
}

func TestExecute_CustomToolPrefix(t *testing.T) {
	in := New(Config{
		Tool: "svn",
		Rand: rand.New(rand.NewSource(1)),
		Now:  time.Now,
	})

	out := markup.Strip(in.Execute("svn init").Text)
	require.True(t, strings.HasPrefix(out, "Initialized empty repository"), "got %q", out)

	// "git" is just an ordinary unknown key for a non-git tool prefix.
	out = markup.Strip(in.Execute("git init").Text)
	require.Equal(t, "Command not found: git. Type 'help' for available commands.", out)

	out = markup.Strip(in.Execute("svn frobnicate").Text)
	require.Equal(t, "svn: 'frobnicate' is not a svn command. See 'help'.", out)
}
