package lessons

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// CheckResult reports how a playground session measured up to a lesson.
type CheckResult struct {
	Passed bool
	// Diff is a line-by-line divergence report between the expected
	// command sequence and what the student actually ran. Empty on pass.
	Diff string
}

// Check compares the interpreter's command history against the lesson's
// expected sequence. Only tool commands count: help, clear, and typos are
// ignored, so a student who asked for help along the way still passes. The
// expected sequence must appear in order (other tool commands in between
// are allowed; exploring with status or log never hurts).
func (l Lesson) Check(tool string, history []string) CheckResult {
	expected := retarget(l.Commands, tool)
	actual := filterToolCommands(tool, history)

	if isSubsequence(expected, actual) {
		return CheckResult{Passed: true}
	}
	return CheckResult{Passed: false, Diff: commandDiff(expected, actual)}
}

// retarget rewrites the catalog's "git ..." commands onto the configured
// tool prefix. Lessons are written for git; a renamed tool teaches the same
// workflow.
func retarget(commands []string, tool string) []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		if rest, ok := strings.CutPrefix(c, "git "); ok {
			out[i] = tool + " " + rest
		} else {
			out[i] = c
		}
	}
	return out
}

// filterToolCommands keeps only dispatch keys carrying the tool prefix.
func filterToolCommands(tool string, history []string) []string {
	var out []string
	for _, key := range history {
		if strings.HasPrefix(key, tool+" ") {
			out = append(out, key)
		}
	}
	return out
}

// isSubsequence reports whether want appears within got in order.
func isSubsequence(want, got []string) bool {
	i := 0
	for _, g := range got {
		if i < len(want) && want[i] == g {
			i++
		}
	}
	return i == len(want)
}

// commandDiff renders the divergence between the expected and actual
// sequences, one command per line, with -/+ markers.
func commandDiff(want, got []string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(strings.Join(want, "\n")+"\n", strings.Join(got, "\n")+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- " // expected but not run
		case diffmatchpatch.DiffInsert:
			prefix = "+ " // run but not expected
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
