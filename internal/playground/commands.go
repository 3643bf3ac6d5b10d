package playground

import (
	"fmt"
	"strings"

	"github.com/zjrosen/gitplay/internal/playground/domain"
	"github.com/zjrosen/gitplay/internal/playground/markup"
)

func successSpan(s string) string { return markup.Success(s) }
func errorSpan(s string) string   { return markup.Error(s) }

func (in *Interpreter) cmdHelp(_ []string) Result {
	tool := in.cfg.Tool
	var b strings.Builder
	b.WriteString("Available commands:\n")
	fmt.Fprintf(&b, "  help                        Show this help\n")
	fmt.Fprintf(&b, "  clear                       Clear the terminal\n")
	fmt.Fprintf(&b, "  %s init                    Initialize a repository\n", tool)
	fmt.Fprintf(&b, "  %s status                  Show the working tree status\n", tool)
	fmt.Fprintf(&b, "  %s add <file>|.            Stage one file, or everything\n", tool)
	fmt.Fprintf(&b, "  %s commit -m \"<message>\"   Record the staged files as a commit\n", tool)
	fmt.Fprintf(&b, "  %s log                     Show the commit history\n", tool)
	fmt.Fprintf(&b, "  %s branch                  List branches", tool)
	return Result{Text: b.String()}
}

func (in *Interpreter) cmdClear(_ []string) Result {
	return Result{Clear: true}
}

func (in *Interpreter) cmdInit(_ []string) Result {
	repoDir := in.state.WorkingDir + "/." + in.cfg.Tool + "/"
	if in.state.Initialized {
		// Idempotent: state is left exactly as it was.
		return Result{Text: fmt.Sprintf("Reinitialized existing repository in %s", repoDir)}
	}
	in.state.Initialized = true
	return Result{Text: successf("Initialized empty repository in %s", repoDir)}
}

// notARepository is the shared precondition failure for every command that
// inspects or mutates the repository before init.
func (in *Interpreter) notARepository() Result {
	tool := in.cfg.Tool
	return Result{Text: errorf("fatal: not a %s repository (or any of the parent directories): .%s", tool, tool)}
}

func (in *Interpreter) cmdStatus(_ []string) Result {
	if !in.state.Initialized {
		return in.notARepository()
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("On branch %s", in.state.BranchName))
	if len(in.state.Commits) == 0 {
		lines = append(lines, "", "No commits yet")
	}

	staged := in.state.StagedFiles
	untracked := in.state.UnstagedFiles()

	if len(staged) > 0 {
		lines = append(lines, "", "Changes to be committed:")
		for _, f := range staged {
			lines = append(lines, successSpan("        new file:   "+f))
		}
	}
	if len(untracked) > 0 {
		lines = append(lines, "", "Untracked files:")
		for _, f := range untracked {
			lines = append(lines, errorSpan("        "+f))
		}
	}
	if len(staged) == 0 && len(untracked) == 0 {
		lines = append(lines, "", "nothing to commit, working tree clean")
	}
	return Result{Text: strings.Join(lines, "\n")}
}

func (in *Interpreter) cmdAdd(args []string) Result {
	if !in.state.Initialized {
		return in.notARepository()
	}
	if len(args) == 0 {
		return Result{Text: fmt.Sprintf("Nothing specified, nothing added.\nhint: use '%s add .' to stage all files or '%s add <file>' to stage one.", in.cfg.Tool, in.cfg.Tool)}
	}

	target := args[0]
	if target == "." {
		unstaged := in.state.UnstagedFiles()
		if len(unstaged) == 0 {
			return Result{Text: "All files are already staged."}
		}
		for _, f := range unstaged {
			in.state.Stage(f)
		}
		return Result{Text: successf("Added %d file(s) to staging area.", len(unstaged))}
	}

	switch {
	case !in.state.IsTracked(target):
		return Result{Text: errorf("fatal: pathspec '%s' did not match any files", target)}
	case in.state.IsStaged(target):
		return Result{Text: fmt.Sprintf("'%s' is already staged.", target)}
	default:
		in.state.Stage(target)
		return Result{Text: successf("Added '%s' to staging area.", target)}
	}
}

func (in *Interpreter) cmdCommit(args []string) Result {
	if !in.state.Initialized {
		return in.notARepository()
	}
	if len(in.state.StagedFiles) == 0 {
		return Result{Text: fmt.Sprintf("nothing to commit (use \"%s add\" to stage files)", in.cfg.Tool)}
	}
	message := commitMessage(args)
	if message == "" {
		return Result{Text: errorf("error: no commit message given.\nusage: %s commit -m \"<message>\"", in.cfg.Tool)}
	}

	commit := domain.Commit{
		Hash:      randomHash(in.rng),
		Message:   message,
		Files:     append([]string(nil), in.state.StagedFiles...),
		Timestamp: in.now(),
	}
	fileCount := len(commit.Files)
	in.state.Record(commit)

	return Result{Text: successf("[%s %s] %s\n %d file(s) changed", in.state.BranchName, commit.ShortHash(), message, fileCount)}
}

func (in *Interpreter) cmdLog(_ []string) Result {
	if !in.state.Initialized {
		return in.notARepository()
	}
	if len(in.state.Commits) == 0 {
		return Result{Text: errorf("fatal: your current branch '%s' does not have any commits yet", in.state.BranchName)}
	}

	var blocks []string
	for i, c := range in.state.Commits {
		head := fmt.Sprintf("commit %s", c.Hash)
		if i == 0 {
			head += fmt.Sprintf(" (HEAD -> %s)", in.state.BranchName)
		}
		block := strings.Join([]string{
			successSpan(head),
			fmt.Sprintf("Author: %s <%s>", in.cfg.AuthorName, in.cfg.AuthorEmail),
			fmt.Sprintf("Date:   %s", c.Timestamp.Format("Mon Jan 2 15:04:05 2006 -0700")),
			"",
			"    " + c.Message,
		}, "\n")
		blocks = append(blocks, block)
	}
	return Result{Text: strings.Join(blocks, "\n\n")}
}

func (in *Interpreter) cmdBranch(_ []string) Result {
	if !in.state.Initialized {
		return in.notARepository()
	}
	return Result{Text: successSpan("* "+in.state.BranchName) + "\nhint: this playground keeps a single branch; branching comes in a later lesson."}
}
