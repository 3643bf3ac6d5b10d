// Package domain provides the simulated repository types for the playground.
package domain

import "time"

// Commit is an immutable record of a simulated commit.
type Commit struct {
	Hash      string    // Full 40-char lowercase hex, decorative (not content-addressed)
	Message   string    // Commit message, never empty
	Files     []string  // Snapshot of the staged set at commit time
	Timestamp time.Time // When the commit was created
}

// ShortHash returns the 7-char abbreviated hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// State is the mutable simulated repository. A single instance is owned by
// the interpreter and replaced wholesale on reset, never incrementally
// repaired.
type State struct {
	Initialized bool
	BranchName  string
	StagedFiles []string // insertion order, no duplicates, always ⊆ ModifiedFiles
	// ModifiedFiles is the universe of files that exist and are not yet
	// committed clean. Seeded at creation; committed files leave it.
	ModifiedFiles []string
	Commits       []Commit // newest first
	WorkingDir    string   // cosmetic, only appears in formatted output
}

// NewState creates a freshly seeded repository state.
func NewState(branch, workingDir string, seedFiles []string) *State {
	return &State{
		BranchName:    branch,
		ModifiedFiles: append([]string(nil), seedFiles...),
		WorkingDir:    workingDir,
	}
}

// IsStaged reports whether name is currently in the staged set.
func (s *State) IsStaged(name string) bool {
	for _, f := range s.StagedFiles {
		if f == name {
			return true
		}
	}
	return false
}

// IsTracked reports whether name is in the tracked/modified universe.
func (s *State) IsTracked(name string) bool {
	for _, f := range s.ModifiedFiles {
		if f == name {
			return true
		}
	}
	return false
}

// Stage adds name to the staged set. It is a no-op for files already staged,
// preserving the no-duplicates invariant.
func (s *State) Stage(name string) {
	if s.IsStaged(name) {
		return
	}
	s.StagedFiles = append(s.StagedFiles, name)
}

// UnstagedFiles returns ModifiedFiles − StagedFiles in tracked order.
func (s *State) UnstagedFiles() []string {
	var out []string
	for _, f := range s.ModifiedFiles {
		if !s.IsStaged(f) {
			out = append(out, f)
		}
	}
	return out
}

// Record prepends a commit, empties the staged set, and removes the
// committed files from the modified universe. A repository whose every file
// has been committed reports a clean working tree.
func (s *State) Record(c Commit) {
	s.Commits = append([]Commit{c}, s.Commits...)
	committed := make(map[string]bool, len(c.Files))
	for _, f := range c.Files {
		committed[f] = true
	}
	var remaining []string
	for _, f := range s.ModifiedFiles {
		if !committed[f] {
			remaining = append(remaining, f)
		}
	}
	s.ModifiedFiles = remaining
	s.StagedFiles = nil
}

// Head returns the newest commit, or false when there are none.
func (s *State) Head() (Commit, bool) {
	if len(s.Commits) == 0 {
		return Commit{}, false
	}
	return s.Commits[0], true
}
