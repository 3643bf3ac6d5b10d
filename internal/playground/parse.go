package playground

import (
	"regexp"
	"strings"
)

// parsed is the result of tokenizing one raw input line.
type parsed struct {
	key  string   // dispatch key, e.g. "git status" or "help"
	args []string // remaining tokens
}

// parse tokenizes raw on whitespace and derives the dispatch key. When the
// first token is exactly the tool name and a second token exists, the two
// are joined with a single space to form the key; otherwise the first token
// alone is the key. Any other first word followed by a known subcommand name
// still resolves as a plain single-word key. This asymmetry is intentional:
// it decides which unknown-command message shape the caller gets.
func parse(tool, raw string) (parsed, bool) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return parsed{}, false
	}
	if tokens[0] == tool && len(tokens) > 1 {
		return parsed{key: tokens[0] + " " + tokens[1], args: rest(tokens, 2)}, true
	}
	return parsed{key: tokens[0], args: rest(tokens, 1)}, true
}

// rest returns tokens[from:], or nil when nothing remains.
func rest(tokens []string, from int) []string {
	if from >= len(tokens) {
		return nil
	}
	return tokens[from:]
}

var (
	quotedMessageRe = regexp.MustCompile(`-m\s*["'](.*?)["']`)
	bareMessageRe   = regexp.MustCompile(`-m\s+(.+)`)
)

// commitMessage extracts the -m message from commit arguments. Quoted forms
// (single or double) win; otherwise everything after -m is taken verbatim,
// with no quote stripping. Returns "" when neither pattern matches.
func commitMessage(args []string) string {
	joined := strings.Join(args, " ")
	if m := quotedMessageRe.FindStringSubmatch(joined); m != nil {
		return m[1]
	}
	if m := bareMessageRe.FindStringSubmatch(joined); m != nil {
		return m[1]
	}
	return ""
}
