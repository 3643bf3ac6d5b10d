// Package markup defines the inline span markers the interpreter embeds in
// its output. This is the only markup contract the core emits: two paired
// sentinels meaning "begin success span" / "begin error span", each closed
// by the same end marker. The rendering layer turns spans into styling;
// everything else treats the markers as opaque text.
package markup

import "strings"

const (
	// BeginSuccess opens a success-colored span.
	BeginSuccess = "\x01"
	// BeginError opens an error-colored span.
	BeginError = "\x02"
	// End closes the innermost open span.
	End = "\x03"
)

// Success wraps s in a success span.
func Success(s string) string {
	return BeginSuccess + s + End
}

// Error wraps s in an error span.
func Error(s string) string {
	return BeginError + s + End
}

// Strip removes all span markers, leaving plain text.
func Strip(s string) string {
	r := strings.NewReplacer(BeginSuccess, "", BeginError, "", End, "")
	return r.Replace(s)
}
