// Package format defines the IRC formatting control codes shared by the
// rest of the module, plus helpers for stripping them and previewing
// formatted text in a terminal.
package format

import "regexp"

// IRC formatting control codes. Each code toggles its attribute; Reset
// clears all of them. Color takes an optional NN or NN,NN argument.
const (
	Bold      = "\x02"
	Color     = "\x03"
	Reset     = "\x0f"
	Monospace = "\x11"
	Reverse   = "\x16"
	Underline = "\x1f"
)

// codeRE matches any formatting code, including color codes with their
// optional foreground/background arguments.
var codeRE = regexp.MustCompile(`\x03(?:\d{1,2}(?:,\d{1,2})?)?|[\x02\x0f\x11\x16\x1f]`)

// Strip removes all IRC formatting and color codes from s.
func Strip(s string) string {
	return codeRE.ReplaceAllString(s, "")
}
