package parser

import "regexp"

// ansiEscapeRegex matches ANSI CSI escape sequences (colors, cursor moves).
// Cargo embeds these when its output is piped with color forced on; they must
// not defeat header/location pattern matching.
var ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences from a line before pattern
// matching. Rendered text keeps the original line untouched.
func stripANSI(line string) string {
	return ansiEscapeRegex.ReplaceAllString(line, "")
}
