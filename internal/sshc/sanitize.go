package sshc

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Sanitize strips ANSI escape sequences and carriage returns from raw
// modem output so transcript lines stay readable.
func Sanitize(raw string) string {
	out := ansiEscape.ReplaceAllString(raw, "")
	return strings.ReplaceAll(out, "\r", "")
}
