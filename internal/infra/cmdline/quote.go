// Package cmdline builds and splits Windows-style command lines.
//
// Quote follows the argv splitting convention of the Microsoft C runtime and
// CommandLineToArgvW, so Split(Build(p, args)) yields back [p, args...].
package cmdline

import (
	"strings"
	"unicode"
)

// Quote returns token in a form the MS argv splitter reconstructs exactly.
func Quote(token string) string {
	if token == "" {
		return `""`
	}
	if !needsQuotes(token) {
		return token
	}

	var b strings.Builder
	b.Grow(len(token) + 2)
	b.WriteByte('"')

	backslashes := 0
	for _, r := range token {
		switch r {
		case '\\':
			backslashes++
			continue
		case '"':
			writeBackslashes(&b, backslashes*2+1)
			b.WriteByte('"')
			backslashes = 0
			continue
		}

		if backslashes > 0 {
			writeBackslashes(&b, backslashes)
			backslashes = 0
		}
		b.WriteRune(r)
	}

	// The closing quote must not be escaped by a trailing run.
	writeBackslashes(&b, backslashes*2)
	b.WriteByte('"')
	return b.String()
}

// Build composes the full command line: the quoted program followed by each quoted argument.
func Build(program string, args []string) string {
	var b strings.Builder
	b.WriteString(Quote(program))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(Quote(a))
	}
	return b.String()
}

func needsQuotes(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '\\' {
			return true
		}
	}
	return false
}

func writeBackslashes(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte('\\')
	}
}
