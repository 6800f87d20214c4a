package gitweep

import (
	"bytes"
	"strings"
)

// detectTerminator reports the line terminator style used by content.
// The first CRLF wins; a buffer with no CRLF (including an empty one)
// uses LF. Renderers use this to reproduce the input's style.
func detectTerminator(content []byte) string {
	if bytes.Contains(content, []byte("\r\n")) {
		return "\r\n"
	}
	return "\n"
}

// normalizeContent prepares a buffer for line splitting.
//
// Steps (applied in order):
//  1. Strip UTF-8 BOM if present (EF BB BF) - loops for idempotency
//  2. Normalize CRLF to LF
//  3. Normalize standalone CR to LF (old Mac format)
//
// Terminator style must be detected before calling this; afterwards the
// buffer is LF-only.
func normalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}

	for len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))

	return content
}

// splitContent splits a normalized buffer into lines and reports whether
// the buffer ended with a newline. A trailing newline does not produce a
// final empty line: "a\n" is one line, "a\nb" is two.
func splitContent(content []byte) (lines []string, trailingNewline bool) {
	if len(content) == 0 {
		return nil, false
	}

	trailingNewline = content[len(content)-1] == '\n'
	s := string(content)
	if trailingNewline {
		s = s[:len(s)-1]
	}

	return strings.Split(s, "\n"), trailingNewline
}

// trimTrailingWhitespace removes trailing spaces and tabs from a line,
// respecting backslash-escaped spaces per the gitignore spec.
//
// Git behavior: "Trailing spaces are ignored unless they are quoted with
// backslash":
//   - "foo "    → "foo"    (trailing space stripped)
//   - "foo\ "   → "foo "   (escaped space preserved, backslash removed)
//   - "foo\\ "  → "foo\\"  (escaped backslash, unescaped space stripped)
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}

	if end == len(line) {
		return line
	}

	// An odd run of backslashes before the whitespace escapes the first space.
	if escaped(line, end) && line[end] == ' ' {
		return line[:end-1] + " "
	}

	return line[:end]
}

// escaped reports whether the character at index i is escaped, i.e.
// preceded by an odd number of backslashes.
func escaped(s string, i int) bool {
	bs := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		bs++
	}
	return bs%2 == 1
}

// collapseSlashes collapses runs of consecutive path separators to a single
// slash. Redundant separators never change which paths a pattern matches,
// so "build//output" and "build/output" normalize identically.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSlash := false
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			if !prevSlash {
				b.WriteByte('/')
			}
			prevSlash = true
		} else {
			b.WriteByte(s[i])
			prevSlash = false
		}
	}
	return b.String()
}
