package gitweep

import (
	"strings"
)

// Entry is the structured form of one pattern line.
//
// Raw keeps the original text for byte-exact passthrough; Body is the
// pattern with negation, anchoring, and directory markers stripped and
// comment/negation escapes resolved to their literal characters. Body is a
// pure derivation; Raw is never mutated.
type Entry struct {
	Raw         string // original line text, pre-normalization
	Negated     bool   // leading unescaped !
	Anchored    bool   // leading /, match relative to root
	DirOnly     bool   // trailing unescaped /
	HasWildcard bool   // contains unescaped *, ?, or [...]
	HasGlobstar bool   // contains **
	Body        string // marker-stripped, escape-resolved text
}

// signature is the canonical equivalence key. Two entries with the same
// signature are functional duplicates: they target the same paths with the
// same polarity. Negation and markers always participate, so "foo" / "!foo"
// and "/tmp" / "tmp/" all have distinct signatures.
type signature struct {
	negated  bool
	anchored bool
	dirOnly  bool
	body     string
}

func (e *Entry) signature() signature {
	return signature{
		negated:  e.Negated,
		anchored: e.Anchored,
		dirOnly:  e.DirOnly,
		body:     e.Body,
	}
}

// parseEntry normalizes one pattern line into an Entry.
//
// Steps, in order:
//  1. Trim unescaped trailing whitespace (Git behavior)
//  2. Strip leading ! → Negated ("\!" stays literal, not negation)
//  3. Collapse redundant path separators
//  4. Strip leading / → Anchored
//  5. Strip trailing unescaped / → DirOnly
//  6. Scan for unescaped wildcards and unterminated bracket expressions
//  7. Resolve \# and \! escapes to literal characters in Body
//
// The scan operates on bytes, which is code-point exact for the ASCII
// metacharacters involved; multi-byte characters pass through Body
// untouched and compare by code-point identity. Malformed patterns yield a
// warning but are kept as literal entries; parseEntry never fails.
func parseEntry(raw string, lineNum int) (*Entry, *ParseWarning) {
	e := &Entry{Raw: raw}

	text := trimTrailingWhitespace(raw)

	// "\!" escapes the bang; only a bare leading ! negates.
	if strings.HasPrefix(text, "!") {
		e.Negated = true
		text = text[1:]
	}

	text = collapseSlashes(text)

	if strings.HasPrefix(text, "/") {
		e.Anchored = true
		text = text[1:]
	}

	if strings.HasSuffix(text, "/") && !escaped(text, len(text)-1) {
		e.DirOnly = true
		text = text[:len(text)-1]
	}

	var warning *ParseWarning
	e.HasWildcard, e.HasGlobstar, warning = scanWildcards(text, raw, lineNum)

	e.Body = resolveEscapes(text)

	if e.Body == "" && warning == nil {
		warning = &ParseWarning{
			Pattern: raw,
			Message: "pattern is empty after processing",
			Line:    lineNum,
		}
	}

	return e, warning
}

// scanWildcards reports wildcard presence in a marker-stripped pattern.
// Backslash escapes suppress the following character's special meaning.
// An unterminated bracket expression produces a warning; the bracket is
// then treated as a literal character and scanning continues.
func scanWildcards(s, raw string, lineNum int) (wildcard, globstar bool, warning *ParseWarning) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // escaped character is literal
		case '*':
			wildcard = true
			if i+1 < len(s) && s[i+1] == '*' {
				globstar = true
				i++
			}
		case '?':
			wildcard = true
		case '[':
			end := bracketEnd(s, i)
			if end < 0 {
				if warning == nil {
					warning = &ParseWarning{
						Pattern: raw,
						Message: "unterminated bracket expression, treated as literal",
						Line:    lineNum,
					}
				}
				continue // literal [
			}
			wildcard = true
			i = end
		}
	}
	return wildcard, globstar, warning
}

// bracketEnd returns the index of the ] closing the bracket expression
// starting at s[open], or -1 if the expression is unterminated. Per
// fnmatch, a ] immediately after [ (or [! / [^) is a class member, not the
// terminator.
func bracketEnd(s string, open int) int {
	i := open + 1
	if i < len(s) && (s[i] == '!' || s[i] == '^') {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// resolveEscapes rewrites \# and \! to their literal characters. Other
// escape sequences (\*, \?, \\) keep their backslash: they stay meaningful
// for matching and must survive in the body for comparison.
func resolveEscapes(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '#', '!':
				b.WriteByte(s[i+1])
				i++
				continue
			case '\\':
				b.WriteString(`\\`)
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// String returns a debug representation of an entry.
func (e *Entry) String() string {
	var flags []string
	if e.Negated {
		flags = append(flags, "negated")
	}
	if e.Anchored {
		flags = append(flags, "anchored")
	}
	if e.DirOnly {
		flags = append(flags, "dirOnly")
	}
	if e.HasGlobstar {
		flags = append(flags, "globstar")
	} else if e.HasWildcard {
		flags = append(flags, "wildcard")
	}

	if len(flags) == 0 {
		return e.Body
	}
	return e.Body + " [" + strings.Join(flags, ",") + "]"
}
