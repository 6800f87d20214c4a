package gitweep

import (
	"strings"
)

// LineKind identifies what a raw input line is. The three cases form a
// closed set; per-line dispatch in the optimizer is an exhaustive switch.
type LineKind int

const (
	// LineBlank is a line consisting only of whitespace.
	LineBlank LineKind = iota
	// LineComment is a line whose first non-whitespace character is '#'.
	LineComment
	// LinePattern is any other line, including lines starting with an
	// escaped '#' or '!'.
	LinePattern
)

// String returns a debug name for the kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LinePattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Line is one classified input line. Raw is the original text without its
// terminator and is never mutated; Entry is non-nil iff Kind == LinePattern.
type Line struct {
	Kind   LineKind
	Raw    string
	Number int // 1-indexed
	Entry  *Entry
}

// ParseWarning describes a malformed but tolerated pattern line.
// Warnings never abort parsing; the offending line is kept as a literal.
type ParseWarning struct {
	Pattern string // the problematic line text
	Message string // human-readable description
	Line    int    // line number (1-indexed)
}

// Document is the parsed form of one pattern file. A Document is owned by
// a single optimization pass and is never shared between passes.
type Document struct {
	Lines []Line

	terminator      string
	trailingNewline bool
}

// Parse classifies a raw text buffer into a Document. An empty buffer
// yields an empty Document; parsing itself cannot fail. Warnings are
// returned for malformed patterns (for example an unterminated bracket
// expression), which are kept as literal patterns.
func Parse(content []byte) (*Document, []ParseWarning) {
	doc := &Document{terminator: detectTerminator(content)}

	lines, trailing := splitContent(normalizeContent(content))
	doc.trailingNewline = trailing

	var warnings []ParseWarning
	for i, raw := range lines {
		line, warning := classifyLine(raw, i+1)
		if warning != nil {
			warnings = append(warnings, *warning)
		}
		doc.Lines = append(doc.Lines, line)
	}

	return doc, warnings
}

// classifyLine tags one raw line as blank, comment, or pattern.
//
// Gitignore syntax has no inline comments: a '#' after pattern content is
// literal text, so "*.log # inline" is a single pattern. A leading "\#" or
// "\!" escapes the comment/negation meaning and the line is a pattern whose
// body starts with the escaped character.
func classifyLine(raw string, number int) (Line, *ParseWarning) {
	stripped := strings.TrimLeft(raw, " \t")

	if stripped == "" {
		return Line{Kind: LineBlank, Raw: raw, Number: number}, nil
	}

	if stripped[0] == '#' {
		return Line{Kind: LineComment, Raw: raw, Number: number}, nil
	}

	entry, warning := parseEntry(raw, number)
	return Line{Kind: LinePattern, Raw: raw, Number: number, Entry: entry}, warning
}

// Stats counts the line kinds in the document.
func (d *Document) Stats() FileStats {
	var s FileStats
	for i := range d.Lines {
		s.TotalLines++
		switch d.Lines[i].Kind {
		case LinePattern:
			s.PatternLines++
		case LineComment:
			s.CommentLines++
		case LineBlank:
			s.BlankLines++
		}
	}
	return s
}

// Patterns returns the pattern entries of the document in order.
func (d *Document) Patterns() []*Entry {
	var entries []*Entry
	for i := range d.Lines {
		if d.Lines[i].Kind == LinePattern {
			entries = append(entries, d.Lines[i].Entry)
		}
	}
	return entries
}

// Duplicates maps each pattern raw text that appears more than once to the
// line numbers of its occurrences. Comparison is on raw text, so "*.log "
// and "*.log" stay separate groups.
func (d *Document) Duplicates() map[string][]int {
	occurrences := make(map[string][]int)
	for i := range d.Lines {
		if d.Lines[i].Kind != LinePattern {
			continue
		}
		occurrences[d.Lines[i].Raw] = append(occurrences[d.Lines[i].Raw], d.Lines[i].Number)
	}

	for key, nums := range occurrences {
		if len(nums) < 2 {
			delete(occurrences, key)
		}
	}
	return occurrences
}
