package gitweep

import (
	"strings"
)

// Render reassembles the document into a text buffer. Lines are joined
// with the input's original terminator style, and the presence or absence
// of a final newline is reproduced. Rendering an empty document yields an
// empty buffer.
func (d *Document) Render() []byte {
	if len(d.Lines) == 0 {
		return nil
	}

	var b strings.Builder
	for i := range d.Lines {
		if i > 0 {
			b.WriteString(d.terminator)
		}
		b.WriteString(d.Lines[i].Raw)
	}
	if d.trailingNewline {
		b.WriteString(d.terminator)
	}
	return []byte(b.String())
}

// Annotate returns a copy of the document with a generated descriptive
// comment above each pattern the built-in table recognizes. A pattern
// already preceded by a comment is left alone. Annotation never alters
// which patterns are present.
func (d *Document) Annotate() *Document {
	out := &Document{
		terminator:      d.terminator,
		trailingNewline: d.trailingNewline,
	}

	for i := range d.Lines {
		line := d.Lines[i]
		if line.Kind == LinePattern {
			desc, known := describePattern(trimTrailingWhitespace(line.Raw))
			if known && !endsWithComment(out.Lines) {
				out.Lines = append(out.Lines, Line{
					Kind:   LineComment,
					Raw:    "# " + desc,
					Number: line.Number,
				})
			}
		}
		out.Lines = append(out.Lines, line)
	}

	return out
}

func endsWithComment(lines []Line) bool {
	return len(lines) > 0 && lines[len(lines)-1].Kind == LineComment
}
