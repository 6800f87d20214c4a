package gitweep

import (
	"strings"
)

// Options configures an Optimizer.
type Options struct {
	// Mode is the optimization policy level. The zero value is
	// Conservative; New uses Standard.
	Mode Mode

	// GenerateComments inserts generated descriptive comments above
	// recognized patterns in the rendered output. Cosmetic only; it never
	// changes which patterns are present.
	GenerateComments bool
}

// Optimizer deduplicates pattern documents. It holds no per-run state:
// the seen-signature table and report accumulator are local to each call,
// so one Optimizer can be reused across files and goroutines.
type Optimizer struct {
	opts Options
}

// New creates an Optimizer with the default Standard mode.
func New() *Optimizer {
	return &Optimizer{opts: Options{Mode: Standard}}
}

// NewWithOptions creates an Optimizer with custom options.
func NewWithOptions(opts Options) *Optimizer {
	return &Optimizer{opts: opts}
}

// FileStats counts line kinds in a document.
type FileStats struct {
	TotalLines   int
	PatternLines int
	CommentLines int
	BlankLines   int
}

// Analysis summarizes the shape of the patterns in a document.
type Analysis struct {
	TotalPatterns int
	Negated       int
	Anchored      int
	DirOnly       int
	Wildcards     int
	Globstars     int
}

// Report describes one optimization run. It is produced once per call and
// not mutated afterwards.
type Report struct {
	// LinesRemoved is the total number of dropped lines of any kind.
	LinesRemoved int
	// DuplicatesFound is the number of dropped pattern lines.
	DuplicatesFound int
	// ConflictsFound is len(Conflicts).
	ConflictsFound int

	// Conflicts lists pattern pairs differing only in negation.
	Conflicts []Conflict
	// Warnings lists malformed-but-tolerated pattern lines.
	Warnings []ParseWarning
	// Duplicates maps each repeated raw pattern text to its line numbers.
	Duplicates map[string][]int

	Before FileStats
	After  FileStats

	// Analysis is the pattern-shape summary of the input document.
	Analysis Analysis
}

// Optimize parses, deduplicates, and re-renders a raw text buffer in one
// pass. An empty buffer yields empty output and a zeroed report; the core
// never returns an error.
func (o *Optimizer) Optimize(content []byte) ([]byte, *Report) {
	doc, warnings := Parse(content)

	out, report := o.OptimizeDocument(doc)
	report.Warnings = warnings

	if o.opts.GenerateComments {
		out = out.Annotate()
	}
	return out.Render(), report
}

// OptimizeDocument walks the document in order, keeping the first
// occurrence of every pattern and dropping later occurrences the active
// mode judges equivalent. Comments and blank lines keep their positions;
// only Aggressive mode removes duplicate comments and collapses blank
// runs. The input document is not modified.
//
// The seen set is keyed across the whole document, so non-consecutive
// duplicates are dropped the same as adjacent ones, and surviving patterns
// keep their relative input order.
func (o *Optimizer) OptimizeDocument(doc *Document) (*Document, *Report) {
	report := &Report{
		Before:     doc.Stats(),
		Duplicates: doc.Duplicates(),
		Analysis:   analyze(doc),
	}

	out := &Document{
		terminator:      doc.terminator,
		trailingNewline: doc.trailingNewline,
	}

	exact := o.opts.Mode.exactOnly()
	aggressive := o.opts.Mode == Aggressive

	seenRaw := make(map[string]int)
	seenSig := make(map[signature]int)
	seenComments := make(map[string]struct{})

	for i := range doc.Lines {
		line := doc.Lines[i]

		switch line.Kind {
		case LineBlank:
			if aggressive {
				if n := len(out.Lines); n > 0 && out.Lines[n-1].Kind == LineBlank {
					report.LinesRemoved++
					continue
				}
			}
			out.Lines = append(out.Lines, line)

		case LineComment:
			if aggressive {
				key := strings.TrimSpace(line.Raw)
				if _, dup := seenComments[key]; dup {
					report.LinesRemoved++
					continue
				}
				seenComments[key] = struct{}{}
			}
			out.Lines = append(out.Lines, line)

		case LinePattern:
			var dup bool
			if exact {
				_, dup = seenRaw[line.Raw]
				if !dup {
					seenRaw[line.Raw] = line.Number
				}
			} else {
				sig := line.Entry.signature()
				_, dup = seenSig[sig]
				if !dup {
					seenSig[sig] = line.Number
				}
			}
			if dup {
				report.LinesRemoved++
				report.DuplicatesFound++
				continue
			}
			out.Lines = append(out.Lines, line)
		}
	}

	report.Conflicts = detectConflicts(doc)
	report.ConflictsFound = len(report.Conflicts)
	report.After = out.Stats()

	return out, report
}

func analyze(doc *Document) Analysis {
	var a Analysis
	for _, e := range doc.Patterns() {
		a.TotalPatterns++
		if e.Negated {
			a.Negated++
		}
		if e.Anchored {
			a.Anchored++
		}
		if e.DirOnly {
			a.DirOnly++
		}
		if e.HasWildcard {
			a.Wildcards++
		}
		if e.HasGlobstar {
			a.Globstars++
		}
	}
	return a
}
