package gitweep

import (
	"fmt"
)

// Conflict records a pattern pair where one side negates the other: the
// bodies and wildcard class match but the polarity differs. Conflicts are
// advisory. The optimizer never drops a pattern because it conflicts; a
// negation pair is usually a deliberate re-include.
type Conflict struct {
	LineA    int    // earlier pattern's line number
	PatternA string // earlier pattern's raw text
	LineB    int    // later pattern's line number
	PatternB string // later pattern's raw text
	Reason   string
}

// conflictKey identifies a pattern target independent of polarity and
// slash markers. Anchoring and directory markers are folded so that
// "build/" and "!build" still pair up, matching how users write
// re-includes in practice.
type conflictKey struct {
	body     string
	wildcard bool
	globstar bool
}

// detectConflicts finds every pattern pair in the document that differs
// only in negation. Detection is pairwise across the whole document, not
// just adjacent lines; grouping by target keeps it near-linear.
func detectConflicts(doc *Document) []Conflict {
	type occurrence struct {
		line    int
		raw     string
		negated bool
	}

	groups := make(map[conflictKey][]occurrence)
	var order []conflictKey

	for i := range doc.Lines {
		line := &doc.Lines[i]
		if line.Kind != LinePattern {
			continue
		}
		e := line.Entry
		key := conflictKey{body: e.Body, wildcard: e.HasWildcard, globstar: e.HasGlobstar}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], occurrence{line: line.Number, raw: line.Raw, negated: e.Negated})
	}

	var conflicts []Conflict
	for _, key := range order {
		occ := groups[key]
		for i := 0; i < len(occ); i++ {
			for j := i + 1; j < len(occ); j++ {
				if occ[i].negated == occ[j].negated {
					continue
				}
				conflicts = append(conflicts, Conflict{
					LineA:    occ[i].line,
					PatternA: occ[i].raw,
					LineB:    occ[j].line,
					PatternB: occ[j].raw,
					Reason:   conflictReason(occ[i].raw, occ[j].raw, occ[j].negated),
				})
			}
		}
	}

	return conflicts
}

func conflictReason(earlier, later string, laterNegated bool) string {
	if laterNegated {
		return fmt.Sprintf("%q re-includes files excluded by %q", later, earlier)
	}
	return fmt.Sprintf("%q excludes files re-included by %q", later, earlier)
}
