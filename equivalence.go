package gitweep

// Mode is the optimization policy level. It controls how loosely pattern
// equivalence is applied and whether comments and blank runs are collapsed.
type Mode int

const (
	// Conservative drops a pattern only when its raw text is
	// byte-for-byte identical to an earlier kept pattern.
	Conservative Mode = iota
	// Standard is the default. Patterns follow the Conservative policy;
	// comments and blank lines are always preserved.
	Standard
	// Aggressive deduplicates patterns by canonical signature, drops
	// exact-duplicate comments, and collapses runs of blank lines.
	Aggressive
	// Advanced deduplicates patterns by canonical signature and fills the
	// report's pattern analysis; comments and blank lines are preserved.
	Advanced
)

// String returns the mode's flag-style name.
func (m Mode) String() string {
	switch m {
	case Conservative:
		return "conservative"
	case Standard:
		return "standard"
	case Aggressive:
		return "aggressive"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "conservative":
		return Conservative, true
	case "standard":
		return Standard, true
	case "aggressive":
		return Aggressive, true
	case "advanced":
		return Advanced, true
	default:
		return Standard, false
	}
}

// exactOnly reports whether the mode deduplicates patterns solely on raw
// byte equality. Under these modes a line differing from another only by
// trailing spaces survives, because the raw texts are not identical.
func (m Mode) exactOnly() bool {
	return m == Conservative || m == Standard
}

// Equivalent reports whether two entries denote the same ignore rule under
// the given mode.
//
// Under exact modes, equivalence is raw byte identity. Under signature
// modes, equivalence is canonical-signature identity: negation, anchoring,
// and the directory marker all participate, and wildcard bodies compare
// structurally, so "*.log" and "**/*.log" are never equivalent. Equivalence
// is purely syntactic; no glob-set reasoning is attempted.
func Equivalent(a, b *Entry, mode Mode) bool {
	// Negation changes which files are ignored; never collapse across it.
	if a.Negated != b.Negated {
		return false
	}
	if mode.exactOnly() {
		return a.Raw == b.Raw
	}
	return a.signature() == b.signature()
}
