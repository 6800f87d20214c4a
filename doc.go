// Package gitweep normalizes and deduplicates gitignore-style pattern files.
//
// The package parses a .gitignore text buffer into a structured document,
// removes redundant or functionally-equivalent patterns while preserving the
// file's semantic effect, and renders a minimized file that keeps comments
// and blank-line structure intact. It reasons about pattern text only; it is
// not a matcher and never decides whether a given path is ignored.
//
// # Basic Usage
//
//	opt := gitweep.New()
//
//	content, _ := os.ReadFile(".gitignore")
//	out, report := opt.Optimize(content)
//
//	fmt.Printf("removed %d lines\n", report.LinesRemoved)
//	_ = os.WriteFile(".gitignore", out, 0o644)
//
// # Optimization Modes
//
// Four modes control how loosely equivalence is applied:
//
//   - Conservative: drop a pattern only when its raw text is byte-for-byte
//     identical to an earlier kept pattern.
//   - Standard (default): same pattern policy as Conservative; comments and
//     blank lines are always preserved.
//   - Aggressive: drop patterns whose canonical signature (negation,
//     anchoring, directory marker, normalized body) matches an earlier kept
//     pattern; also drop exact-duplicate comments and collapse blank runs.
//   - Advanced: signature-based deduplication plus full pattern analysis in
//     the report.
//
// Negated and non-negated forms of the same body are never merged, anchored
// and unanchored patterns are always distinct, and comparison is
// case-sensitive throughout. Equivalence is purely syntactic: the package
// never tries to prove that two different glob expressions match the same
// file set, so "*.log" and "**/*.log" always both survive.
//
// # Input Normalization
//
// Input buffers are normalized before classification:
//
//   - UTF-8 BOM is stripped if present
//   - CRLF and CR line endings are handled; the original terminator style
//     is preserved in rendered output
//   - Unescaped trailing whitespace on each line is ignored for analysis
//     (the raw text is kept for byte-exact passthrough)
//
// Conflicts between a pattern and a later negation of the same target are
// detected and reported, never auto-resolved: both sides of a negation pair
// always survive optimization.
package gitweep
