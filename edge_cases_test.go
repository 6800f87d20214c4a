package gitweep

import (
	"strings"
	"testing"
)

func TestOptimizeWithBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("*.log\n*.log\n")...)
	out, report := New().Optimize(input)
	if string(out) != "*.log\n" {
		t.Errorf("output = %q, want BOM stripped and duplicate removed", out)
	}
	if report.DuplicatesFound != 1 {
		t.Errorf("DuplicatesFound = %d, want 1", report.DuplicatesFound)
	}
}

func TestOptimizeMixedLineEndings(t *testing.T) {
	// Mixed endings normalize to one internal model; any CRLF in the
	// input selects CRLF for the output.
	out, _ := New().Optimize([]byte("*.log\n*.log\r\nbuild/\r\n"))
	if string(out) != "*.log\r\nbuild/\r\n" {
		t.Errorf("output = %q, want CRLF-terminated deduplicated file", out)
	}
}

func TestOptimizeEscapedMarkers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"escaped hash survives", "\\#notacomment\n", "\\#notacomment\n"},
		{"escaped bang survives", "\\!notnegation\n", "\\!notnegation\n"},
		{"escaped hash deduplicates", "\\#tag\n\\#tag\n", "\\#tag\n"},
		{"escaped bang and negation distinct", "\\!foo\n!foo\n", "\\!foo\n!foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := optimizeString(t, Standard, tt.content)
			if got != tt.want {
				t.Errorf("Optimize(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestEscapedBangNotNegationSignature(t *testing.T) {
	// "\!foo" targets a literal file named "!foo"; "!foo" re-includes
	// "foo". They must never merge even under signature modes.
	got, _ := optimizeString(t, Aggressive, "\\!foo\n!foo\n")
	if got != "\\!foo\n!foo\n" {
		t.Errorf("output = %q, want both lines kept", got)
	}
}

func TestOptimizeUnicodePatterns(t *testing.T) {
	content := "Данные/\n*.лог\nДанные/\n# 📁\n🎉.tmp\n🎉.tmp\n"
	got, report := optimizeString(t, Standard, content)
	if got != "Данные/\n*.лог\n# 📁\n🎉.tmp\n" {
		t.Errorf("output = %q, want code-point exact deduplication", got)
	}
	if report.DuplicatesFound != 2 {
		t.Errorf("DuplicatesFound = %d, want 2", report.DuplicatesFound)
	}
}

func TestOptimizeMalformedLinesSurvive(t *testing.T) {
	// Parsing never drops a malformed line; it is kept as a literal and
	// reported as a warning.
	content := "[unterminated\n!\n*.log\n"
	got, report := optimizeString(t, Standard, content)
	if got != content {
		t.Errorf("output = %q, malformed lines must pass through", got)
	}
	if len(report.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2", report.Warnings)
	}
}

func TestOptimizeWhitespaceOnlyFile(t *testing.T) {
	got, report := optimizeString(t, Standard, "   \n\t\n")
	if got != "   \n\t\n" {
		t.Errorf("output = %q, blank lines are preserved by default", got)
	}
	if report.Before.BlankLines != 2 {
		t.Errorf("BlankLines = %d, want 2", report.Before.BlankLines)
	}
}

func TestOptimizeCommentOnlyFile(t *testing.T) {
	content := "# one\n# one\n# two\n"
	for _, tt := range []struct {
		mode Mode
		want string
	}{
		{Standard, "# one\n# one\n# two\n"},
		{Aggressive, "# one\n# two\n"},
	} {
		got, _ := optimizeString(t, tt.mode, content)
		if got != tt.want {
			t.Errorf("mode %v: output = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestOptimizeLongFile(t *testing.T) {
	// The seen set is a hash map; a large file with scattered duplicates
	// must still deduplicate completely.
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("pattern-")
		b.WriteByte(byte('a' + i%10))
		b.WriteString("\n")
	}

	_, report := optimizeString(t, Standard, b.String())
	if report.After.PatternLines != 10 {
		t.Errorf("After.PatternLines = %d, want 10", report.After.PatternLines)
	}
	if report.DuplicatesFound != 490 {
		t.Errorf("DuplicatesFound = %d, want 490", report.DuplicatesFound)
	}
}

func TestOptimizeNegationPairsAlwaysSurvive(t *testing.T) {
	// Negation non-collapse invariant, all modes.
	content := "build/\n!build/\nbuild/\n!build/\n"
	for _, mode := range []Mode{Conservative, Standard, Aggressive, Advanced} {
		got, _ := optimizeString(t, mode, content)
		if got != "build/\n!build/\n" {
			t.Errorf("mode %v: output = %q, want one positive and one negated survivor", mode, got)
		}
		if !strings.Contains(got, "build/") || !strings.Contains(got, "!build/") {
			t.Errorf("mode %v: output %q lost a side of the negation pair", mode, got)
		}
	}
}
