package gitweep

import (
	"testing"
)

func TestRenderTerminatorPreservation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"lf kept", "*.log\nbuild/\n", "*.log\nbuild/\n"},
		{"crlf kept", "*.log\r\nbuild/\r\n", "*.log\r\nbuild/\r\n"},
		{"no trailing newline kept", "*.log\nbuild/", "*.log\nbuild/"},
		{"crlf no trailing newline", "*.log\r\nbuild/", "*.log\r\nbuild/"},
		{"blank structure kept", "# a\n\n*.log\n", "# a\n\n*.log\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse([]byte(tt.content))
			if got := string(doc.Render()); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	// A document with nothing to remove renders byte-identically.
	content := "# Logs\n*.log \n\n!debug.log\nДанные/\n"
	out, report := New().Optimize([]byte(content))
	if string(out) != content {
		t.Errorf("Optimize changed a clean file: %q -> %q", content, out)
	}
	if report.LinesRemoved != 0 {
		t.Errorf("LinesRemoved = %d, want 0", report.LinesRemoved)
	}
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"known pattern gets comment",
			"*.log\n",
			"# Log files\n*.log\n",
		},
		{
			"existing comment not duplicated",
			"# my own note\n*.log\n",
			"# my own note\n*.log\n",
		},
		{
			"unknown pattern untouched",
			"something-custom\n",
			"something-custom\n",
		},
		{
			"mixed document",
			"*.log\nsomething-custom\nnode_modules/\n",
			"# Log files\n*.log\nsomething-custom\n# Node.js dependencies\nnode_modules/\n",
		},
		{
			"trailing space still recognized",
			"*.log \n",
			"# Log files\n*.log \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse([]byte(tt.content))
			if got := string(doc.Annotate().Render()); got != tt.want {
				t.Errorf("Annotate(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestAnnotateNeverChangesPatterns(t *testing.T) {
	content := "*.log\nbuild/\nnode_modules/\ncustom\n"
	doc, _ := Parse([]byte(content))
	annotated := doc.Annotate()

	var before, after []string
	for _, e := range doc.Patterns() {
		before = append(before, e.Raw)
	}
	for _, e := range annotated.Patterns() {
		after = append(after, e.Raw)
	}

	if len(before) != len(after) {
		t.Fatalf("pattern count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("pattern %d changed: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestOptimizeWithGeneratedComments(t *testing.T) {
	opt := NewWithOptions(Options{Mode: Standard, GenerateComments: true})
	out, _ := opt.Optimize([]byte("*.log\n*.log\n"))
	if string(out) != "# Log files\n*.log\n" {
		t.Errorf("output = %q, want annotated deduplicated file", out)
	}
}
