package gitweep

import (
	"fmt"
	"strings"
	"testing"
)

var benchContent = []byte(`# Dependencies
node_modules/
vendor/
.venv/

# Build
build/
dist/
*.exe
*.dll
*.so
build/

# Logs
*.log
logs/
*.log

# IDE
.idea/
.vscode/
*.swp

# OS
.DS_Store
Thumbs.db

# Environment
.env
.env.*
`)

// BenchmarkOptimize_Small measures a typical hand-written gitignore.
func BenchmarkOptimize_Small(b *testing.B) {
	opt := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = opt.Optimize(benchContent)
	}
}

// BenchmarkOptimize_Aggressive measures signature-based deduplication.
func BenchmarkOptimize_Aggressive(b *testing.B) {
	opt := NewWithOptions(Options{Mode: Aggressive})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = opt.Optimize(benchContent)
	}
}

// BenchmarkOptimize_Large measures near-linear behavior on a large file
// with scattered duplicates.
func BenchmarkOptimize_Large(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&sb, "pattern-%d/\n", i%500)
	}
	content := []byte(sb.String())
	opt := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = opt.Optimize(content)
	}
}

// BenchmarkParse measures classification and normalization alone.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse(benchContent)
	}
}

// BenchmarkParseEntry measures single-pattern normalization.
func BenchmarkParseEntry(b *testing.B) {
	lines := []string{"*.log", "!important.log", "/build/", "**/node_modules/", "*.py[cod]"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = parseEntry(lines[i%len(lines)], 1)
	}
}
