package gitweep

// Category groups related ignore patterns for reporting. Group is one of
// "Language", "Tool", or "OS"; Name identifies the specific ecosystem.
type Category struct {
	Group string
	Name  string
}

// Uncategorized is returned for patterns the built-in table does not know.
var Uncategorized = Category{Name: "Uncategorized"}

// Display returns a human-readable label for the category.
func (c Category) Display() string {
	if c.Group == "" {
		return c.Name
	}
	return c.Group + ": " + c.Name
}

var (
	python  = Category{Group: "Language", Name: "Python"}
	node    = Category{Group: "Language", Name: "Node.js"}
	java    = Category{Group: "Language", Name: "Java"}
	rust    = Category{Group: "Language", Name: "Rust"}
	golang  = Category{Group: "Language", Name: "Go"}
	editor  = Category{Group: "Tool", Name: "Editors"}
	build   = Category{Group: "Tool", Name: "Build output"}
	macOS   = Category{Group: "OS", Name: "macOS"}
	windows = Category{Group: "OS", Name: "Windows"}
)

// categoryTable maps well-known pattern text to a category. Lookup is on
// the trailing-whitespace trimmed raw line, so table keys carry their
// slash markers exactly as users write them.
var categoryTable = map[string]Category{
	"*.pyc":          python,
	"*.pyo":          python,
	"__pycache__/":   python,
	".pytest_cache/": python,
	".mypy_cache/":   python,
	"venv/":          python,
	".venv/":         python,
	"env/":           python,
	".coverage":      python,
	"*.egg-info/":    python,

	"node_modules/":    node,
	"npm-debug.log*":   node,
	"yarn-debug.log*":  node,
	"yarn-error.log*":  node,
	".next/":           node,
	".nyc_output":      node,

	"*.class":  java,
	"*.jar":    java,
	"*.war":    java,
	"target/":  java,
	".gradle/": java,

	"Cargo.lock": rust,

	"*.test":  golang,
	"*.out":   golang,
	"vendor/": golang,

	".vscode/": editor,
	".idea/":   editor,
	"*.swp":    editor,
	"*.swo":    editor,
	"*~":       editor,

	"build/":    build,
	"dist/":     build,
	"out/":      build,
	"coverage/": build,

	".DS_Store": macOS,

	"Thumbs.db":   windows,
	"Desktop.ini": windows,
	"*.exe":       windows,
}

// descriptionTable maps well-known pattern text to a generated comment.
var descriptionTable = map[string]string{
	"*.log":          "Log files",
	"*.tmp":          "Temporary files",
	"*.bak":          "Backup files",
	"*.pid":          "Process ID files",
	"*.pyc":          "Python bytecode files",
	"__pycache__/":   "Python cache directory",
	"venv/":          "Python virtual environment",
	".venv/":         "Python virtual environment",
	".coverage":      "Python coverage data",
	".pytest_cache/": "Pytest cache directory",
	"node_modules/":  "Node.js dependencies",
	"npm-debug.log*": "NPM debug logs",
	"coverage/":      "Test coverage reports",
	"*.class":        "Java compiled classes",
	"*.jar":          "Java archive files",
	"target/":        "Maven or Cargo build output",
	".gradle/":       "Gradle cache directory",
	"build/":         "Build output directory",
	"dist/":          "Distribution directory",
	"out/":           "Build output directory",
	"vendor/":        "Vendored dependencies",
	".vscode/":       "VSCode workspace settings",
	".idea/":         "IntelliJ IDEA settings",
	"*.swp":          "Vim swap files",
	"*~":             "Editor backup files",
	".env":           "Environment variables file",
	".DS_Store":      "macOS system files",
	"Thumbs.db":      "Windows thumbnail cache",
}

// Categorize returns the category of a pattern entry, matched on its
// trimmed raw text. Unknown patterns report Uncategorized and false.
func Categorize(e *Entry) (Category, bool) {
	if c, ok := categoryTable[trimTrailingWhitespace(e.Raw)]; ok {
		return c, true
	}
	return Uncategorized, false
}

// describePattern returns the generated comment text for a well-known
// pattern line, if the table has one.
func describePattern(raw string) (string, bool) {
	desc, ok := descriptionTable[raw]
	return desc, ok
}

// Categories groups the document's pattern lines by category. Unknown
// patterns land under Uncategorized.
func (d *Document) Categories() map[Category][]string {
	groups := make(map[Category][]string)
	for i := range d.Lines {
		if d.Lines[i].Kind != LinePattern {
			continue
		}
		c, _ := Categorize(d.Lines[i].Entry)
		groups[c] = append(groups[c], d.Lines[i].Raw)
	}
	return groups
}
