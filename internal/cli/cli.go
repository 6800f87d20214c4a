// Package cli implements the gitweep command: flag parsing, terminal
// output, and the glue between the core optimizer and the filesystem
// collaborators. The core package stays free of I/O.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gitweep/gitweep"
	"github.com/gitweep/gitweep/internal/fileops"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

type options struct {
	output           string
	backup           bool
	mode             string
	stats            bool
	dryRun           bool
	verbose          bool
	generateComments bool
	analyze          bool
	showCategories   bool
	global           bool
}

// NewRootCommand builds the gitweep command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gitweep [file]",
		Short: "Optimize .gitignore files by removing duplicate patterns",
		Long: "gitweep optimizes .gitignore files by detecting and removing duplicate\n" +
			"patterns while preserving comments, blank lines, and the file's semantic\n" +
			"effect. Negation pairs are reported as conflicts but never removed.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file (defaults to overwriting the input)")
	flags.BoolVarP(&opts.backup, "backup", "b", false, "create a backup copy before modifying the file")
	flags.StringVarP(&opts.mode, "mode", "m", "standard", "optimization mode: conservative, standard, aggressive, advanced")
	flags.BoolVarP(&opts.stats, "stats", "s", false, "show detailed statistics about the optimization")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would change without modifying the file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.generateComments, "generate-comments", false, "insert descriptive comments above recognized patterns")
	flags.BoolVar(&opts.analyze, "analyze", false, "show pattern analysis for the input file")
	flags.BoolVar(&opts.showCategories, "show-categories", false, "group patterns by category")
	flags.BoolVar(&opts.global, "global", false, "optimize the user's global gitignore file")

	return cmd
}

// Execute runs the command and returns a process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("error: ")+err.Error())
		return 1
	}
	return 0
}

func run(w io.Writer, args []string, opts *options) error {
	mode, ok := gitweep.ParseMode(opts.mode)
	if !ok {
		return errors.Errorf("unknown mode %q (want conservative, standard, aggressive, or advanced)", opts.mode)
	}

	inputPath, err := resolveInput(args, opts)
	if err != nil {
		return err
	}
	outputPath := opts.output
	if outputPath == "" {
		outputPath = inputPath
	}

	if opts.verbose {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("using %s optimization mode", mode)))
	}

	content, err := fileops.Read(inputPath)
	if err != nil {
		return err
	}

	optimizer := gitweep.NewWithOptions(gitweep.Options{
		Mode:             mode,
		GenerateComments: opts.generateComments,
	})
	optimized, report := optimizer.Optimize(content)

	printReport(w, report, opts)

	if opts.analyze {
		printAnalysis(w, report.Analysis)
	}
	if opts.showCategories {
		doc, _ := gitweep.Parse(content)
		printCategories(w, doc)
	}

	if opts.dryRun {
		fmt.Fprintln(w, dimStyle.Render("dry run - no changes were made"))
		return nil
	}

	if opts.backup {
		backupPath, err := fileops.Backup(inputPath)
		if err != nil {
			return err
		}
		if opts.verbose && backupPath != "" {
			fmt.Fprintln(w, dimStyle.Render("created backup: "+backupPath))
		}
	}

	if err := fileops.WriteAtomic(outputPath, optimized); err != nil {
		return err
	}

	fmt.Fprintln(w, successStyle.Render("✓ optimized "+outputPath))
	return nil
}

func resolveInput(args []string, opts *options) (string, error) {
	if opts.global {
		if len(args) > 0 {
			return "", errors.New("--global cannot be combined with a file argument")
		}
		return fileops.GlobalIgnorePath()
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return ".gitignore", nil
}

func printReport(w io.Writer, report *gitweep.Report, opts *options) {
	if report.LinesRemoved > 0 {
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ removed %d duplicate line(s)", report.LinesRemoved)))
	} else {
		fmt.Fprintln(w, successStyle.Render("✓ no duplicates found - file is already optimized"))
	}

	if opts.verbose && len(report.Duplicates) > 0 {
		fmt.Fprintln(w, headingStyle.Render("duplicate patterns:"))
		for _, pattern := range sortedKeys(report.Duplicates) {
			fmt.Fprintf(w, "  %s (lines %v)\n", pattern, report.Duplicates[pattern])
		}
	}

	for _, warning := range report.Warnings {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: line %d: %s: %q", warning.Line, warning.Message, warning.Pattern)))
	}

	if report.ConflictsFound > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d conflicting pattern pair(s) detected (kept)", report.ConflictsFound)))
		if opts.verbose {
			for _, c := range report.Conflicts {
				fmt.Fprintf(w, "  lines %d/%d: %s\n", c.LineA, c.LineB, c.Reason)
			}
		}
	}

	if opts.stats {
		printStats(w, report)
	}

	if opts.verbose {
		fmt.Fprintf(w, "original file: %d lines\n", report.Before.TotalLines)
		fmt.Fprintf(w, "optimized file: %d lines\n", report.After.TotalLines)
	}
}

func printStats(w io.Writer, report *gitweep.Report) {
	fmt.Fprintln(w, headingStyle.Render("statistics:"))
	fmt.Fprintf(w, "  original:  %d total, %d patterns, %d comments, %d blank\n",
		report.Before.TotalLines, report.Before.PatternLines, report.Before.CommentLines, report.Before.BlankLines)
	fmt.Fprintf(w, "  optimized: %d total, %d patterns, %d comments, %d blank\n",
		report.After.TotalLines, report.After.PatternLines, report.After.CommentLines, report.After.BlankLines)

	reduction := 0.0
	if report.Before.TotalLines > 0 {
		reduction = float64(report.LinesRemoved) / float64(report.Before.TotalLines) * 100
	}
	fmt.Fprintf(w, "  removed:   %d lines (%.1f%%)\n", report.LinesRemoved, reduction)
}

func printAnalysis(w io.Writer, a gitweep.Analysis) {
	fmt.Fprintln(w, headingStyle.Render("pattern analysis:"))
	fmt.Fprintf(w, "  total patterns: %d\n", a.TotalPatterns)
	fmt.Fprintf(w, "  negated:        %d\n", a.Negated)
	fmt.Fprintf(w, "  anchored:       %d\n", a.Anchored)
	fmt.Fprintf(w, "  directory-only: %d\n", a.DirOnly)
	fmt.Fprintf(w, "  wildcards:      %d\n", a.Wildcards)
	fmt.Fprintf(w, "  globstars:      %d\n", a.Globstars)
}

func printCategories(w io.Writer, doc *gitweep.Document) {
	groups := doc.Categories()
	if len(groups) == 0 {
		return
	}

	labels := make([]string, 0, len(groups))
	byLabel := make(map[string][]string, len(groups))
	for category, patterns := range groups {
		label := category.Display()
		labels = append(labels, label)
		byLabel[label] = patterns
	}
	sort.Strings(labels)

	fmt.Fprintln(w, headingStyle.Render("pattern categories:"))
	for _, label := range labels {
		fmt.Fprintf(w, "  %s\n", label)
		for _, pattern := range byLabel[label] {
			fmt.Fprintf(w, "    %s\n", pattern)
		}
	}
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
