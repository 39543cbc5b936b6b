// Package reporter renders lint warnings for terminal consumption in
// the file:line:col style used by Go linters.
package reporter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// Reporter formats warnings onto a writer.
type Reporter struct {
	w         io.Writer
	useColors bool
	printRule bool
}

// New creates a reporter. When useColors is false all styling is
// suppressed, suitable for piped output.
func New(w io.Writer, useColors, printRule bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, printRule: printRule}
}

// ShouldUseColors decides color output from flags and environment:
// an explicit flag wins, then CI conventions, then TTY detection.
func ShouldUseColors(forced bool) bool {
	if forced {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if info, _ := os.Stdout.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintWarnings prints one line per warning, sorted by position.
func (r *Reporter) PrintWarnings(file string, warnings []csslint.Warning) {
	sorted := make([]csslint.Warning, len(warnings))
	copy(sorted, warnings)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Column < sorted[j].Column
	})

	for _, w := range sorted {
		location := fmt.Sprintf("%s:%d:%d:", file, w.Line, w.Column)

		severity := w.Severity
		style := styleYellow
		if severity == csslint.SeverityError {
			style = styleRed
		}

		// Warning text carries a trailing "(rule)" in the stylelint
		// convention; honor the printRule setting either way.
		text := w.Text
		ruleSuffix := " (" + w.Rule + ")"
		if trimmed, found := strings.CutSuffix(text, ruleSuffix); found {
			text = trimmed
		}
		suffix := ""
		if r.printRule && w.Rule != "" {
			suffix = " " + render(styleGray, "("+w.Rule+")", r.useColors)
		}

		fmt.Fprintf(r.w, "%s %s %s%s\n",
			render(styleCyan, location, r.useColors),
			render(style, severity+":", r.useColors),
			text,
			suffix)
	}
}

// PrintSummary prints the closing line for a lint run.
func (r *Reporter) PrintSummary(files, warningCount, errorCount int) {
	if warningCount == 0 && errorCount == 0 {
		fmt.Fprintln(r.w, render(styleGreen,
			fmt.Sprintf("%d file%s checked, no issues found", files, pluralize(files)),
			r.useColors))
		return
	}
	fmt.Fprintf(r.w, "%d file%s checked: %d error%s, %d warning%s\n",
		files, pluralize(files),
		errorCount, pluralize(errorCount),
		warningCount, pluralize(warningCount))
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
