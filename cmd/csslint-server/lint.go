package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	csslint "github.com/bearholmes/mongmung-csslint-server"
	"github.com/bearholmes/mongmung-csslint-server/internal/engine"
	"github.com/bearholmes/mongmung-csslint-server/internal/reporter"
	"github.com/bearholmes/mongmung-csslint-server/internal/scan"
)

var lintCmd = &cobra.Command{
	Use:   "lint [patterns...]",
	Short: "Lint local CSS and HTML files",
	Long: `Lints files matching the given glob patterns (** supported) with the
same engine the HTTP service uses. Rules come from lint.rules in the
config file, falling back to a small default set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	lintCmd.Flags().Bool("strict", false, "Exit with code 1 if any warning is found")
	lintCmd.Flags().Bool("print-rule-name", true, "Show the rule name after each warning")
}

func runLint(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"**/*.css"}
	}

	files, err := scan.Files(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no lintable files found")
		return nil
	}

	linter := csslint.NewLinter(engine.New())
	rules := buildLintRules()

	useColors := reporter.ShouldUseColors(getBoolWithFallback("color", "color", false))
	printRule := getBoolWithFallback("print-rule-name", "lint.print-rule-name", true)
	rep := reporter.New(cmd.OutOrStdout(), useColors, printRule)

	var warningCount, errorCount int
	for _, path := range files {
		// #nosec G304 - paths come from caller-supplied glob patterns
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file %s: %w", path, err)
		}

		result, err := linter.Run(cmd.Context(), &csslint.LintRequest{
			Code:   string(content),
			Syntax: scan.Syntax(path),
			Config: csslint.RuleConfig{Rules: rules},
		})
		if err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}

		rep.PrintWarnings(path, result.Content.Warnings)
		for _, w := range result.Content.Warnings {
			if w.Severity == csslint.SeverityError {
				errorCount++
			} else {
				warningCount++
			}
		}
	}

	rep.PrintSummary(len(files), warningCount, errorCount)

	if getBoolWithFallback("strict", "lint.strict", false) && warningCount+errorCount > 0 {
		return fmt.Errorf("found %d issue(s)", warningCount+errorCount)
	}
	return nil
}
