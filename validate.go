package csslint

import (
	"fmt"
	"strings"
)

// Validate checks a request before any engine work happens. Checks run
// in a fixed order so error messages are deterministic; the first
// failure wins and no further checks run.
func Validate(req *LintRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return ErrEmptyCode
	}
	if req.Syntax != SyntaxCSS && req.Syntax != SyntaxHTML {
		return fmt.Errorf("%w: %q", ErrUnsupportedSyntax, req.Syntax)
	}
	if len(req.Config.Rules) == 0 {
		return ErrNoRules
	}
	if style := req.Config.OutputStyle; style != "" && style != StyleCompact && style != StyleNested {
		return fmt.Errorf("%w: %q", ErrUnsupportedOutputStyle, style)
	}
	return nil
}
