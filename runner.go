package csslint

import (
	"context"
	"fmt"
)

// Linter sequences validation, configuration synthesis, engine
// invocation and output formatting for a single request. Safe for
// concurrent use: it holds no per-request state.
type Linter struct {
	engine Engine
}

// NewLinter creates a Linter backed by the given engine.
func NewLinter(engine Engine) *Linter {
	return &Linter{engine: engine}
}

// Run executes the full lint pipeline. Validation errors and ErrParse
// propagate unchanged; any other failure raised by the engine is
// wrapped into ErrLintExecution with the original message. A successful
// run always returns Success=true with a non-nil Content.
func (l *Linter) Run(ctx context.Context, req *LintRequest) (*LintResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	cfg := Synthesize(req.Config.Rules, req.Syntax)

	res, err := l.engine.Lint(ctx, req.Code, cfg)
	if err != nil {
		if IsRequestError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrLintExecution, err)
	}

	output, err := Format(engineOutput(res, req.Code), req.Config.OutputStyle, req.Syntax)
	if err != nil {
		return nil, err
	}

	return &LintResult{
		Success: true,
		Message: "lint completed",
		Content: &LintContent{
			Warnings: extractWarnings(res),
			Output:   output,
			Info: EngineInfo{
				Version: l.engine.Version(),
				Config: InfoConfig{
					Extends:      cfg.Extends,
					Plugins:      cfg.Plugins,
					CustomSyntax: cfg.CustomSyntax,
				},
			},
		},
	}, nil
}

// extractWarnings pulls the warning list out of an engine result without
// ever failing: a nil result or nil slice becomes an empty sequence.
func extractWarnings(res *EngineResult) []Warning {
	if res == nil || res.Warnings == nil {
		return []Warning{}
	}
	return res.Warnings
}

// engineOutput guards against engines that return a nil result with a
// nil error; the unfixed input is better than a panic.
func engineOutput(res *EngineResult, fallback string) string {
	if res == nil {
		return fallback
	}
	return res.Output
}
