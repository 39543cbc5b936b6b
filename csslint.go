// Package csslint provides the lint core behind the mongmung csslint
// server: request validation, engine configuration synthesis, lint
// orchestration and output re-serialization.
//
// # Pipeline
//
// A lint run moves through four stages:
//
//  1. Validate   - reject malformed requests before any engine work
//  2. Synthesize - build the complete engine configuration
//  3. Engine     - run the lint/auto-fix engine (injected collaborator)
//  4. Format     - re-serialize the fixed CSS into compact or nested style
//
// The engine is modeled as a single-method collaborator so the
// orchestrator never depends on a concrete implementation:
//
//	linter := csslint.NewLinter(engine.New())
//	result, err := linter.Run(ctx, &csslint.LintRequest{
//		Code:   "body { color: #FFF; }",
//		Syntax: csslint.SyntaxCSS,
//		Config: csslint.RuleConfig{
//			Rules:       map[string]any{"@stylistic/color-hex-case": "lower"},
//			OutputStyle: csslint.StyleCompact,
//		},
//	})
//
// # Errors
//
// Validation failures and re-serialization failures surface as distinct
// sentinel errors (see errors.go) that callers can test with errors.Is.
// Anything unexpected raised by the engine is wrapped into
// ErrLintExecution with the original message preserved.
package csslint

// Public API:
// - Validate(req *LintRequest) error
// - Synthesize(rules map[string]any, syntax string) EngineConfig
// - Format(fixed, style, syntax string) (string, error)
// - NewLinter(engine Engine) *Linter
// - (*Linter).Run(ctx, req) (*LintResult, error)
