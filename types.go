package csslint

import "context"

// Supported source syntaxes.
const (
	SyntaxCSS  = "css"
	SyntaxHTML = "html"
)

// Supported output styles for re-serializing fixed CSS.
const (
	StyleCompact = "compact"
	StyleNested  = "nested"
)

// Warning severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LintRequest is the body of POST /lint. Treated as immutable once
// received; the pipeline never writes into it.
type LintRequest struct {
	Code   string     `json:"code"`
	Syntax string     `json:"syntax"`
	Config RuleConfig `json:"config"`
}

// RuleConfig carries the caller-selected rules and optional output style.
// Rule values are opaque to the core: null disables a rule; booleans,
// strings, numbers and tuples pass to the engine untouched, except for
// the legacy name remap applied during synthesis.
type RuleConfig struct {
	Rules       map[string]any `json:"rules"`
	OutputStyle string         `json:"outputStyle,omitempty"`
}

// EngineConfig is the complete configuration handed to the lint engine.
// Built by Synthesize and never mutated afterwards. The Rules map is a
// fresh copy per synthesis so two configs never share state with each
// other or with the caller.
type EngineConfig struct {
	Extends      []string
	Plugins      []string
	Rules        map[string]any
	CustomSyntax string
}

// Warning is a single diagnostic reported by the engine.
// Line and Column are 1-based.
type Warning struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// EngineResult is the raw outcome of one engine run: the auto-fixed
// source and whatever warnings remain after fixing.
type EngineResult struct {
	Output   string
	Warnings []Warning
}

// Engine is the injected lint/auto-fix collaborator. Implementations
// must be safe for concurrent use; the orchestrator shares one instance
// across requests.
type Engine interface {
	Lint(ctx context.Context, code string, cfg EngineConfig) (*EngineResult, error)
	Version() string
}

// LintResult is the response envelope for a lint run. Content is nil
// when the run failed.
type LintResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Content *LintContent `json:"content"`
}

// LintContent carries the fixed output and diagnostics of a successful run.
type LintContent struct {
	Warnings []Warning  `json:"warnings"`
	Output   string     `json:"output"`
	Info     EngineInfo `json:"info"`
}

// EngineInfo describes the engine that produced a result.
type EngineInfo struct {
	Version string     `json:"version"`
	Config  InfoConfig `json:"config"`
}

// InfoConfig echoes the non-rule parts of the synthesized configuration.
type InfoConfig struct {
	Extends      []string `json:"extends"`
	Plugins      []string `json:"plugins"`
	CustomSyntax string   `json:"customSyntax,omitempty"`
}
