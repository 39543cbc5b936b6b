package csslint

import "errors"

// Sentinel errors for the lint pipeline.
var (
	// ErrEmptyCode indicates the submitted code was empty or whitespace-only.
	ErrEmptyCode = errors.New("code must not be empty")

	// ErrUnsupportedSyntax indicates a syntax outside {css, html}.
	ErrUnsupportedSyntax = errors.New("unsupported syntax")

	// ErrNoRules indicates the rules mapping had no entries.
	ErrNoRules = errors.New("at least one lint rule is required")

	// ErrUnsupportedOutputStyle indicates an output style outside {compact, nested}.
	ErrUnsupportedOutputStyle = errors.New("unsupported output style")

	// ErrParse indicates the fixed CSS could not be re-serialized.
	ErrParse = errors.New("failed to parse fixed CSS")

	// ErrLintExecution wraps unexpected failures raised by the engine.
	ErrLintExecution = errors.New("lint execution failed")
)

// IsRequestError reports whether err is caused by the request itself and
// should map to a 4xx response at the HTTP boundary.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrEmptyCode) ||
		errors.Is(err, ErrUnsupportedSyntax) ||
		errors.Is(err, ErrNoRules) ||
		errors.Is(err, ErrUnsupportedOutputStyle) ||
		errors.Is(err, ErrParse)
}
