// Package engine implements the lint/auto-fix engine behind the
// csslint orchestrator.
//
// The engine runs a single token-stream pass over the source (the
// tdewolff CSS lexer, no AST), applying auto-fixes in place and
// collecting warnings for violations it cannot fix. Rule names follow
// the stylelint convention; rules the engine does not know are ignored
// so callers can submit a full stylelint configuration unchanged.
//
// Supported rules:
//
//   - @stylistic/color-hex-case ("lower"|"upper") - auto-fixed
//   - color-no-invalid-hex (true)
//   - block-no-empty (true)
//   - declaration-block-no-duplicate-properties (true)
//
// A rule value may be a [primary, {severity: "..."}] tuple; the
// secondary severity overrides the default of "error". Null and false
// disable a rule.
package engine

import (
	"context"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// Version identifies the engine build. Read once at process start,
// echoed in every result's info block.
const Version = "16.25.0"

// Rule names understood by this engine.
const (
	RuleColorHexCase        = "@stylistic/color-hex-case"
	RuleColorNoInvalidHex   = "color-no-invalid-hex"
	RuleBlockNoEmpty        = "block-no-empty"
	RuleNoDuplicateProperty = "declaration-block-no-duplicate-properties"
)

// Engine is the concrete lint engine. Stateless; one instance serves
// all requests.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Version returns the engine version string.
func (e *Engine) Version() string {
	return Version
}

// Lint runs the configured rules over code, applying fixes and
// collecting warnings. With the postcss-html custom syntax each
// <style> block is linted independently and spliced back into the
// untouched HTML wrapper.
func (e *Engine) Lint(ctx context.Context, code string, cfg csslint.EngineConfig) (*csslint.EngineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := compileRules(cfg.Rules)
	if cfg.CustomSyntax == "postcss-html" {
		return lintHTML(code, settings), nil
	}

	output, warnings := lintCSS(code, settings)
	return &csslint.EngineResult{Output: output, Warnings: warnings}, nil
}

// ruleSetting is the decoded form of one opaque rule value.
type ruleSetting struct {
	enabled  bool
	primary  any
	severity string
}

// compileRules decodes the opaque rule mapping once per run. The tuple
// form [primary, options] carries an optional severity override.
func compileRules(rules map[string]any) map[string]ruleSetting {
	compiled := make(map[string]ruleSetting, len(rules))
	for name, value := range rules {
		setting := ruleSetting{enabled: true, primary: value, severity: csslint.SeverityError}

		if tuple, ok := value.([]any); ok {
			setting.primary = nil
			if len(tuple) > 0 {
				setting.primary = tuple[0]
			}
			if len(tuple) > 1 {
				if opts, ok := tuple[1].(map[string]any); ok {
					if sev, ok := opts["severity"].(string); ok {
						setting.severity = sev
					}
				}
			}
		}

		switch primary := setting.primary.(type) {
		case nil:
			setting.enabled = false
		case bool:
			setting.enabled = primary
		}

		compiled[name] = setting
	}
	return compiled
}

// blockState tracks one open declaration block during the lexer pass.
type blockState struct {
	braceOffset int            // offset of the opening brace
	sawContent  bool           // any non-whitespace token inside
	properties  map[string]int // lowercased property -> first offset
}

// lintCSS is the single-pass worker: it copies tokens into the output
// verbatim except for fixed hex literals, and records warnings with
// 1-based positions computed from byte offsets.
func lintCSS(code string, rules map[string]ruleSetting) (string, []csslint.Warning) {
	lexer := css.NewLexer(parse.NewInputString(code))

	var out strings.Builder
	out.Grow(len(code))
	var warnings []csslint.Warning

	warn := func(rule string, offset int, text string) {
		setting := rules[rule]
		line, col := lineCol(code, offset)
		warnings = append(warnings, csslint.Warning{
			Line:     line,
			Column:   col,
			Rule:     rule,
			Severity: setting.severity,
			Text:     text + " (" + rule + ")",
		})
	}

	offset := 0
	inValue := false
	currentProp := ""
	propOffset := 0
	var blocks []*blockState

	endDeclaration := func() {
		if currentProp != "" && inValue && len(blocks) > 0 {
			current := blocks[len(blocks)-1]
			name := strings.ToLower(currentProp)
			if _, seen := current.properties[name]; seen {
				if rules[RuleNoDuplicateProperty].enabled {
					warn(RuleNoDuplicateProperty, propOffset,
						`Unexpected duplicate "`+name+`"`)
				}
			} else {
				current.properties[name] = propOffset
			}
		}
		currentProp = ""
		inValue = false
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		text := string(data)
		tokenOffset := offset
		offset += len(data)
		emitted := text

		// Whitespace and comments never count as block content.
		if tt != css.WhitespaceToken && tt != css.CommentToken && tt != css.RightBraceToken {
			if len(blocks) > 0 {
				blocks[len(blocks)-1].sawContent = true
			}
		}

		switch tt {
		case css.LeftBraceToken:
			blocks = append(blocks, &blockState{
				braceOffset: tokenOffset,
				properties:  make(map[string]int),
			})
			currentProp = ""
			inValue = false

		case css.RightBraceToken:
			endDeclaration()
			if len(blocks) > 0 {
				closed := blocks[len(blocks)-1]
				blocks = blocks[:len(blocks)-1]
				if !closed.sawContent && rules[RuleBlockNoEmpty].enabled {
					warn(RuleBlockNoEmpty, closed.braceOffset, "Unexpected empty block")
				}
			}

		case css.IdentToken:
			if len(blocks) > 0 && !inValue && currentProp == "" {
				currentProp = text
				propOffset = tokenOffset
			}

		case css.CustomPropertyNameToken:
			if len(blocks) > 0 && !inValue {
				currentProp = text
				propOffset = tokenOffset
			}

		case css.ColonToken:
			if currentProp != "" {
				inValue = true
			}

		case css.SemicolonToken:
			endDeclaration()

		case css.HashToken:
			if inValue {
				emitted = checkHexToken(text, tokenOffset, rules, warn)
			}
		}

		out.WriteString(emitted)
	}

	return out.String(), warnings
}

// checkHexToken validates a #hex literal in value position and applies
// the configured case fix. Fixed violations produce no warning.
func checkHexToken(token string, offset int, rules map[string]ruleSetting, warn func(string, int, string)) string {
	hex := token[1:]
	if !isHexColor(hex) {
		if rules[RuleColorNoInvalidHex].enabled {
			warn(RuleColorNoInvalidHex, offset, `Unexpected invalid hex color "`+token+`"`)
		}
		return token
	}

	setting := rules[RuleColorHexCase]
	if !setting.enabled {
		return token
	}
	switch setting.primary {
	case "lower":
		return "#" + strings.ToLower(hex)
	case "upper":
		return "#" + strings.ToUpper(hex)
	}
	return token
}

// isHexColor reports whether hex is a valid 3, 4, 6 or 8 digit color.
func isHexColor(hex string) bool {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	if last := strings.LastIndexByte(before, '\n'); last >= 0 {
		return line, offset - last
	}
	return line, offset + 1
}
