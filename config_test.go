package csslint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_FixedPresetsAndPlugins(t *testing.T) {
	cfg := Synthesize(map[string]any{"block-no-empty": true}, SyntaxCSS)

	assert.Equal(t, []string{
		"stylelint-config-standard",
		"stylelint-config-recommended",
		"stylelint-config-html",
	}, cfg.Extends)
	assert.Equal(t, []string{
		"stylelint-order",
		"@stylistic/stylelint-plugin",
	}, cfg.Plugins)
}

func TestSynthesize_CustomSyntax(t *testing.T) {
	rules := map[string]any{"block-no-empty": true}

	assert.Empty(t, Synthesize(rules, SyntaxCSS).CustomSyntax)
	assert.Equal(t, "postcss-html", Synthesize(rules, SyntaxHTML).CustomSyntax)
}

func TestSynthesize_CopiesRules(t *testing.T) {
	rules := map[string]any{
		"color-no-invalid-hex": true,
		"block-no-empty":       []any{true, map[string]any{"severity": "warning"}},
	}

	cfg := Synthesize(rules, SyntaxCSS)
	assert.Equal(t, rules, cfg.Rules)

	// Mutating the config must not leak back to the caller.
	cfg.Rules["injected"] = true
	assert.NotContains(t, rules, "injected")
}

func TestSynthesize_RulesNeverAlias(t *testing.T) {
	first := Synthesize(map[string]any{"a": 1}, SyntaxCSS)
	second := Synthesize(map[string]any{"b": 2}, SyntaxCSS)

	first.Rules["shared"] = true
	assert.NotContains(t, second.Rules, "shared")
}

func TestSynthesize_LegacyHexCaseRemap(t *testing.T) {
	rules := map[string]any{
		"color-hex-case":       "lower",
		"color-no-invalid-hex": true,
	}

	cfg := Synthesize(rules, SyntaxCSS)

	require.Contains(t, cfg.Rules, "@stylistic/color-hex-case")
	assert.Equal(t, "lower", cfg.Rules["@stylistic/color-hex-case"])
	assert.NotContains(t, cfg.Rules, "color-hex-case")
	assert.Equal(t, true, cfg.Rules["color-no-invalid-hex"])

	// The caller's mapping keeps the legacy name untouched.
	assert.Contains(t, rules, "color-hex-case")
	assert.NotContains(t, rules, "@stylistic/color-hex-case")
}

func TestSynthesize_RemapOnlyTouchesDocumentedKey(t *testing.T) {
	rules := map[string]any{"color-hex-case-like": "lower"}
	cfg := Synthesize(rules, SyntaxCSS)
	assert.Equal(t, rules, cfg.Rules)
}
