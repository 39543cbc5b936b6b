package csslint

// Presets and plugins included in every synthesized configuration.
// Callers cannot change these; order is part of the contract. The
// slices are shared across configs but never written after init.
var (
	defaultExtends = []string{
		"stylelint-config-standard",
		"stylelint-config-recommended",
		"stylelint-config-html",
	}
	defaultPlugins = []string{
		"stylelint-order",
		"@stylistic/stylelint-plugin",
	}
)

// legacyRuleRenames maps rule names that moved namespaces in newer
// engine majors. Applied once during synthesis; future remaps are new
// entries here, not new branches.
var legacyRuleRenames = map[string]string{
	"color-hex-case": "@stylistic/color-hex-case",
}

// customSyntaxes maps a request syntax to the engine parser override.
// An empty value means the engine's native CSS parser.
var customSyntaxes = map[string]string{
	SyntaxCSS:  "",
	SyntaxHTML: "postcss-html",
}

// Synthesize builds the engine configuration for one request. The
// caller's rules map is copied, never mutated, and the copy is owned by
// the returned config alone. Total over its input domain: there is no
// error path.
func Synthesize(rules map[string]any, syntax string) EngineConfig {
	copied := make(map[string]any, len(rules))
	for name, value := range rules {
		copied[name] = value
	}
	for oldName, newName := range legacyRuleRenames {
		if value, ok := copied[oldName]; ok {
			copied[newName] = value
			delete(copied, oldName)
		}
	}

	return EngineConfig{
		Extends:      defaultExtends,
		Plugins:      defaultPlugins,
		Rules:        copied,
		CustomSyntax: customSyntaxes[syntax],
	}
}
