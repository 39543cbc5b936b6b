package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/bearholmes/mongmung-csslint-server/internal/server"
)

var k = koanf.New(".")

// defaultLintRules is the rule set used by the CLI lint mode when the
// config file does not define lint.rules.
var defaultLintRules = map[string]any{
	"color-no-invalid-hex":                      true,
	"block-no-empty":                            true,
	"declaration-block-no-duplicate-properties": true,
	"@stylistic/color-hex-case":                 "lower",
}

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".csslint.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags have the highest precedence; only explicitly set flags
	// override earlier providers.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
// Separated from loadConfig so tests can run it without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSLINT_SERVER_PORT -> server.port
	// CSSLINT_LINT_STRICT -> lint.strict
	if err := k.Load(env.Provider("CSSLINT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSLINT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildServerConfig constructs the server configuration from koanf state.
func buildServerConfig() server.Config {
	return server.Config{
		Port:        getIntWithFallback("port", "server.port", 3000),
		Environment: getStringWithFallback("env", "server.env", "development"),
	}
}

// buildLintRules returns the rule mapping for the CLI lint mode.
func buildLintRules() map[string]any {
	if rules, ok := k.Get("lint.rules").(map[string]any); ok && len(rules) > 0 {
		return rules
	}
	return defaultLintRules
}

// getStringWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) && k.Int(flagKey) != 0 {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
