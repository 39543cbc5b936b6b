package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csslint-server",
	Short: "CSS lint and auto-fix service",
	Long: `mongmung csslint server.
Accepts CSS (or HTML with embedded CSS), runs it through the lint
engine with auto-fix, and returns the fixed source plus diagnostics.
Without a subcommand the HTTP server is started.`,
	// Default behavior: serve when no subcommand is given. loadConfig
	// must run here because serveCmd's PreRunE is not triggered when
	// delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runServe(serveCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().String("config", ".csslint.yaml", "Config file path")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)
}
