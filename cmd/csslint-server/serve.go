package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	csslint "github.com/bearholmes/mongmung-csslint-server"
	"github.com/bearholmes/mongmung-csslint-server/internal/engine"
	"github.com/bearholmes/mongmung-csslint-server/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP lint service",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Listen port (default 3000)")
	serveCmd.Flags().String("env", "", `Deployment environment name (default "development")`)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := buildServerConfig()
	linter := csslint.NewLinter(engine.New())

	slog.Info("starting csslint server",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"engine_version", engine.Version)

	return server.New(cfg, linter).Run()
}
