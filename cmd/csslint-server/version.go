package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bearholmes/mongmung-csslint-server/internal/engine"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/csslint-server
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of csslint-server",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("csslint-server %s (engine %s)\n", version, engine.Version)
	},
}
