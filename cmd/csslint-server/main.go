// Package main provides the csslint-server CLI: an HTTP lint service
// plus a local lint mode for CSS and HTML files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
