// Package main is the entry point for the planproof CLI.
package main

import (
	"os"

	"github.com/tOgg1/planproof/internal/cli"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var _ = []string{commit, date}

func main() {
	os.Exit(cli.Execute(version))
}
