// Package main is the entry point for the breakdown CLI.
package main

import (
	"github.com/wexinc/breakdown/cmd/breakdown/cmd"
)

// Version information - set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
