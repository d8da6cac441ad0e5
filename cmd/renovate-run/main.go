package main

import (
	"os"

	"github.com/RevCBH/renovate-run/internal/cli"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New()
	app.SetVersion(version, commit, date)
	app.SetOutput(os.Stdout, os.Stderr)

	os.Exit(app.Run(os.Args[1:]))
}
