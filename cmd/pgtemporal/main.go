// Command pgtemporal parses, formats, and computes with PostgreSQL dates,
// timestamps, and intervals from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/theory/pgtemporal/cmd/pgtemporal/command"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
