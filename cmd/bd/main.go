package main

import (
	"os"

	"github.com/fatih/color"

	"birthdays/internal/cli"
	"birthdays/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	root := cli.NewRootCommand(config.NewLoader(), version)

	if err := root.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
