package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/gaborage/stmtkit/internal/commands"
)

var version = "dev" // Will be set during build

func main() {
	rootCmd := commands.NewRootCommand(version)

	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprint(os.Stderr, "Error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
