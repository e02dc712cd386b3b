// Package main is the entry point for the localize-it CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/localize-it/cmd/localize-it/commands"
	"github.com/thoreinstein/localize-it/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	exitErr := errors.Classify(err)
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(os.Stderr, "%s %v\n", red.Sprint("Error:"), exitErr)
	if exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", exitErr.Suggestion)
	}
	os.Exit(exitErr.Code)
}
