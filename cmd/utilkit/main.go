package main

import (
	"os"

	"github.com/fatih/color"
)

// Version information - set at build time
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "utilkit: %v\n", err)
		os.Exit(1)
	}
}
