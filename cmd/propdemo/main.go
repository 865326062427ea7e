// Package main implements the propdemo CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	parser, err := demoParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(newApp(parser, os.Environ()))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
