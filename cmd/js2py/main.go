// Package main provides the CLI for the js2py translator.
package main

import (
	"os"

	"github.com/leapstack-labs/js2py/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
