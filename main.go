// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for ContaBancaria.
//
// Usage:
//
//	go run . [flags]
//	./contabancaria [command] [flags]
//
// Without a command the interactive account form starts. See --help for
// options.
package main

import (
	"os"

	"github.com/contabancaria/contabancaria/ui/cli"
)

func main() {
	// cobra has already printed the error
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
