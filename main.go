// Package main provides the entry point for the remappings CLI.
// It delegates to the cmd package, which owns flag parsing and exit codes.
package main

import (
	"remappings/cmd"
)

func main() {
	cmd.Execute()
}
