// Package main is the entry point for the Shelterapp CLI application.
// It manages the shelter session stored on this device.
package main

import (
	"shelterapp/cli/cmd"
)

// main is the entry point for the Shelterapp CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
