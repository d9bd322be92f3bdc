// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Shelterapp CLI.
// It implements subcommands for signing in, registering, and inspecting the
// local session using the Cobra CLI framework. Session state lives on this
// device only, in the OS keychain or a local store.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd is the base command; subcommands attach themselves in their own
// init functions.
var rootCmd = &cobra.Command{
	Use:           "shelterapp",
	Short:         "Shelterapp CLI for managing your local session",
	Long:          `Shelterapp is a command-line tool for managing the animal shelter session on this device. Sign in, register, and check who you are without leaving the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("shelterapp %s\n", Version)
			return nil
		}
		// no subcommand and no flag: show help
		return cmd.Help()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
