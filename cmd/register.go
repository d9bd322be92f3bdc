// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"shelterapp/cli/internal/logging"
)

var (
	verboseRegister bool
)

// registerCmd represents the register command for creating a new account.
// It prompts for the account details and signs the new member in on this
// device. New accounts are always regular members, never shelter staff.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create an account and sign in on this device",
	Long: `The register command creates a new Shelterapp account and signs you in on this
device. It prompts for your email address, a password, and the name other
members will see. If you were signed in before, the new account replaces the
previous session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Enable verbose mode for all modules if --verbose is set
		if verboseRegister {
			os.Setenv(logging.VerboseEnv, "1")
		}

		ctx := cmd.Context()
		sess, _, release, err := openSession(ctx)
		if err != nil {
			fmt.Println(logging.PresentError("❌ Could not open session storage", err))
			return err
		}
		defer release()

		email := promptLine("Email: ")
		if email == "" {
			return errors.New("email is required")
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		name := promptLine("Display name: ")
		if name == "" {
			return errors.New("name is required")
		}

		startTime := time.Now()
		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "Creating your account", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)

		ok := sess.Register(ctx, email, password, name)

		if elapsed := time.Since(startTime); elapsed < time.Second {
			time.Sleep(time.Second - elapsed)
		}
		stopSpinner()
		cursor.Show()

		if !ok {
			fmt.Println("❌ Registration failed. Your account could not be stored on this device.")
			return errors.New("registration failed")
		}

		fmt.Printf("🎉 Account created! Welcome, %s.\n", name)
		fmt.Printf("   You're signed in as %s on this device.\n", email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().BoolVarP(&verboseRegister, "verbose", "v", false, "Enable verbose debug output")
}
