// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelterapp/cli/internal/logging"
)

// logoutCmd represents the logout command for ending the session on this
// device. It removes the stored session from the configured local store and
// forgets the signed-in user.
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout"},
	Short:   "Sign out and remove the session from this device",
	Long: `The logout command ends your Shelterapp session on this device. The stored
session is removed from the OS keychain or local store, and later commands will
treat you as signed out.

Only this device is affected. Sessions on other devices stay untouched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sess, _, release, err := openSession(ctx)
		if err != nil {
			fmt.Println(logging.PresentError("❌ Could not open session storage", err))
			return err
		}
		defer release()

		wasSignedIn := sess.Snapshot().CurrentUser != nil

		if err := sess.SignOut(ctx); err != nil {
			fmt.Println(logging.PresentError("❌ Logout failed", err))
			return err
		}

		if !wasSignedIn {
			fmt.Println("You weren't signed in on this device.")
			return nil
		}
		fmt.Println("✅ You've been signed out on this device")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
