// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"shelterapp/cli/internal/logging"
	"shelterapp/cli/internal/session"
)

var (
	verboseLogin bool
)

// loginCmd represents the login command for signing in on this device.
// It prompts for the account email and password, verifies the credentials,
// and stores the resulting session in the configured local store.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in and keep the session on this device",
	Long: `The login command signs you in to Shelterapp on this device. It prompts for
your email address and password, verifies them, and keeps the resulting session
in the OS keychain or a local store so later commands know who you are.

Addresses ending in @shelter.com are recognized as shelter staff.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Enable verbose mode for all modules if --verbose is set
		if verboseLogin {
			os.Setenv(logging.VerboseEnv, "1")
		}

		ctx := cmd.Context()
		sess, _, release, err := openSession(ctx)
		if err != nil {
			fmt.Println(logging.PresentError("❌ Could not open session storage", err))
			return err
		}
		defer release()

		// If already signed in, short-circuit
		if snap := sess.Snapshot(); snap.CurrentUser != nil {
			fmt.Printf("Already signed in as %s\n", snap.CurrentUser.Email)
			return nil
		}

		email := promptLine("Email: ")
		if email == "" {
			return errors.New("email is required")
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		// Lightweight inline spinner while credentials are checked and stored
		startTime := time.Now()
		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "Signing you in", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)

		signInErr := sess.SignIn(ctx, email, password)

		// Keep the spinner visible long enough to register
		if elapsed := time.Since(startTime); elapsed < time.Second {
			time.Sleep(time.Second - elapsed)
		}
		stopSpinner()
		cursor.Show()

		if signInErr != nil {
			var authErr *session.AuthError
			if errors.As(signInErr, &authErr) && authErr.Err == nil {
				fmt.Println("❌ Invalid credentials. Check your email and password, then try again.")
				return signInErr
			}
			fmt.Println(logging.PresentError("❌ Login failed", signInErr))
			return signInErr
		}

		snap := sess.Snapshot()
		fmt.Println(getRandomLoginGreeting(snap.CurrentUser.Name))
		if snap.CurrentUser.IsAdmin {
			fmt.Printf("🛡️  Staff access enabled for %s\n", snap.CurrentUser.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().BoolVarP(&verboseLogin, "verbose", "v", false, "Enable verbose debug output")
}

// getRandomLoginGreeting returns a random greeting phrase with the user's name
func getRandomLoginGreeting(name string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🐾 The shelter missed you, %s!",
		"👋 Hello %s! The animals are waiting.",
		"🌟 Welcome aboard, %s!",
		"✅ You're signed in, %s!",
		"🔓 Access granted! Welcome %s!",
	}

	idx := rand.Intn(len(greetings))
	return fmt.Sprintf(greetings[idx], name)
}
