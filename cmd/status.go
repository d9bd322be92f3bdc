// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"shelterapp/cli/internal/logging"
)

var (
	verboseStatus bool
)

// statusCmd represents the status command for displaying full session details.
// It shows the signed-in account, its role, and which storage backend holds
// the session on this device.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session details and storage backend",
	Long: `The status command displays the full session stored on this device: the
account's name, email address, role, and identifier, plus the storage backend
holding the session (OS keychain, sqlite, or a state file).

If no session is stored, it will indicate that you are signed out.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Enable verbose mode for all modules if --verbose is set
		if verboseStatus {
			os.Setenv(logging.VerboseEnv, "1")
		}

		ctx := cmd.Context()
		sess, backend, release, err := openSession(ctx)
		if err != nil {
			logging.Debugf("status: opening session failed: %v", err)
			pterm.Println("❌ Secure storage is not available on this system")
			pterm.Println("   Set storage.backend to \"sqlite\" or \"file\" in the config to use a local store")
			return err
		}
		defer release()

		snap := sess.Snapshot()
		if snap.LastError != "" {
			pterm.Println(fmt.Sprintf("⚠️  %s", snap.LastError))
		}
		if snap.CurrentUser == nil {
			pterm.Println("🔒 You're not signed in yet!")
			pterm.Println("   Run 'shelterapp login' to get started.")
			return nil
		}

		role := "Member"
		if snap.CurrentUser.IsAdmin {
			role = "Shelter staff"
		}
		details := fmt.Sprintf("Name:    %s\nEmail:   %s\nRole:    %s\nID:      %s\nStorage: %s",
			snap.CurrentUser.Name, snap.CurrentUser.Email, role, snap.CurrentUser.ID, backend)

		title := pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Session")
		box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details)
		pterm.Println(box)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&verboseStatus, "verbose", "v", false, "Enable verbose debug output")
}
