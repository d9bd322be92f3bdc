package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying the current session.
// It reads the session stored on this device and shows who is signed in,
// without contacting any remote service.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is signed in on this device",
	Long: `The whoami command shows the account currently signed in on this device. It
reads the session from the OS keychain or local store and prints the account's
email address.

If no session is stored, it will indicate that you are signed out. This command
is useful for checking your session before running other commands.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sess, _, release, err := openSession(ctx)
		if err != nil {
			// If the store can't be opened, treat as signed out
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Println("   Run 'shelterapp login' to get started.")
			return nil
		}
		defer release()

		snap := sess.Snapshot()
		if snap.CurrentUser == nil {
			if snap.LastError != "" {
				fmt.Printf("⚠️  %s\n", snap.LastError)
			}
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Println("   Run 'shelterapp login' to get started.")
			return nil
		}

		fmt.Println(getWhoAmIPhrase(snap.CurrentUser.Email))
		if snap.CurrentUser.IsAdmin {
			fmt.Println("🛡️  Shelter staff")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// getWhoAmIPhrase returns a friendly phrase with the user's identifier
func getWhoAmIPhrase(identifier string) string {
	return fmt.Sprintf("👤 Current user: %s", identifier)
}
