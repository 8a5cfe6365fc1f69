package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Delete your completions, badges, XP and streak. Your account and community posts are kept.",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			if err := runForm(confirmForm(fmt.Sprintf("Reset all progress for %s?", u.Username), &confirmed)); err != nil {
				return err
			}
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
			return nil
		}
		if err := e.journey.Reset(cmd.Context(), u.ID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset. Fresh start!")
		return nil
	}),
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
