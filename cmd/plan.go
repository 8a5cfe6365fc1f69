package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/screens/plan"
)

const planWidth = 72

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show your personalized plan",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		d, err := e.journey.Dashboard(cmd.Context(), u.ID)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), plan.Render(d, planWidth))
		return nil
	}),
}
