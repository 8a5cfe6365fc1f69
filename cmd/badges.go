package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/ui/theme"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned and locked badges",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		d, err := e.journey.Dashboard(cmd.Context(), u.ID)
		if err != nil {
			return err
		}
		earned := make(map[gamify.BadgeType]time.Time, len(d.Badges))
		for _, b := range d.Badges {
			earned[gamify.BadgeType(b.Type)] = b.EarnedAt
		}

		var rows [][]string
		for _, t := range gamify.AllBadgeTypes() {
			at, ok := earned[t]
			if !ok {
				rows = append(rows, []string{"🔒", theme.BadgeLocked.Render(t.DisplayName()), theme.Hint.Render(t.Description()), ""})
				continue
			}
			rows = append(rows, []string{t.Icon(), theme.Badge.Render(t.DisplayName()), t.Description(), at.Format("Jan 2, 2006")})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d of %d badges earned\n\n", len(earned), len(gamify.AllBadgeTypes()))
		fmt.Fprint(out, renderTable([]string{"", "BADGE", "HOW", "EARNED"}, rows))
		return nil
	}),
}
