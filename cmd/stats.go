package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		d, err := e.journey.Dashboard(cmd.Context(), u.ID)
		if err != nil {
			return err
		}
		p := d.Profile
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, theme.Title.Render(p.Username))
		into, needed := gamify.LevelProgress(p.XP)
		fmt.Fprintln(out, components.NewCountBar(fmt.Sprintf("Level %-3d", p.Level), into, needed, planWidth).View())

		streak := "no streak yet"
		if p.LastActivityDate != nil {
			streak = fmt.Sprintf("%d day(s), last active %s", p.StreakDays, p.LastActivityDate.Format("Jan 2"))
		}
		rows := [][]string{
			{"XP", fmt.Sprint(p.XP)},
			{"Streak", streak},
			{"Articles", fmt.Sprint(len(d.Completed))},
			{"Badges", fmt.Sprintf("%d of %d", len(d.Badges), len(gamify.AllBadgeTypes()))},
			{"Member since", p.CreatedAt.Format("Jan 2, 2006")},
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, renderTable([]string{"STAT", "VALUE"}, rows))

		fmt.Fprintln(out)
		for _, cp := range d.Progress {
			fmt.Fprintln(out, components.NewCountBar(
				fmt.Sprintf("%s %-18s", cp.Category.Icon, cp.Category.Title), cp.Completed, cp.Total, planWidth).View())
		}
		return nil
	}),
}
