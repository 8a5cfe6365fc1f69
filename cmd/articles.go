package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/ui/markup"
	"github.com/abhisek/ascend/internal/ui/theme"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse the article catalog",
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles with their lock state",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		cats := catalog.Categories()
		if id, _ := cmd.Flags().GetString("category"); id != "" {
			c, err := catalog.GetCategory(catalog.CategoryID(id))
			if err != nil {
				return err
			}
			cats = []catalog.Category{c}
		}

		// Signed-out learners see the catalog as a new learner would.
		completed := map[string]bool{}
		if u := e.auth.Session().CurrentUser(); u != nil {
			done, err := e.journey.Completed(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			completed = done
		}

		out := cmd.OutOrStdout()
		for i, c := range cats {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s %s  %s\n", c.Icon, theme.Heading.Render(c.Title),
				theme.Hint.Render(fmt.Sprintf("%d/%d completed", catalog.CompletedIn(c.ID, completed), len(catalog.ArticlesByCategory(c.ID)))))
			var rows [][]string
			for _, s := range catalog.StatesFor(c.ID, completed) {
				rows = append(rows, []string{
					s.State.Icon(),
					s.Article.ID,
					s.Article.Title,
					s.Article.Level.Label(),
					s.Article.Duration,
				})
			}
			fmt.Fprint(out, renderTable([]string{"", "ID", "TITLE", "LEVEL", "TIME"}, rows))
		}
		return nil
	}),
}

var articlesReadCmd = &cobra.Command{
	Use:   "read <article-id>",
	Short: "Print an article",
	Args:  cobra.ExactArgs(1),
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		a, err := catalog.GetArticle(args[0])
		if err != nil {
			return err
		}
		completed, err := e.journey.Completed(cmd.Context(), u.ID)
		if err != nil {
			return err
		}
		if ok, _ := catalog.IsUnlocked(a.ID, completed); !ok {
			return fmt.Errorf("%s: %w; finish the previous article first", a.ID, journey.ErrLocked)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(a.Title))
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%s · %s · %s", a.Level.Label(), a.Duration, a.Description)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, markup.Plain(a.Content))
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Take the quiz: ascend complete %s --choice N --answer key=value ...", a.ID)))
		return nil
	}),
}

func init() {
	articlesListCmd.Flags().String("category", "", "Only list this category (looksmaxxing, ancestral-eating)")
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesReadCmd)
}
