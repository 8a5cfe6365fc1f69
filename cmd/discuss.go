package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/ui/theme"
)

var discussCmd = &cobra.Command{
	Use:     "discuss",
	Aliases: []string{"community"},
	Short:   "Read and post on the community board",
}

var discussListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discussions, newest first",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		ds, err := e.community.ListDiscussions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(ds) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No discussions yet. Start one with `ascend discuss post`.")
			return nil
		}

		liked := map[string]bool{}
		if u := e.auth.Session().CurrentUser(); u != nil {
			if liked, err = e.community.LikedBy(cmd.Context(), u.ID); err != nil {
				return err
			}
		}

		now := time.Now()
		rows := make([][]string, 0, len(ds))
		for _, d := range ds {
			heart := "♡"
			if liked[d.ID] {
				heart = "♥"
			}
			rows = append(rows, []string{
				shortID(d.ID),
				truncate(d.Title, 40),
				d.Category,
				d.Author,
				fmt.Sprintf("%s %d", heart, d.LikesCount),
				fmt.Sprintf("💬 %d", d.CommentsCount),
				relativeDate(d.CreatedAt, now),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), renderTable(
			[]string{"ID", "TITLE", "CATEGORY", "AUTHOR", "LIKES", "REPLIES", "POSTED"}, rows))
		return nil
	}),
}

var discussPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Start a discussion",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		category, _ := cmd.Flags().GetString("category")
		content, _ := cmd.Flags().GetString("content")
		if title == "" || content == "" {
			if err := runForm(discussionForm(&title, &category, &content)); err != nil {
				return err
			}
		}

		posted, err := e.community.CreateDiscussion(cmd.Context(), u.ID, title, content, category)
		if posted != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s (%s)\n", theme.Strong.Render(posted.Discussion.Title), shortID(posted.Discussion.ID))
			for _, b := range posted.Badges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s New badge: %s\n", b.Icon(), theme.Badge.Render(b.DisplayName()))
			}
		}
		return err
	}),
}

var discussShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a discussion and its replies",
	Args:  cobra.ExactArgs(1),
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		ctx := cmd.Context()
		id, err := e.community.ResolveID(ctx, args[0])
		if err != nil {
			return err
		}
		d, err := e.community.Discussion(ctx, id)
		if err != nil {
			return err
		}
		comments, err := e.community.Comments(ctx, id)
		if err != nil {
			return err
		}

		now := time.Now()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(d.Title))
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%s · %s · %s · ♥ %d",
			d.Author, d.Category, relativeDate(d.CreatedAt, now), d.LikesCount)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, d.Content)
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Heading.Render(fmt.Sprintf("Replies (%d)", len(comments))))
		for _, c := range comments {
			fmt.Fprintf(out, "%s %s\n", theme.Strong.Render(c.Author), theme.Hint.Render(relativeDate(c.CreatedAt, now)))
			fmt.Fprintln(out, "  "+strings.ReplaceAll(c.Content, "\n", "\n  "))
		}
		return nil
	}),
}

var discussCommentCmd = &cobra.Command{
	Use:   "comment <id> <text...>",
	Short: "Reply to a discussion",
	Args:  cobra.MinimumNArgs(2),
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		ctx := cmd.Context()
		id, err := e.community.ResolveID(ctx, args[0])
		if err != nil {
			return err
		}
		if _, err := e.community.AddComment(ctx, u.ID, id, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reply posted.")
		return nil
	}),
}

var discussLikeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like or unlike a discussion",
	Args:  cobra.ExactArgs(1),
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		ctx := cmd.Context()
		id, err := e.community.ResolveID(ctx, args[0])
		if err != nil {
			return err
		}
		liked, err := e.community.ToggleLike(ctx, u.ID, id)
		if err != nil {
			return err
		}
		if liked {
			fmt.Fprintln(cmd.OutOrStdout(), "♥ Liked.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "♡ Like removed.")
		}
		return nil
	}),
}

func init() {
	discussListCmd.Flags().Int("limit", 20, "Maximum discussions to list (0 for all)")
	discussPostCmd.Flags().String("title", "", "Discussion title")
	discussPostCmd.Flags().String("category", "", "general, looksmaxxing or ancestral-eating")
	discussPostCmd.Flags().String("content", "", "Discussion body")

	discussCmd.AddCommand(discussListCmd)
	discussCmd.AddCommand(discussPostCmd)
	discussCmd.AddCommand(discussShowCmd)
	discussCmd.AddCommand(discussCommentCmd)
	discussCmd.AddCommand(discussLikeCmd)
}
