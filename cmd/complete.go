package cmd

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// errWrongAnswer is returned when the comprehension choice is incorrect.
// Nothing is recorded.
var errWrongAnswer = errors.New("that's not quite right; re-read the article and try again")

var completeCmd = &cobra.Command{
	Use:   "complete <article-id>",
	Short: "Answer an article's quiz and record the completion",
	Long: "Answer an article's quiz non-interactively.\n\n" +
		"Without --choice the quiz questions are printed. --choice is the 1-based\n" +
		"comprehension option; each --answer key=value answers a personalization\n" +
		"question by option text or 1-based option number.",
	Args: cobra.ExactArgs(1),
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		out := cmd.OutOrStdout()
		ev, err := quiz.NewEvaluator(e.bank, args[0])
		if err != nil {
			return err
		}

		choice, _ := cmd.Flags().GetInt("choice")
		if choice == 0 {
			printQuiz(out, ev.Quiz())
			return nil
		}
		ok, err := ev.SubmitComprehension(choice - 1)
		if err != nil {
			return err
		}
		if !ok {
			return errWrongAnswer
		}

		answers, _ := cmd.Flags().GetStringToString("answer")
		if err := applyAnswers(ev, answers); err != nil {
			return err
		}
		res, err := ev.Complete()
		if err != nil {
			return err
		}

		outcome, err := e.journey.CompleteArticle(cmd.Context(), u.ID, res)
		if err != nil {
			return err
		}
		printOutcome(out, outcome, res)
		return nil
	}),
}

// applyAnswers feeds --answer pairs to the evaluator. A value that is a
// number picks that option (1-based); anything else must match an option.
func applyAnswers(ev *quiz.Evaluator, answers map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(answers)) {
		value := answers[key]
		q, ok := ev.Quiz().Question(key)
		if !ok {
			return fmt.Errorf("unknown question %q: %w", key, quiz.ErrInvalidOption)
		}
		if n, err := strconv.Atoi(value); err == nil && !q.HasOption(value) {
			if n < 1 || n > len(q.Options) {
				return fmt.Errorf("option %d for %q: %w", n, key, quiz.ErrInvalidOption)
			}
			value = q.Options[n-1]
		}
		if err := ev.Answer(key, value); err != nil {
			return err
		}
	}
	return nil
}

func printQuiz(w io.Writer, q quiz.Quiz) {
	fmt.Fprintln(w, theme.Heading.Render("Comprehension (--choice)"))
	fmt.Fprintln(w, q.Comprehension.Question)
	for i, o := range q.Comprehension.Options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, o)
	}
	if len(q.Personalization) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Heading.Render("About you (--answer key=value)"))
	for _, p := range q.Personalization {
		fmt.Fprintf(w, "%s  %s\n", theme.Strong.Render(p.Key), p.Question)
		for i, o := range p.Options {
			fmt.Fprintf(w, "  %d. %s\n", i+1, o)
		}
	}
}

func printOutcome(w io.Writer, out *journey.Outcome, res quiz.Result) {
	fmt.Fprintf(w, "%s %s\n", theme.Correct.Render("✔"), theme.Strong.Render(out.Article.Title))
	fmt.Fprintf(w, "Score: %d%%\n", res.Score)
	if !out.Created {
		fmt.Fprintln(w, theme.Hint.Render("Already completed; answers updated."))
	}
	if a := out.Award; a != nil {
		fmt.Fprintf(w, "+%d XP (%d total)  Level %d  🔥 %d day streak\n", a.Amount, a.NewXP, a.NewLevel, a.NewStreak)
		if a.LeveledUp() {
			fmt.Fprintln(w, theme.Badge.Render(fmt.Sprintf("Level up! You reached level %d.", a.NewLevel)))
		}
	}
	for _, b := range out.Badges {
		fmt.Fprintf(w, "%s New badge: %s\n", b.Icon(), theme.Badge.Render(b.DisplayName()))
	}
	if out.Next != nil {
		fmt.Fprintf(w, "Next up: %s (%s)\n", out.Next.Title, out.Next.ID)
	} else {
		fmt.Fprintln(w, theme.Hint.Render("Every article in this category is done."))
	}
}

func init() {
	completeCmd.Flags().Int("choice", 0, "Comprehension option number (1-based)")
	completeCmd.Flags().StringToString("answer", nil, "Personalization answer as key=value (repeatable)")
}
