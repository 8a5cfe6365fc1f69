package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/quiz"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func quizArgs(t *testing.T, articleID string, correct bool) []string {
	t.Helper()
	q, err := quiz.DefaultBank().Lookup(articleID)
	require.NoError(t, err)

	choice := q.Comprehension.Correct
	if !correct {
		choice = (choice + 1) % len(q.Comprehension.Options)
	}
	args := []string{"complete", articleID, "--choice", fmt.Sprint(choice + 1)}
	for _, p := range q.Personalization {
		args = append(args, "--answer", p.Key+"=1")
	}
	return args
}

func TestCLIJourney(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "ascend.db")
	first := catalog.ArticlesByCategory(catalog.CategoryLooksmaxxing)[0]
	second := catalog.ArticlesByCategory(catalog.CategoryLooksmaxxing)[1]

	t.Run("whoami requires login", func(t *testing.T) {
		_, err := execute(t, "--db", db, "whoami")
		assert.ErrorIs(t, err, errLoginRequired)
	})

	t.Run("signup signs in", func(t *testing.T) {
		out, err := execute(t, "--db", db, "signup",
			"--email", "Ada@Example.com", "--password", "hunter2hunter2", "--username", "ada")
		require.NoError(t, err)
		assert.Contains(t, out, "Welcome, ada")

		out, err = execute(t, "--db", db, "whoami")
		require.NoError(t, err)
		assert.Contains(t, out, "ada <ada@example.com>")
	})

	t.Run("locked article cannot be read", func(t *testing.T) {
		_, err := execute(t, "--db", db, "articles", "read", second.ID)
		assert.Error(t, err)
	})

	t.Run("wrong choice records nothing", func(t *testing.T) {
		_, err := execute(t, append([]string{"--db", db}, quizArgs(t, first.ID, false)...)...)
		assert.ErrorIs(t, err, errWrongAnswer)

		out, err := execute(t, "--db", db, "articles", "list", "--category", string(catalog.CategoryLooksmaxxing))
		require.NoError(t, err)
		assert.Contains(t, out, "0/")
	})

	t.Run("complete awards xp and unlocks the next article", func(t *testing.T) {
		out, err := execute(t, append([]string{"--db", db}, quizArgs(t, first.ID, true)...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "Score: 100%")
		assert.Contains(t, out, "+25 XP")
		assert.Contains(t, out, second.ID)

		out, err = execute(t, "--db", db, "articles", "read", second.ID)
		require.NoError(t, err)
		assert.Contains(t, out, second.Title)
	})

	t.Run("badges lists first article", func(t *testing.T) {
		out, err := execute(t, "--db", db, "badges")
		require.NoError(t, err)
		assert.Contains(t, out, "badges earned")
	})

	t.Run("discussion round trip", func(t *testing.T) {
		_, err := execute(t, "--db", db, "discuss", "post",
			"--title", "Morning routine", "--content", "What do you do first?", "--category", "general")
		require.NoError(t, err)

		out, err := execute(t, "--db", db, "discuss", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Morning routine")
	})

	t.Run("reset clears progress", func(t *testing.T) {
		_, err := execute(t, "--db", db, "reset", "--yes")
		require.NoError(t, err)

		_, err = execute(t, "--db", db, "articles", "read", second.ID)
		assert.Error(t, err)
	})

	t.Run("logout", func(t *testing.T) {
		out, err := execute(t, "--db", db, "logout")
		require.NoError(t, err)
		assert.Contains(t, out, "Signed out.")

		_, err = execute(t, "--db", db, "plan")
		assert.ErrorIs(t, err, errLoginRequired)
	})
}

func TestApplyAnswers(t *testing.T) {
	article := catalog.ArticlesByCategory(catalog.CategoryLooksmaxxing)[0]
	bank := quiz.DefaultBank()
	q, err := bank.Lookup(article.ID)
	require.NoError(t, err)
	require.NotEmpty(t, q.Personalization)
	p := q.Personalization[0]

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"by number", "1", p.Options[0], false},
		{"by text", p.Options[len(p.Options)-1], p.Options[len(p.Options)-1], false},
		{"number out of range", fmt.Sprint(len(p.Options) + 1), "", true},
		{"unknown text", "definitely not an option", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := quiz.NewEvaluator(bank, article.ID)
			require.NoError(t, err)
			ok, err := ev.SubmitComprehension(q.Comprehension.Correct)
			require.NoError(t, err)
			require.True(t, ok)

			err = applyAnswers(ev, map[string]string{p.Key: tt.value})
			if tt.wantErr {
				assert.ErrorIs(t, err, quiz.ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, ev.Missing(), p.Key)
		})
	}
}

func TestApplyAnswers_UnknownKey(t *testing.T) {
	article := catalog.ArticlesByCategory(catalog.CategoryLooksmaxxing)[0]
	ev, err := quiz.NewEvaluator(quiz.DefaultBank(), article.ID)
	require.NoError(t, err)
	ok, err := ev.SubmitComprehension(ev.Quiz().Comprehension.Correct)
	require.NoError(t, err)
	require.True(t, ok)

	err = applyAnswers(ev, map[string]string{"no_such_question": "1"})
	assert.ErrorIs(t, err, quiz.ErrInvalidOption)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "TITLE"}, [][]string{
		{"a", "short"},
		{"bbbb", "a longer title"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "a     short") {
		t.Errorf("row not padded to column width: %q", lines[2])
	}
	if renderTable(nil, nil) != "" {
		t.Error("empty headers should render nothing")
	}
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{48 * time.Hour, "2d ago"},
		{60 * 24 * time.Hour, "2025-04-16"},
	}
	for _, tt := range tests {
		if got := relativeDate(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("relativeDate(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestShortIDAndTruncate(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(short) = %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hi", 6); got != "hi" {
		t.Errorf("truncate(short) = %q", got)
	}
}
