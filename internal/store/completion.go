package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Completion is one user's record of finishing an article's quiz.
type Completion struct {
	UserID      string
	ArticleID   string
	Score       int
	Answers     map[string]string
	CompletedAt time.Time
}

// CompletionRepo persists completions keyed on (user, article).
type CompletionRepo struct {
	db DBTX
}

// NewCompletionRepo creates a CompletionRepo over db.
func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// Upsert writes a completion, overwriting score, answers and timestamp when
// the pair already exists. created reports whether the row is new.
func (r *CompletionRepo) Upsert(ctx context.Context, c Completion) (created bool, err error) {
	answers := c.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return false, fmt.Errorf("marshal answers: %w", err)
	}

	completedAt := formatTime(c.CompletedAt)
	query, args := builder().Insert(tableCompletions).
		Columns("user_id", "article_id", "score", "answers", "completed_at").
		Values(c.UserID, c.ArticleID, c.Score, string(raw), completedAt).
		OnConflict(
			entsql.ConflictColumns("user_id", "article_id"),
			entsql.DoNothing(),
		).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("completion rows affected: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	// The pair already existed; only one writer ever sees the insert land.
	query, args = builder().Update(tableCompletions).
		Set("score", c.Score).
		Set("answers", string(raw)).
		Set("completed_at", completedAt).
		Where(entsql.And(entsql.EQ("user_id", c.UserID), entsql.EQ("article_id", c.ArticleID))).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("update completion: %w", err)
	}
	return false, nil
}

// ListByUser returns a user's completions ordered by completion time,
// oldest first.
func (r *CompletionRepo) ListByUser(ctx context.Context, userID string) ([]Completion, error) {
	query, args := builder().
		Select("user_id", "article_id", "score", "answers", "completed_at").
		From(entsql.Table(tableCompletions)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("completed_at", "article_id").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var (
			c            Completion
			raw, stamped string
		)
		if err := rows.Scan(&c.UserID, &c.ArticleID, &c.Score, &raw, &stamped); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &c.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for %q: %w", c.ArticleID, err)
		}
		if c.CompletedAt, err = parseTime(stamped); err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}
	return out, nil
}

// CountByUser returns how many distinct articles a user has completed.
func (r *CompletionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(tableCompletions)).
		Where(entsql.EQ("user_id", userID)).
		Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return n, nil
}

// DeleteByUser removes all of a user's completions.
func (r *CompletionRepo) DeleteByUser(ctx context.Context, userID string) error {
	query, args := builder().Delete(tableCompletions).
		Where(entsql.EQ("user_id", userID)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	return nil
}
