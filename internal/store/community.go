package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Discussion is a forum thread.
type Discussion struct {
	ID            string
	UserID        string
	Author        string
	Title         string
	Content       string
	Category      string
	LikesCount    int
	CommentsCount int
	CreatedAt     time.Time
}

// Comment is a reply on a discussion.
type Comment struct {
	ID           string
	DiscussionID string
	UserID       string
	Author       string
	Content      string
	CreatedAt    time.Time
}

// CommunityRepo stores discussions, comments and likes.
type CommunityRepo struct {
	db DBTX
}

// NewCommunityRepo creates a CommunityRepo over db.
func NewCommunityRepo(db DBTX) *CommunityRepo {
	return &CommunityRepo{db: db}
}

// CreateDiscussion inserts a new discussion with zeroed counters.
func (r *CommunityRepo) CreateDiscussion(ctx context.Context, d Discussion) error {
	query, args := builder().Insert(tableDiscussions).
		Columns("id", "user_id", "title", "content", "category", "likes_count", "comments_count", "created_at").
		Values(d.ID, d.UserID, d.Title, d.Content, d.Category, 0, 0, formatTime(d.CreatedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert discussion: %w", err)
	}
	return nil
}

// discussionSelector selects discussions joined with their author's
// username. The discussions table is aliased "d".
func discussionSelector() (*entsql.Selector, *entsql.SelectTable) {
	d := entsql.Table(tableDiscussions).As("d")
	p := entsql.Table(tableProfiles).As("p")
	return builder().
		Select(
			d.C("id"), d.C("user_id"), "COALESCE("+p.C("username")+", '')",
			d.C("title"), d.C("content"), d.C("category"),
			d.C("likes_count"), d.C("comments_count"), d.C("created_at"),
		).
		From(d).
		LeftJoin(p).On(d.C("user_id"), p.C("user_id")), d
}

func scanDiscussion(sc interface{ Scan(...any) error }) (Discussion, error) {
	var (
		d       Discussion
		created string
	)
	err := sc.Scan(&d.ID, &d.UserID, &d.Author, &d.Title, &d.Content, &d.Category,
		&d.LikesCount, &d.CommentsCount, &created)
	if err != nil {
		return d, err
	}
	d.CreatedAt, err = parseTime(created)
	return d, err
}

// ListDiscussions returns discussions newest first. A zero limit means no
// limit.
func (r *CommunityRepo) ListDiscussions(ctx context.Context, limit int) ([]Discussion, error) {
	sel, d := discussionSelector()
	sel = sel.OrderBy(entsql.Desc(d.C("created_at")), d.C("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query discussions: %w", err)
	}
	defer rows.Close()

	var out []Discussion
	for rows.Next() {
		d, err := scanDiscussion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan discussion: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discussions: %w", err)
	}
	return out, nil
}

// GetDiscussion returns one discussion with its author.
func (r *CommunityRepo) GetDiscussion(ctx context.Context, id string) (*Discussion, error) {
	sel, d := discussionSelector()
	query, args := sel.Where(entsql.EQ(d.C("id"), id)).Query()
	disc, err := scanDiscussion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("discussion %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scan discussion: %w", err)
	}
	return &disc, nil
}

// CountDiscussionsByUser returns how many discussions a user has started.
func (r *CommunityRepo) CountDiscussionsByUser(ctx context.Context, userID string) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(tableDiscussions)).
		Where(entsql.EQ("user_id", userID)).
		Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count discussions: %w", err)
	}
	return n, nil
}

// AddComment inserts a comment and bumps the discussion's comment count.
// Call it inside a transaction.
func (r *CommunityRepo) AddComment(ctx context.Context, c Comment) error {
	query, args := builder().Insert(tableComments).
		Columns("id", "discussion_id", "user_id", "content", "created_at").
		Values(c.ID, c.DiscussionID, c.UserID, c.Content, formatTime(c.CreatedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return r.bump(ctx, c.DiscussionID, "comments_count", 1)
}

// Comments returns a discussion's comments oldest first.
func (r *CommunityRepo) Comments(ctx context.Context, discussionID string) ([]Comment, error) {
	c := entsql.Table(tableComments).As("c")
	p := entsql.Table(tableProfiles).As("p")
	query, args := builder().
		Select(c.C("id"), c.C("discussion_id"), c.C("user_id"), "COALESCE("+p.C("username")+", '')",
			c.C("content"), c.C("created_at")).
		From(c).
		LeftJoin(p).On(c.C("user_id"), p.C("user_id")).
		Where(entsql.EQ(c.C("discussion_id"), discussionID)).
		OrderBy(c.C("created_at"), c.C("id")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var (
			cm      Comment
			created string
		)
		if err := rows.Scan(&cm.ID, &cm.DiscussionID, &cm.UserID, &cm.Author, &cm.Content, &created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		if cm.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("parse comment created_at: %w", err)
		}
		out = append(out, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

// ToggleLike flips a user's like on a discussion and adjusts the count.
// It returns whether the discussion is liked afterwards. Call it inside a
// transaction.
func (r *CommunityRepo) ToggleLike(ctx context.Context, discussionID, userID string) (bool, error) {
	query, args := builder().Delete(tableLikes).
		Where(entsql.And(entsql.EQ("discussion_id", discussionID), entsql.EQ("user_id", userID))).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, r.bump(ctx, discussionID, "likes_count", -1)
	}

	query, args = builder().Insert(tableLikes).
		Columns("discussion_id", "user_id").
		Values(discussionID, userID).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, r.bump(ctx, discussionID, "likes_count", 1)
}

// LikedBy returns the set of discussion IDs a user has liked.
func (r *CommunityRepo) LikedBy(ctx context.Context, userID string) (map[string]bool, error) {
	query, args := builder().Select("discussion_id").
		From(entsql.Table(tableLikes)).
		Where(entsql.EQ("user_id", userID)).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query likes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (r *CommunityRepo) bump(ctx context.Context, discussionID, column string, delta int) error {
	query, args := builder().Update(tableDiscussions).
		Add(column, delta).
		Where(entsql.EQ("id", discussionID)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("discussion %q: %w", discussionID, ErrNotFound)
	}
	return nil
}
