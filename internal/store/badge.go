package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Badge is an earned achievement, unique per (user, type).
type Badge struct {
	UserID   string
	Type     string
	EarnedAt time.Time
}

// BadgeRepo is the set of earned badges.
type BadgeRepo struct {
	db DBTX
}

// NewBadgeRepo creates a BadgeRepo over db.
func NewBadgeRepo(db DBTX) *BadgeRepo {
	return &BadgeRepo{db: db}
}

// Insert adds a badge if the user does not already hold it. It reports
// whether the badge was newly inserted; a duplicate is not an error.
func (r *BadgeRepo) Insert(ctx context.Context, userID, badgeType string, at time.Time) (bool, error) {
	query, args := builder().Insert(tableBadges).
		Columns("user_id", "badge_type", "earned_at").
		Values(userID, badgeType, formatTime(at)).
		OnConflict(
			entsql.ConflictColumns("user_id", "badge_type"),
			entsql.DoNothing(),
		).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert badge %s: %w", badgeType, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("badge rows affected: %w", err)
	}
	return n == 1, nil
}

// ListByUser returns a user's badges in the order they were earned.
func (r *BadgeRepo) ListByUser(ctx context.Context, userID string) ([]Badge, error) {
	query, args := builder().
		Select("user_id", "badge_type", "earned_at").
		From(entsql.Table(tableBadges)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("earned_at", "badge_type").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	defer rows.Close()

	var out []Badge
	for rows.Next() {
		var (
			b      Badge
			earned string
		)
		if err := rows.Scan(&b.UserID, &b.Type, &earned); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		if b.EarnedAt, err = parseTime(earned); err != nil {
			return nil, fmt.Errorf("parse earned_at: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate badges: %w", err)
	}
	return out, nil
}

// DeleteByUser removes all of a user's badges.
func (r *BadgeRepo) DeleteByUser(ctx context.Context, userID string) error {
	query, args := builder().Delete(tableBadges).
		Where(entsql.EQ("user_id", userID)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete badges: %w", err)
	}
	return nil
}
