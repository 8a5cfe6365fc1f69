package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Profile is the per-user gamification state. Level is always derived
// from XP by the caller and written together with it.
type Profile struct {
	UserID           string
	Username         string
	XP               int
	Level            int
	StreakDays       int
	LastActivityDate *time.Time // calendar date, nil before the first award
	CreatedAt        time.Time
}

// ProfileRepo reads and writes profiles.
type ProfileRepo struct {
	db DBTX
}

// NewProfileRepo creates a ProfileRepo over db.
func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create inserts a fresh profile at XP 0, level 1, streak 0.
func (r *ProfileRepo) Create(ctx context.Context, userID, username string, now time.Time) (*Profile, error) {
	query, args := builder().Insert(tableProfiles).
		Columns("user_id", "username", "xp", "level", "streak_days", "created_at").
		Values(userID, username, 0, 1, 0, formatTime(now)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return &Profile{UserID: userID, Username: username, Level: 1, CreatedAt: now.UTC()}, nil
}

// Get returns the profile for a user.
func (r *ProfileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	query, args := builder().
		Select("user_id", "username", "xp", "level", "streak_days", "last_activity_date", "created_at").
		From(entsql.Table(tableProfiles)).
		Where(entsql.EQ("user_id", userID)).
		Query()

	var (
		p         Profile
		last      sql.NullString
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.UserID, &p.Username, &p.XP, &p.Level, &p.StreakDays, &last, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	if p.LastActivityDate, err = parseNullableDate(last); err != nil {
		return nil, fmt.Errorf("parse last activity date: %w", err)
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse profile created_at: %w", err)
	}
	return &p, nil
}

// SaveProgress writes XP, level, streak and last activity date as one
// update.
func (r *ProfileRepo) SaveProgress(ctx context.Context, p *Profile) error {
	query, args := builder().Update(tableProfiles).
		Set("xp", p.XP).
		Set("level", p.Level).
		Set("streak_days", p.StreakDays).
		Set("last_activity_date", nullableDate(p.LastActivityDate)).
		Where(entsql.EQ("user_id", p.UserID)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("profile %q: %w", p.UserID, ErrNotFound)
	}
	return nil
}

// Reset returns a profile to its initial counters.
func (r *ProfileRepo) Reset(ctx context.Context, userID string) error {
	return r.SaveProgress(ctx, &Profile{UserID: userID, Level: 1})
}

// UpdateProfile loads a user's profile, applies fn and writes the progress
// fields back in one transaction. It returns the profile as written.
func (s *Store) UpdateProfile(ctx context.Context, userID string, fn func(p *Profile) error) (*Profile, error) {
	var out *Profile
	err := s.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		repo := NewProfileRepo(tx)
		p, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := repo.SaveProgress(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

// GetProfile is a convenience for reading a profile outside a transaction.
func (s *Store) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.Profiles().Get(ctx, userID)
}
