package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrDuplicate is returned when a unique value is already taken.
var ErrDuplicate = errors.New("already exists")

// Account is a local login identity.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthSession is a persisted sign-in, looked up by the hash of its token.
type AuthSession struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
}

// AccountRepo stores accounts and their sessions.
type AccountRepo struct {
	db DBTX
}

// NewAccountRepo creates an AccountRepo over db.
func NewAccountRepo(db DBTX) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserts an account. A taken email yields ErrDuplicate.
func (r *AccountRepo) Create(ctx context.Context, a Account) error {
	query, args := builder().Insert(tableAccounts).
		Columns("id", "email", "password_hash", "created_at").
		Values(a.ID, a.Email, a.PasswordHash, formatTime(a.CreatedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("account %q: %w", a.Email, ErrDuplicate)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByEmail looks an account up by its email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.getBy(ctx, "email", email)
}

// GetByID looks an account up by its ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*Account, error) {
	return r.getBy(ctx, "id", id)
}

func (r *AccountRepo) getBy(ctx context.Context, column, value string) (*Account, error) {
	query, args := builder().
		Select("id", "email", "password_hash", "created_at").
		From(entsql.Table(tableAccounts)).
		Where(entsql.EQ(column, value)).
		Query()
	var (
		a       Account
		created string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Email, &a.PasswordHash, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s=%q: %w", column, value, ErrNotFound)
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	if a.CreatedAt, err = parseTime(created); err != nil {
		return nil, fmt.Errorf("parse account created_at: %w", err)
	}
	return &a, nil
}

// CreateSession records a new sign-in.
func (r *AccountRepo) CreateSession(ctx context.Context, s AuthSession) error {
	query, args := builder().Insert(tableSessions).
		Columns("token_hash", "user_id", "expires_at").
		Values(s.TokenHash, s.UserID, formatTime(s.ExpiresAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession returns the session for a token hash.
func (r *AccountRepo) GetSession(ctx context.Context, tokenHash string) (*AuthSession, error) {
	query, args := builder().
		Select("token_hash", "user_id", "expires_at").
		From(entsql.Table(tableSessions)).
		Where(entsql.EQ("token_hash", tokenHash)).
		Query()
	var (
		s       AuthSession
		expires string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.TokenHash, &s.UserID, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	if s.ExpiresAt, err = parseTime(expires); err != nil {
		return nil, fmt.Errorf("parse session expiry: %w", err)
	}
	return &s, nil
}

// DeleteSession removes a session. Deleting a missing session is not an
// error.
func (r *AccountRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	query, args := builder().Delete(tableSessions).
		Where(entsql.EQ("token_hash", tokenHash)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PruneSessions deletes every session that expired before now.
func (r *AccountRepo) PruneSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args := builder().Delete(tableSessions).
		Where(entsql.LT("expires_at", formatTime(now))).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// CreateAccount inserts an account and its starting profile together.
func (s *Store) CreateAccount(ctx context.Context, a Account, username string) (*Profile, error) {
	var p *Profile
	err := s.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := NewAccountRepo(tx).Create(ctx, a); err != nil {
			return err
		}
		var err error
		p, err = NewProfileRepo(tx).Create(ctx, a.ID, username, a.CreatedAt)
		return err
	})
	return p, err
}
