package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
// Repositories depend on it so they compose inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// Store owns the database handle and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection serializes writers and keeps ":memory:" databases
	// alive for the lifetime of the store.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// WithinTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise. fn must only use tx: the store holds
// a single connection.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Profiles returns the profile repository bound to the store's database.
func (s *Store) Profiles() *ProfileRepo { return NewProfileRepo(s.db) }

// Completions returns the completion repository.
func (s *Store) Completions() *CompletionRepo { return NewCompletionRepo(s.db) }

// Badges returns the badge repository.
func (s *Store) Badges() *BadgeRepo { return NewBadgeRepo(s.db) }

// Accounts returns the account and session repository.
func (s *Store) Accounts() *AccountRepo { return NewAccountRepo(s.db) }

// Community returns the discussion repository.
func (s *Store) Community() *CommunityRepo { return NewCommunityRepo(s.db) }

// ResetUser deletes all progress for a user: completions, badges, and the
// profile counters. The account itself is kept.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	return s.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := NewCompletionRepo(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := NewBadgeRepo(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return NewProfileRepo(tx).Reset(ctx, userID)
	})
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
