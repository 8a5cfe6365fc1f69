// Package auth manages local accounts, password sign-in and the session
// that identifies the current learner.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/store"
)

var (
	ErrUnauthenticated    = errors.New("not signed in")
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// AccountStore looks up accounts and persists sessions.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*store.Account, error)
	GetByID(ctx context.Context, id string) (*store.Account, error)
	CreateSession(ctx context.Context, s store.AuthSession) error
	GetSession(ctx context.Context, tokenHash string) (*store.AuthSession, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	PruneSessions(ctx context.Context, now time.Time) (int64, error)
}

// Registrar creates an account together with its profile.
type Registrar interface {
	CreateAccount(ctx context.Context, a store.Account, username string) (*store.Profile, error)
	GetProfile(ctx context.Context, userID string) (*store.Profile, error)
}

// EarlyAdopterIssuer awards the sign-up badge.
type EarlyAdopterIssuer interface {
	IssueEarlyAdopter(ctx context.Context, userID string, signedUp time.Time) (bool, error)
}

// Config holds the service's dependencies and settings.
type Config struct {
	Accounts  AccountStore
	Registrar Registrar
	Badges    EarlyAdopterIssuer // optional
	Tokens    TokenFile
	MaxAge    time.Duration
	Now       func() time.Time
	Logger    *logger.Logger
}

// Service signs learners up, in and out, updating the Session it owns.
type Service struct {
	cfg     Config
	session *Session
}

// NewService creates a Service bound to session.
func NewService(session *Session, cfg Config) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 30 * 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Service{cfg: cfg, session: session}
}

// Session returns the session the service updates.
func (s *Service) Session() *Session { return s.session }

// ValidateSignUp checks sign-up fields without touching the store.
func ValidateSignUp(email, password, username string) error {
	var errs []string
	if !strings.Contains(email, "@") {
		errs = append(errs, "email must contain @")
	}
	if len(password) < MinPasswordLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if strings.TrimSpace(username) == "" {
		errs = append(errs, "username is required")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, "; "))
	}
	return nil
}

// SignUp creates an account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password, username string) (*User, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	if err := ValidateSignUp(email, password, username); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.cfg.Now()
	acct := store.Account{ID: uuid.NewString(), Email: email, PasswordHash: string(hash), CreatedAt: now}
	if _, err := s.cfg.Registrar.CreateAccount(ctx, acct, username); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.cfg.Logger.Error("create account failed", "email", email, "error", err)
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.cfg.Logger.Info("account created", "user", acct.ID)

	if s.cfg.Badges != nil {
		if _, err := s.cfg.Badges.IssueEarlyAdopter(ctx, acct.ID, now); err != nil {
			s.cfg.Logger.Warn("early adopter badge failed", "user", acct.ID, "error", err)
		}
	}

	u := User{ID: acct.ID, Email: email, Username: username}
	if err := s.startSession(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn verifies credentials and starts a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, error) {
	acct, err := s.cfg.Accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.userFor(ctx, acct)
	if err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignOut ends the current session. Signing out while signed out is a
// no-op.
func (s *Service) SignOut(ctx context.Context) error {
	token, err := s.cfg.Tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		if err := s.cfg.Accounts.DeleteSession(ctx, hashToken(token)); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	if err := s.cfg.Tokens.Clear(); err != nil {
		return err
	}
	s.session.signOut()
	return nil
}

// Restore signs the session in from the persisted token, if it is still
// valid.
func (s *Service) Restore(ctx context.Context) (*User, error) {
	token, err := s.cfg.Tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := s.cfg.Accounts.GetSession(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.cfg.Tokens.Clear()
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !s.cfg.Now().Before(sess.ExpiresAt) {
		_ = s.cfg.Accounts.DeleteSession(ctx, sess.TokenHash)
		_ = s.cfg.Tokens.Clear()
		return nil, ErrUnauthenticated
	}
	acct, err := s.cfg.Accounts.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	u, err := s.userFor(ctx, acct)
	if err != nil {
		return nil, err
	}
	s.session.signIn(*u)
	return u, nil
}

// RequireUser returns the current user or ErrUnauthenticated.
func (s *Service) RequireUser() (*User, error) {
	if u := s.session.CurrentUser(); u != nil {
		return u, nil
	}
	return nil, ErrUnauthenticated
}

func (s *Service) startSession(ctx context.Context, u User) error {
	token, err := newToken()
	if err != nil {
		return err
	}
	now := s.cfg.Now()
	if n, err := s.cfg.Accounts.PruneSessions(ctx, now); err == nil && n > 0 {
		s.cfg.Logger.Debug("pruned expired sessions", "count", n)
	}
	err = s.cfg.Accounts.CreateSession(ctx, store.AuthSession{
		TokenHash: hashToken(token),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.cfg.MaxAge),
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if err := s.cfg.Tokens.Save(token); err != nil {
		return err
	}
	s.session.signIn(u)
	s.cfg.Logger.Info("signed in", "user", u.ID)
	return nil
}

func (s *Service) userFor(ctx context.Context, acct *store.Account) (*User, error) {
	p, err := s.cfg.Registrar.GetProfile(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &User{ID: acct.ID, Email: acct.Email, Username: p.Username}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
