package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/community"
	"github.com/abhisek/ascend/internal/config"
	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/progress"
	"github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/recommend"
	"github.com/abhisek/ascend/internal/store"
)

// errLoginRequired is returned by commands that need a signed-in learner.
var errLoginRequired = errors.New("not signed in; run `ascend login` or `ascend signup` first")

// env is the set of services one command invocation works with.
type env struct {
	cfg       config.Config
	log       *logger.Logger
	store     *store.Store
	auth      *auth.Service
	journey   *journey.Service
	community *community.Service
	bank      *quiz.Bank
}

// openEnv loads configuration, opens the store and builds every service.
// The saved session, if any, is restored before returning.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath, err := cfg.ResolveLogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: logPath})
	if err != nil {
		return nil, err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	e, err := buildEnv(cmd.Context(), cfg, log, st, dbPath)
	if err != nil {
		st.Close()
		return nil, err
	}
	return e, nil
}

func buildEnv(ctx context.Context, cfg config.Config, log *logger.Logger, st *store.Store, dbPath string) (*env, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	rec := recommend.Default()
	if cfg.Recommend.RulesFile != "" {
		rules, err := recommend.LoadRules(cfg.Recommend.RulesFile)
		if err != nil {
			return nil, err
		}
		rec = recommend.NewEngine(rules)
	}

	engine := gamify.NewEngine(st, st.Badges(),
		gamify.WithClock(gamify.SystemClock{Loc: loc}),
		gamify.WithNow(func() time.Time { return time.Now().In(loc) }),
		gamify.WithLogger(log),
		gamify.WithLaunchCutoff(cfg.LaunchCutoffDate()),
	)

	tokenPath, err := tokenPathFor(cfg, dbPath)
	if err != nil {
		return nil, err
	}
	authSvc := auth.NewService(auth.NewSession(), auth.Config{
		Accounts:  st.Accounts(),
		Registrar: st,
		Badges:    engine,
		Tokens:    auth.TokenFile{Path: tokenPath},
		MaxAge:    cfg.Auth.SessionMaxAge,
		Logger:    log,
	})
	if _, err := authSvc.Restore(ctx); err != nil && !errors.Is(err, auth.ErrUnauthenticated) {
		log.Warn("restore session failed", "error", err)
	}

	return &env{
		cfg:   cfg,
		log:   log,
		store: st,
		auth:  authSvc,
		journey: journey.NewService(journey.Deps{
			Ledger:       progress.NewLedger(st.Completions()),
			Engine:       engine,
			Recommender:  rec,
			Profiles:     st,
			Badges:       st.Badges(),
			Resetter:     st,
			XPPerArticle: cfg.Gamification.XPPerArticle,
			Logger:       log,
		}),
		community: community.NewService(st, engine, log),
		bank:      quiz.DefaultBank(),
	}, nil
}

// loadConfig reads the config file named by --config and applies the
// --db and --log-level overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		if _, err := logger.ParseLevel(l); err != nil {
			return cfg, err
		}
		cfg.Log.Level = l
	}
	return cfg, nil
}

// tokenPathFor keeps the session token next to an explicitly configured
// database so separate databases don't share a login.
func tokenPathFor(cfg config.Config, dbPath string) (string, error) {
	if cfg.DBPath != "" {
		return dbPath + ".session", nil
	}
	return config.SessionTokenPath()
}

// Close releases the store and flushes the log.
func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store failed", "error", err)
	}
	e.log.Sync()
}

// requireUser returns the signed-in learner or errLoginRequired.
func (e *env) requireUser() (*auth.User, error) {
	u, err := e.auth.RequireUser()
	if errors.Is(err, auth.ErrUnauthenticated) {
		return nil, errLoginRequired
	}
	return u, err
}

// withEnv adapts a function that needs an env into a cobra RunE.
func withEnv(fn func(cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(cmd, e, args)
	}
}

// withUser is withEnv for commands that need a signed-in learner.
func withUser(fn func(cmd *cobra.Command, e *env, u *auth.User, args []string) error) func(*cobra.Command, []string) error {
	return withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		u, err := e.requireUser()
		if err != nil {
			return err
		}
		return fn(cmd, e, u, args)
	})
}
