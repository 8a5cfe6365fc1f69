// Package journey sequences a quiz completion through the ledger and the
// gamification engine, and assembles the learner's dashboard.
package journey

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/progress"
	"github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/recommend"
	"github.com/abhisek/ascend/internal/store"
)

// ErrLocked is returned when completing an article whose predecessor is
// not yet completed.
var ErrLocked = errors.New("article is locked")

// ProfileReader reads a learner's profile.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*store.Profile, error)
}

// BadgeLister lists a learner's earned badges.
type BadgeLister interface {
	ListByUser(ctx context.Context, userID string) ([]store.Badge, error)
}

// Resetter wipes a learner's progress.
type Resetter interface {
	ResetUser(ctx context.Context, userID string) error
}

// Deps bundles the collaborators of a Service.
type Deps struct {
	Ledger       *progress.Ledger
	Engine       *gamify.Engine
	Recommender  *recommend.Engine
	Profiles     ProfileReader
	Badges       BadgeLister
	Resetter     Resetter
	XPPerArticle int
	Logger       *logger.Logger
}

// Service is the learner-facing progression workflow.
type Service struct {
	ledger      *progress.Ledger
	engine      *gamify.Engine
	recommender *recommend.Engine
	profiles    ProfileReader
	badges      BadgeLister
	resetter    Resetter
	xp          int
	log         *logger.Logger
}

// NewService creates a Service.
func NewService(d Deps) *Service {
	s := &Service{
		ledger:      d.Ledger,
		engine:      d.Engine,
		recommender: d.Recommender,
		profiles:    d.Profiles,
		badges:      d.Badges,
		resetter:    d.Resetter,
		xp:          d.XPPerArticle,
		log:         d.Logger,
	}
	if s.xp <= 0 {
		s.xp = gamify.DefaultXPPerArticle
	}
	if s.recommender == nil {
		s.recommender = recommend.Default()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	return s
}

// Outcome is everything that happened as a result of one completion.
type Outcome struct {
	Article catalog.Article
	Record  store.Completion
	Created bool
	Award   *gamify.Award
	Badges  []gamify.BadgeType // newly earned, award badges first
	Next    *catalog.Article   // next available article in the category
}

// CompleteArticle records a finished quiz, awards XP and evaluates badges,
// strictly in that order. The first failure stops the flow.
func (s *Service) CompleteArticle(ctx context.Context, userID string, res quiz.Result) (*Outcome, error) {
	article, err := catalog.GetArticle(res.ArticleID)
	if err != nil {
		return nil, err
	}
	completed, err := s.ledger.CompletedArticleIDs(ctx, userID)
	if err != nil {
		return nil, s.remote("load completions", userID, err)
	}
	unlocked, err := catalog.IsUnlocked(article.ID, completed)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, article.ID)
	}

	rec, created, err := s.ledger.RecordCompletion(ctx, userID, article.ID, res.Score, res.Answers)
	if err != nil {
		return nil, s.remote("record completion", userID, err)
	}
	out := &Outcome{Article: article, Record: rec, Created: created}

	award, err := s.engine.AwardXP(ctx, userID, s.xp)
	if err != nil {
		return out, s.remote("award xp", userID, err)
	}
	out.Award = award
	out.Badges = append(out.Badges, award.Badges...)

	facts, err := s.completionFacts(ctx, userID, created)
	if err != nil {
		return out, s.remote("load completions", userID, err)
	}
	earned, err := s.engine.EvaluateCompletion(ctx, userID, facts)
	out.Badges = append(out.Badges, earned...)
	if err != nil {
		return out, s.remote("evaluate badges", userID, err)
	}

	if next, ok := catalog.NextArticle(article.Category, facts.Completed); ok {
		out.Next = &next
	}
	s.log.Info("article completed", "user", userID, "article", article.ID, "score", res.Score, "new", created)
	return out, nil
}

func (s *Service) completionFacts(ctx context.Context, userID string, created bool) (gamify.CompletionFacts, error) {
	recs, err := s.ledger.Records(ctx, userID)
	if err != nil {
		return gamify.CompletionFacts{}, err
	}
	f := gamify.CompletionFacts{
		Created:        created,
		CompletedCount: len(recs),
		Completed:      make(map[string]bool, len(recs)),
	}
	for _, r := range recs {
		f.Completed[r.ArticleID] = true
		if r.Score == 100 {
			f.PerfectScores++
		}
	}
	return f, nil
}

// Dashboard is the read side shown on the home and plan screens.
type Dashboard struct {
	Profile   store.Profile
	Badges    []store.Badge
	Progress  []progress.CategoryProgress
	Completed map[string]bool
	Plan      recommend.Plan
}

// Dashboard loads the learner's current state.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, s.remote("load profile", userID, err)
	}
	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.remote("load badges", userID, err)
	}
	completed, err := s.ledger.CompletedArticleIDs(ctx, userID)
	if err != nil {
		return nil, s.remote("load completions", userID, err)
	}
	prog, err := s.ledger.CategoryProgress(ctx, userID)
	if err != nil {
		return nil, s.remote("load progress", userID, err)
	}
	answers, err := s.ledger.Personalization(ctx, userID)
	if err != nil {
		return nil, s.remote("load personalization", userID, err)
	}
	return &Dashboard{
		Profile:   *p,
		Badges:    badges,
		Progress:  prog,
		Completed: completed,
		Plan:      s.recommender.BuildPlan(answers, len(completed)),
	}, nil
}

// Profile returns the learner's counters.
func (s *Service) Profile(ctx context.Context, userID string) (*store.Profile, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, s.remote("load profile", userID, err)
	}
	return p, nil
}

// Completed returns the learner's completed article set.
func (s *Service) Completed(ctx context.Context, userID string) (map[string]bool, error) {
	return s.ledger.CompletedArticleIDs(ctx, userID)
}

// Reset wipes a learner's completions, badges and counters.
func (s *Service) Reset(ctx context.Context, userID string) error {
	if s.resetter == nil {
		return errors.New("reset not supported")
	}
	err := s.resetter.ResetUser(ctx, userID)
	s.ledger.Invalidate(userID)
	if err != nil {
		return s.remote("reset progress", userID, err)
	}
	s.log.Info("progress reset", "user", userID)
	return nil
}

func (s *Service) remote(op, userID string, err error) error {
	s.log.Error(op+" failed", "user", userID, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
