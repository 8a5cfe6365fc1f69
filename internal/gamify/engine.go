// Package gamify awards XP, tracks levels and day-streaks, and issues
// badges when their thresholds are crossed.
package gamify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/store"
)

// ErrInvalidAmount is returned for a non-positive XP award.
var ErrInvalidAmount = errors.New("xp amount must be positive")

// Badge thresholds.
const (
	quizAceThreshold     = 5
	contributorThreshold = 5
)

// ProfileStore loads and rewrites a profile in a single transaction.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, userID string, fn func(p *store.Profile) error) (*store.Profile, error)
}

// BadgeStore is a set of (user, badge) pairs. Insert reports whether the
// pair was new.
type BadgeStore interface {
	Insert(ctx context.Context, userID, badgeType string, at time.Time) (bool, error)
}

// Award describes the outcome of one XP award.
type Award struct {
	Amount    int
	OldXP     int
	NewXP     int
	OldLevel  int
	NewLevel  int
	OldStreak int
	NewStreak int
	Profile   store.Profile
	Badges    []BadgeType // newly earned by this award
}

// LeveledUp reports whether the award crossed a level boundary.
func (a *Award) LeveledUp() bool { return a.NewLevel > a.OldLevel }

// CompletionFacts is what badge evaluation needs to know after a
// completion has been recorded.
type CompletionFacts struct {
	Created        bool            // the completion was a new record
	CompletedCount int             // completions after recording
	Completed      map[string]bool // completed article IDs after recording
	PerfectScores  int             // records with score 100
}

// Engine applies the gamification rules.
type Engine struct {
	profiles     ProfileStore
	badges       BadgeStore
	clock        Clock
	now          func() time.Time
	log          *logger.Logger
	launchCutoff time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the date source used for streaks.
func WithClock(c Clock) Option { return func(e *Engine) { e.clock = c } }

// WithNow sets the time source used to stamp earned badges.
func WithNow(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// WithLogger sets the engine's logger.
func WithLogger(l *logger.Logger) Option { return func(e *Engine) { e.log = l } }

// WithLaunchCutoff sets the last sign-up date that earns early_adopter.
// A zero time disables the badge.
func WithLaunchCutoff(t time.Time) Option { return func(e *Engine) { e.launchCutoff = t } }

// NewEngine creates an engine over the given stores.
func NewEngine(profiles ProfileStore, badges BadgeStore, opts ...Option) *Engine {
	e := &Engine{
		profiles: profiles,
		badges:   badges,
		clock:    SystemClock{Loc: time.Local},
		now:      time.Now,
		log:      logger.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Today returns the engine's current date.
func (e *Engine) Today() time.Time { return e.clock.Today() }

// AwardXP adds amount XP to a user's profile, recomputing level and streak
// in the same write, then issues any level or streak badges now due.
func (e *Engine) AwardXP(ctx context.Context, userID string, amount int) (*Award, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	today := e.clock.Today()
	a := &Award{Amount: amount}

	p, err := e.profiles.UpdateProfile(ctx, userID, func(p *store.Profile) error {
		a.OldXP, a.OldLevel, a.OldStreak = p.XP, p.Level, p.StreakDays
		p.XP += amount
		p.Level = LevelForXP(p.XP)
		p.StreakDays = NextStreak(p.StreakDays, p.LastActivityDate, today)
		p.LastActivityDate = &today
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}
	a.NewXP, a.NewLevel, a.NewStreak = p.XP, p.Level, p.StreakDays
	a.Profile = *p

	if a.LeveledUp() {
		e.log.Info("level up", "user", userID, "from", a.OldLevel, "to", a.NewLevel)
	}

	checks := []struct {
		badge BadgeType
		ok    bool
	}{
		{BadgeLevel5, a.NewLevel >= 5 && a.OldLevel < 5},
		{BadgeLevel10, a.NewLevel >= 10 && a.OldLevel < 10},
		{BadgeStreak7, a.NewStreak >= 7},
		{BadgeStreak30, a.NewStreak >= 30},
	}
	for _, c := range checks {
		if !c.ok {
			continue
		}
		if err := e.issue(ctx, userID, c.badge, &a.Badges); err != nil {
			return a, err
		}
	}
	return a, nil
}

// EvaluateCompletion issues completion badges and returns the ones that
// were newly earned.
func (e *Engine) EvaluateCompletion(ctx context.Context, userID string, f CompletionFacts) ([]BadgeType, error) {
	var earned []BadgeType

	if f.Created && f.CompletedCount == 1 {
		if err := e.issue(ctx, userID, BadgeFirstArticle, &earned); err != nil {
			return earned, err
		}
	}

	mastery := []struct {
		category catalog.CategoryID
		badge    BadgeType
	}{
		{catalog.CategoryLooksmaxxing, BadgeLooksmaxxingMaster},
		{catalog.CategoryAncestralEating, BadgeAncestralMaster},
	}
	for _, m := range mastery {
		if !containsAll(f.Completed, catalog.MasteryArticleIDs(m.category)) {
			continue
		}
		if err := e.issue(ctx, userID, m.badge, &earned); err != nil {
			return earned, err
		}
	}

	if f.PerfectScores >= quizAceThreshold {
		if err := e.issue(ctx, userID, BadgeQuizAce, &earned); err != nil {
			return earned, err
		}
	}
	return earned, nil
}

// EvaluateCommunity issues community_contributor once a user has started
// enough discussions.
func (e *Engine) EvaluateCommunity(ctx context.Context, userID string, discussionCount int) ([]BadgeType, error) {
	var earned []BadgeType
	if discussionCount >= contributorThreshold {
		if err := e.issue(ctx, userID, BadgeCommunityContributor, &earned); err != nil {
			return earned, err
		}
	}
	return earned, nil
}

// IssueEarlyAdopter issues early_adopter when the sign-up date falls on or
// before the launch cutoff.
func (e *Engine) IssueEarlyAdopter(ctx context.Context, userID string, signedUp time.Time) (bool, error) {
	if e.launchCutoff.IsZero() || DaysBetween(e.launchCutoff, signedUp) > 0 {
		return false, nil
	}
	var earned []BadgeType
	if err := e.issue(ctx, userID, BadgeEarlyAdopter, &earned); err != nil {
		return false, err
	}
	return len(earned) > 0, nil
}

// issue inserts a badge and appends it to earned when it is new.
func (e *Engine) issue(ctx context.Context, userID string, b BadgeType, earned *[]BadgeType) error {
	inserted, err := e.badges.Insert(ctx, userID, string(b), e.now())
	if err != nil {
		e.log.Error("badge insert failed", "user", userID, "badge", string(b), "error", err)
		return fmt.Errorf("issue badge %s: %w", b, err)
	}
	if inserted {
		e.log.Info("badge earned", "user", userID, "badge", string(b))
		*earned = append(*earned, b)
	}
	return nil
}

func containsAll(set map[string]bool, ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !set[id] {
			return false
		}
	}
	return true
}
