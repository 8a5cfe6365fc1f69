// Package community is the local discussion board: threads, comments and
// likes.
package community

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/store"
)

// ErrValidation is returned for empty or malformed input. Nothing is
// written when it is returned.
var ErrValidation = errors.New("invalid input")

// Categories a discussion can be filed under.
const (
	CategoryGeneral         = "general"
	CategoryLooksmaxxing    = "looksmaxxing"
	CategoryAncestralEating = "ancestral-eating"
)

// AllCategories returns the discussion categories in display order.
func AllCategories() []string {
	return []string{CategoryGeneral, CategoryLooksmaxxing, CategoryAncestralEating}
}

// Store is the persistence the service needs.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.DBTX) error) error
	Community() *store.CommunityRepo
}

// BadgeEvaluator issues community badges.
type BadgeEvaluator interface {
	EvaluateCommunity(ctx context.Context, userID string, discussionCount int) ([]gamify.BadgeType, error)
}

// Service implements the discussion board.
type Service struct {
	store  Store
	badges BadgeEvaluator
	now    func() time.Time
	log    *logger.Logger
}

// NewService creates a Service. badges may be nil.
func NewService(s Store, badges BadgeEvaluator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: s, badges: badges, now: time.Now, log: log}
}

// Posted is the result of creating a discussion.
type Posted struct {
	Discussion store.Discussion
	Badges     []gamify.BadgeType // newly earned
}

// CreateDiscussion starts a thread. An empty category means general.
func (s *Service) CreateDiscussion(ctx context.Context, userID, title, content, category string) (*Posted, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	if category == "" {
		category = CategoryGeneral
	}
	if !slices.Contains(AllCategories(), category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	d := store.Discussion{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: s.now(),
	}
	repo := s.store.Community()
	if err := repo.CreateDiscussion(ctx, d); err != nil {
		s.log.Error("create discussion failed", "user", userID, "error", err)
		return nil, fmt.Errorf("create discussion: %w", err)
	}
	out := &Posted{Discussion: d}

	if s.badges != nil {
		n, err := repo.CountDiscussionsByUser(ctx, userID)
		if err != nil {
			return out, fmt.Errorf("count discussions: %w", err)
		}
		if out.Badges, err = s.badges.EvaluateCommunity(ctx, userID, n); err != nil {
			return out, err
		}
	}
	return out, nil
}

// ListDiscussions returns discussions newest first. A zero limit lists
// everything.
func (s *Service) ListDiscussions(ctx context.Context, limit int) ([]store.Discussion, error) {
	ds, err := s.store.Community().ListDiscussions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list discussions: %w", err)
	}
	return ds, nil
}

// Discussion returns one discussion.
func (s *Service) Discussion(ctx context.Context, id string) (*store.Discussion, error) {
	return s.store.Community().GetDiscussion(ctx, id)
}

// Comments returns a discussion's comments oldest first.
func (s *Service) Comments(ctx context.Context, discussionID string) ([]store.Comment, error) {
	cs, err := s.store.Community().Comments(ctx, discussionID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return cs, nil
}

// AddComment replies to a discussion and bumps its comment count.
func (s *Service) AddComment(ctx context.Context, userID, discussionID, content string) (*store.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment is empty", ErrValidation)
	}
	c := store.Comment{
		ID:           uuid.NewString(),
		DiscussionID: discussionID,
		UserID:       userID,
		Content:      content,
		CreatedAt:    s.now(),
	}
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		return store.NewCommunityRepo(tx).AddComment(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return &c, nil
}

// ToggleLike likes or unlikes a discussion and reports the new state.
func (s *Service) ToggleLike(ctx context.Context, userID, discussionID string) (bool, error) {
	var liked bool
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		var err error
		liked, err = store.NewCommunityRepo(tx).ToggleLike(ctx, discussionID, userID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	return liked, nil
}

// LikedBy returns the discussions the user has liked.
func (s *Service) LikedBy(ctx context.Context, userID string) (map[string]bool, error) {
	return s.store.Community().LikedBy(ctx, userID)
}

// ResolveID expands a unique ID prefix to the full discussion ID.
func (s *Service) ResolveID(ctx context.Context, prefix string) (string, error) {
	ds, err := s.ListDiscussions(ctx, 0)
	if err != nil {
		return "", err
	}
	var match string
	for _, d := range ds {
		if strings.HasPrefix(d.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: id prefix %q is ambiguous", ErrValidation, prefix)
			}
			match = d.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("discussion %q: %w", prefix, store.ErrNotFound)
	}
	return match, nil
}
