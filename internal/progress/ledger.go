// Package progress records article completions and derives the read-side
// views built on them: the completed set, the personalization profile and
// per-category progress.
package progress

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/store"
)

// Store is the persistence the ledger needs.
type Store interface {
	Upsert(ctx context.Context, c store.Completion) (created bool, err error)
	ListByUser(ctx context.Context, userID string) ([]store.Completion, error)
}

// Ledger is the progression ledger. Reads go through a per-user cache of
// completion records that is dropped after every write.
type Ledger struct {
	store Store
	now   func() time.Time

	mu    sync.Mutex
	cache map[string][]store.Completion
	// gen counts invalidations per user. A load only fills the cache if no
	// invalidation happened while it was in flight.
	gen map[string]uint64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithNow overrides the ledger's time source.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a ledger over s.
func NewLedger(s Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: s,
		now:   time.Now,
		cache: make(map[string][]store.Completion),
		gen:   make(map[string]uint64),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// RecordCompletion upserts the user's completion of an article. A repeat
// completion overwrites score and answers; created is false in that case.
func (l *Ledger) RecordCompletion(ctx context.Context, userID, articleID string, score int, answers map[string]string) (store.Completion, bool, error) {
	rec := store.Completion{
		UserID:      userID,
		ArticleID:   articleID,
		Score:       score,
		Answers:     maps.Clone(answers),
		CompletedAt: l.now(),
	}
	created, err := l.store.Upsert(ctx, rec)
	l.Invalidate(userID)
	if err != nil {
		return store.Completion{}, false, fmt.Errorf("record completion: %w", err)
	}
	return rec, created, nil
}

// Invalidate drops the cached records for a user.
func (l *Ledger) Invalidate(userID string) {
	l.mu.Lock()
	delete(l.cache, userID)
	l.gen[userID]++
	l.mu.Unlock()
}

// Records returns the user's completions ordered by completion time.
// The returned slice is owned by the caller.
func (l *Ledger) Records(ctx context.Context, userID string) ([]store.Completion, error) {
	l.mu.Lock()
	recs, ok := l.cache[userID]
	gen := l.gen[userID]
	l.mu.Unlock()
	if !ok {
		var err error
		recs, err = l.store.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load completions: %w", err)
		}
		l.mu.Lock()
		if l.gen[userID] == gen {
			l.cache[userID] = recs
		}
		l.mu.Unlock()
	}

	out := make([]store.Completion, len(recs))
	for i, r := range recs {
		r.Answers = maps.Clone(r.Answers)
		out[i] = r
	}
	return out, nil
}

// CompletedArticleIDs returns the set of articles the user has completed.
func (l *Ledger) CompletedArticleIDs(ctx context.Context, userID string) (map[string]bool, error) {
	recs, err := l.Records(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(recs))
	for _, r := range recs {
		set[r.ArticleID] = true
	}
	return set, nil
}

// Personalization folds every record's answers in completion order so the
// most recent answer for a key wins.
func (l *Ledger) Personalization(ctx context.Context, userID string) (map[string]string, error) {
	recs, err := l.Records(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Fold(recs), nil
}

// Fold merges answers from records already sorted by completion time.
func Fold(recs []store.Completion) map[string]string {
	out := make(map[string]string)
	for _, r := range recs {
		maps.Copy(out, r.Answers)
	}
	return out
}

// PerfectScores counts records with a score of 100.
func (l *Ledger) PerfectScores(ctx context.Context, userID string) (int, error) {
	recs, err := l.Records(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range recs {
		if r.Score == 100 {
			n++
		}
	}
	return n, nil
}

// CategoryProgress is completion progress within one category, measured
// against its mastery list.
type CategoryProgress struct {
	Category  catalog.Category
	Completed int
	Total     int
}

// Percent returns completion as a whole percentage.
func (p CategoryProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// CategoryProgress reports progress for every category in display order.
func (l *Ledger) CategoryProgress(ctx context.Context, userID string) ([]CategoryProgress, error) {
	done, err := l.CompletedArticleIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []CategoryProgress
	for _, cat := range catalog.Categories() {
		ids := catalog.MasteryArticleIDs(cat.ID)
		n := 0
		for _, id := range ids {
			if done[id] {
				n++
			}
		}
		out = append(out, CategoryProgress{Category: cat, Completed: n, Total: len(ids)})
	}
	return out, nil
}
