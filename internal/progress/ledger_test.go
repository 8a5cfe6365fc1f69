package progress

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/ascend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory completion store that counts list calls.
type fakeStore struct {
	rows    map[string]store.Completion
	lists   int
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]store.Completion)}
}

func (f *fakeStore) Upsert(_ context.Context, c store.Completion) (bool, error) {
	key := c.UserID + "/" + c.ArticleID
	_, exists := f.rows[key]
	f.rows[key] = c
	return !exists, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]store.Completion, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Completion
	for _, c := range f.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.Before(out[j].CompletedAt) })
	return out, nil
}

// tickingClock returns successive minutes from a fixed start.
func tickingClock() func() time.Time {
	t := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestRecordCompletion_UpsertSemantics(t *testing.T) {
	fs := newFakeStore()
	l := NewLedger(fs, WithNow(tickingClock()))
	ctx := context.Background()

	_, created, err := l.RecordCompletion(ctx, "u1", "lm-1", 100, map[string]string{"primary_goal": "Improve my skin"})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = l.RecordCompletion(ctx, "u1", "lm-1", 50, map[string]string{"primary_goal": "All of the above"})
	require.NoError(t, err)
	assert.False(t, created)

	recs, err := l.Records(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 50, recs[0].Score)
}

func TestPersonalization_LaterAnswersWin(t *testing.T) {
	fs := newFakeStore()
	l := NewLedger(fs, WithNow(tickingClock()))
	ctx := context.Background()

	_, _, err := l.RecordCompletion(ctx, "u1", "lm-1", 100, map[string]string{"primary_goal": "Improve my skin"})
	require.NoError(t, err)
	_, _, err = l.RecordCompletion(ctx, "u1", "lm-2", 100, map[string]string{"skin_type": "Oily"})
	require.NoError(t, err)
	// Redoing lm-1 later moves its answers to the end of the fold.
	_, _, err = l.RecordCompletion(ctx, "u1", "lm-1", 100, map[string]string{"primary_goal": "All of the above"})
	require.NoError(t, err)

	got, err := l.Personalization(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"primary_goal": "All of the above", "skin_type": "Oily"}, got)
}

func TestFold_SharedKeyOverride(t *testing.T) {
	recs := []store.Completion{
		{ArticleID: "a", Answers: map[string]string{"k": "first", "x": "1"}},
		{ArticleID: "b", Answers: map[string]string{"k": "second"}},
	}
	got := Fold(recs)
	assert.Equal(t, "second", got["k"])
	assert.Equal(t, "1", got["x"])
}

func TestRecords_CachedUntilWrite(t *testing.T) {
	fs := newFakeStore()
	l := NewLedger(fs, WithNow(tickingClock()))
	ctx := context.Background()

	_, err := l.CompletedArticleIDs(ctx, "u1")
	require.NoError(t, err)
	_, err = l.Personalization(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, fs.lists, "second read should hit the cache")

	_, _, err = l.RecordCompletion(ctx, "u1", "ae-1", 100, nil)
	require.NoError(t, err)
	set, err := l.CompletedArticleIDs(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, set["ae-1"])
	assert.Equal(t, 2, fs.lists)
}

func TestRecords_PropagatesStoreError(t *testing.T) {
	fs := newFakeStore()
	fs.listErr = errors.New("disk gone")
	l := NewLedger(fs)
	_, err := l.CompletedArticleIDs(context.Background(), "u1")
	assert.ErrorIs(t, err, fs.listErr)
}

func TestCategoryProgressAndPerfectScores(t *testing.T) {
	fs := newFakeStore()
	l := NewLedger(fs, WithNow(tickingClock()))
	ctx := context.Background()

	for _, id := range []string{"lm-1", "lm-2", "ae-1"} {
		_, _, err := l.RecordCompletion(ctx, "u1", id, 100, nil)
		require.NoError(t, err)
	}
	_, _, err := l.RecordCompletion(ctx, "u1", "lm-3", 50, nil)
	require.NoError(t, err)

	prog, err := l.CategoryProgress(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, prog, 2)
	assert.Equal(t, 3, prog[0].Completed)
	assert.Equal(t, 60, prog[0].Percent())
	assert.Equal(t, 1, prog[1].Completed)

	n, err := l.PerfectScores(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// gatedStore holds its first ListByUser call open after taking the
// snapshot, until release is closed.
type gatedStore struct {
	*fakeStore
	loaded  chan struct{}
	release chan struct{}
}

func (g *gatedStore) ListByUser(ctx context.Context, userID string) ([]store.Completion, error) {
	recs, err := g.fakeStore.ListByUser(ctx, userID)
	if ch := g.loaded; ch != nil {
		g.loaded = nil
		close(ch)
		<-g.release
	}
	return recs, err
}

func TestRecords_WriteDuringLoadIsNotMasked(t *testing.T) {
	gs := &gatedStore{
		fakeStore: newFakeStore(),
		loaded:    make(chan struct{}),
		release:   make(chan struct{}),
	}
	l := NewLedger(gs, WithNow(tickingClock()))
	ctx := context.Background()
	loaded := gs.loaded

	done := make(chan error, 1)
	go func() {
		_, err := l.Records(ctx, "u1")
		done <- err
	}()

	<-loaded
	_, _, err := l.RecordCompletion(ctx, "u1", "lm-1", 100, nil)
	require.NoError(t, err)
	close(gs.release)
	require.NoError(t, <-done)

	set, err := l.CompletedArticleIDs(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, set["lm-1"], "completion written during a load must be visible afterwards")
}
