package journey

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/progress"
	"github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/recommend"
	"github.com/abhisek/ascend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    *Service
	store  *store.Store
	userID string
}

func newFixture(t *testing.T, today time.Time) *fixture {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	id := uuid.NewString()
	_, err = st.CreateAccount(context.Background(), store.Account{
		ID: id, Email: "ada@example.com", PasswordHash: "x", CreatedAt: today,
	}, "ada")
	require.NoError(t, err)

	clock := today
	ledger := progress.NewLedger(st.Completions(), progress.WithNow(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	engine := gamify.NewEngine(st, st.Badges(), gamify.WithClock(gamify.FixedClock(today)))
	svc := NewService(Deps{
		Ledger:       ledger,
		Engine:       engine,
		Recommender:  recommend.Default(),
		Profiles:     st,
		Badges:       st.Badges(),
		Resetter:     st,
		XPPerArticle: gamify.DefaultXPPerArticle,
	})
	return &fixture{svc: svc, store: st, userID: id}
}

// pass runs a quiz through the evaluator with the correct answer on the
// first try and the first option for every personalization question.
func pass(t *testing.T, articleID string) quiz.Result {
	t.Helper()
	ev, err := quiz.NewEvaluator(quiz.DefaultBank(), articleID)
	require.NoError(t, err)
	ok, err := ev.SubmitComprehension(ev.Quiz().Comprehension.Correct)
	require.NoError(t, err)
	require.True(t, ok)
	for _, p := range ev.Quiz().Personalization {
		require.NoError(t, ev.Answer(p.Key, p.Options[0]))
	}
	res, err := ev.Complete()
	require.NoError(t, err)
	return res
}

func TestCompleteArticle_FirstCompletion(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := f.svc.CompleteArticle(ctx, f.userID, pass(t, "lm-1"))
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, 25, out.Award.NewXP)
	assert.Equal(t, 1, out.Award.NewStreak)
	assert.Equal(t, []gamify.BadgeType{gamify.BadgeFirstArticle}, out.Badges)
	require.NotNil(t, out.Next)
	assert.Equal(t, "lm-2", out.Next.ID)
}

func TestCompleteArticle_Locked(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	_, err := f.svc.CompleteArticle(context.Background(), f.userID, pass(t, "lm-3"))
	assert.ErrorIs(t, err, ErrLocked)

	p, err := f.store.GetProfile(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.XP, "locked completion must not award XP")
}

func TestCompleteArticle_UnknownArticle(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	_, err := f.svc.CompleteArticle(context.Background(), f.userID, quiz.Result{ArticleID: "zz-1"})
	assert.ErrorIs(t, err, catalog.ErrArticleNotFound)
}

func TestCompleteArticle_MasteryAfterChain(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	var earned []gamify.BadgeType
	for i, id := range catalog.MasteryArticleIDs(catalog.CategoryLooksmaxxing) {
		out, err := f.svc.CompleteArticle(ctx, f.userID, pass(t, id))
		require.NoError(t, err)
		if i < 4 {
			assert.NotContains(t, out.Badges, gamify.BadgeLooksmaxxingMaster)
		}
		earned = append(earned, out.Badges...)
	}
	assert.Contains(t, earned, gamify.BadgeLooksmaxxingMaster)
	assert.Contains(t, earned, gamify.BadgeQuizAce)

	// Redoing an article keeps one record, one mastery badge, and still pays XP.
	out, err := f.svc.CompleteArticle(ctx, f.userID, pass(t, "lm-2"))
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Empty(t, out.Badges)
	assert.Equal(t, 150, out.Award.NewXP)
	assert.Equal(t, 2, out.Award.NewLevel)

	badges, err := f.store.Badges().ListByUser(ctx, f.userID)
	require.NoError(t, err)
	count := 0
	for _, b := range badges {
		if b.Type == string(gamify.BadgeLooksmaxxingMaster) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	d, err := f.svc.Dashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, recommend.StatusNoData, d.Plan.Status)

	res := pass(t, "lm-2")
	_, err = f.svc.CompleteArticle(ctx, f.userID, pass(t, "lm-1"))
	require.NoError(t, err)
	res.Answers["skin_type"] = "Acne-prone"
	_, err = f.svc.CompleteArticle(ctx, f.userID, res)
	require.NoError(t, err)

	d, err = f.svc.Dashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 50, d.Profile.XP)
	assert.Equal(t, 2, d.Progress[0].Completed)
	assert.True(t, d.Completed["lm-2"])
	require.Len(t, d.Plan.Recommendations, 1)
	assert.Equal(t, "Acne-Prone Skin", d.Plan.Recommendations[0].Title)
}

func TestReset(t *testing.T) {
	f := newFixture(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := f.svc.CompleteArticle(ctx, f.userID, pass(t, "ae-1"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Reset(ctx, f.userID))

	done, err := f.svc.Completed(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, done)
	d, err := f.svc.Dashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Profile.XP)
	assert.Empty(t, d.Badges)
}
