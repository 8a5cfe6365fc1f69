package gamify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/ascend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	p   store.Profile
	err error
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, _ string, fn func(p *store.Profile) error) (*store.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := f.p
	if err := fn(&cp); err != nil {
		return nil, err
	}
	f.p = cp
	return &cp, nil
}

type fakeBadges struct {
	set  map[string]bool
	at   map[string]time.Time
	rows int
}

func (f *fakeBadges) Insert(_ context.Context, userID, badgeType string, at time.Time) (bool, error) {
	if f.set == nil {
		f.set = make(map[string]bool)
		f.at = make(map[string]time.Time)
	}
	key := userID + "/" + badgeType
	if f.set[key] {
		return false, nil
	}
	f.set[key] = true
	f.at[key] = at
	f.rows++
	return true, nil
}

func newEngine(p store.Profile, today time.Time) (*Engine, *fakeProfiles, *fakeBadges) {
	fp := &fakeProfiles{p: p}
	fb := &fakeBadges{}
	return NewEngine(fp, fb, WithClock(FixedClock(today))), fp, fb
}

func TestAwardXP_LevelsAndXP(t *testing.T) {
	ctx := context.Background()
	e, fp, _ := newEngine(store.Profile{UserID: "u", Level: 1}, date(2025, 6, 10))

	a, err := e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, a.NewXP)
	assert.Equal(t, 1, a.NewLevel)
	assert.False(t, a.LeveledUp())

	a, err = e.AwardXP(ctx, "u", 75)
	require.NoError(t, err)
	assert.Equal(t, 100, a.NewXP)
	assert.Equal(t, 2, a.NewLevel)
	assert.True(t, a.LeveledUp())
	assert.Equal(t, LevelForXP(fp.p.XP), fp.p.Level)
}

func TestAwardXP_RejectsNonPositive(t *testing.T) {
	e, _, _ := newEngine(store.Profile{UserID: "u", Level: 1}, date(2025, 6, 10))
	for _, amt := range []int{0, -5} {
		_, err := e.AwardXP(context.Background(), "u", amt)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestAwardXP_Streaks(t *testing.T) {
	today := date(2025, 6, 10)
	tests := []struct {
		name   string
		streak int
		last   *time.Time
		want   int
	}{
		{"yesterday", 3, ptr(date(2025, 6, 9)), 4},
		{"five days ago", 10, ptr(date(2025, 6, 5)), 1},
		{"never", 0, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fp, _ := newEngine(store.Profile{UserID: "u", Level: 1, StreakDays: tt.streak, LastActivityDate: tt.last}, today)
			a, err := e.AwardXP(context.Background(), "u", 25)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.NewStreak)
			require.NotNil(t, fp.p.LastActivityDate)
			assert.True(t, fp.p.LastActivityDate.Equal(today))
		})
	}
}

func TestAwardXP_SameDayKeepsStreak(t *testing.T) {
	today := date(2025, 6, 10)
	e, _, _ := newEngine(store.Profile{UserID: "u", Level: 1}, today)
	ctx := context.Background()

	first, err := e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	second, err := e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Equal(t, 1, first.NewStreak)
	assert.Equal(t, 1, second.NewStreak)
}

func TestAwardXP_LevelBadgesOnCrossing(t *testing.T) {
	ctx := context.Background()
	e, _, fb := newEngine(store.Profile{UserID: "u", XP: 390, Level: 4}, date(2025, 6, 10))

	a, err := e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeLevel5}, a.Badges)

	a, err = e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Empty(t, a.Badges)

	a, err = e.AwardXP(ctx, "u", 500)
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeLevel10}, a.Badges)
	assert.Equal(t, 2, fb.rows)
}

func TestAwardXP_StreakBadgesIdempotent(t *testing.T) {
	ctx := context.Background()
	today := date(2025, 6, 10)
	e, fp, fb := newEngine(store.Profile{UserID: "u", Level: 1, StreakDays: 6, LastActivityDate: ptr(date(2025, 6, 9))}, today)

	a, err := e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Equal(t, 7, a.NewStreak)
	assert.Equal(t, []BadgeType{BadgeStreak7}, a.Badges)

	// Streak is still 7 on the next award the same day; no second row.
	a, err = e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Empty(t, a.Badges)
	assert.Equal(t, 1, fb.rows)

	fp.p.StreakDays = 29
	fp.p.LastActivityDate = ptr(date(2025, 6, 9))
	a, err = e.AwardXP(ctx, "u", 25)
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeStreak30}, a.Badges)
}

func TestAwardXP_StoreFailure(t *testing.T) {
	fp := &fakeProfiles{err: errors.New("locked")}
	e := NewEngine(fp, &fakeBadges{}, WithClock(FixedClock(date(2025, 6, 10))))
	_, err := e.AwardXP(context.Background(), "u", 25)
	assert.ErrorIs(t, err, fp.err)
}

func completedSet(ids ...string) map[string]bool {
	m := make(map[string]bool)
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestEvaluateCompletion_FirstArticle(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newEngine(store.Profile{}, date(2025, 6, 10))

	got, err := e.EvaluateCompletion(ctx, "u", CompletionFacts{Created: true, CompletedCount: 1, Completed: completedSet("lm-1")})
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeFirstArticle}, got)

	// Re-completing the only article does not count as a first completion.
	e2, _, fb := newEngine(store.Profile{}, date(2025, 6, 10))
	got, err = e2.EvaluateCompletion(ctx, "u", CompletionFacts{Created: false, CompletedCount: 1, Completed: completedSet("lm-1")})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, fb.rows)
}

func TestEvaluateCompletion_MasteryOnFifth(t *testing.T) {
	ctx := context.Background()
	e, _, fb := newEngine(store.Profile{}, date(2025, 6, 10))
	ids := []string{"lm-1", "lm-2", "lm-3", "lm-4", "lm-5"}

	done := map[string]bool{}
	for i, id := range ids {
		done[id] = true
		got, err := e.EvaluateCompletion(ctx, "u", CompletionFacts{Created: true, CompletedCount: i + 1, Completed: done})
		require.NoError(t, err)
		if i < 4 {
			assert.NotContains(t, got, BadgeLooksmaxxingMaster)
		} else {
			assert.Contains(t, got, BadgeLooksmaxxingMaster)
		}
	}
	// A later completion re-checks mastery without a duplicate.
	got, err := e.EvaluateCompletion(ctx, "u", CompletionFacts{Created: false, CompletedCount: 5, Completed: done})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, fb.set["u/looksmaxxing_master"])
	assert.False(t, fb.set["u/ancestral_master"])
}

func TestEvaluateCompletion_QuizAce(t *testing.T) {
	e, _, _ := newEngine(store.Profile{}, date(2025, 6, 10))
	got, err := e.EvaluateCompletion(context.Background(), "u", CompletionFacts{Created: true, CompletedCount: 6, PerfectScores: 5})
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeQuizAce}, got)
}

func TestEvaluateCommunity(t *testing.T) {
	e, _, _ := newEngine(store.Profile{}, date(2025, 6, 10))
	got, err := e.EvaluateCommunity(context.Background(), "u", 4)
	require.NoError(t, err)
	assert.Empty(t, got)
	got, err = e.EvaluateCommunity(context.Background(), "u", 5)
	require.NoError(t, err)
	assert.Equal(t, []BadgeType{BadgeCommunityContributor}, got)
}

func TestIssueEarlyAdopter(t *testing.T) {
	ctx := context.Background()
	cutoff := date(2025, 12, 31)
	tests := []struct {
		name     string
		signedUp time.Time
		want     bool
	}{
		{"before cutoff", date(2025, 6, 1), true},
		{"on cutoff day", time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), true},
		{"after cutoff", date(2026, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(&fakeProfiles{}, &fakeBadges{}, WithLaunchCutoff(cutoff))
			got, err := e.IssueEarlyAdopter(ctx, "u", tt.signedUp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	e := NewEngine(&fakeProfiles{}, &fakeBadges{})
	got, err := e.IssueEarlyAdopter(ctx, "u", date(2020, 1, 1))
	require.NoError(t, err)
	assert.False(t, got, "no cutoff configured")
}

func TestIssue_StampsWithInjectedTime(t *testing.T) {
	stamp := time.Date(2025, 6, 10, 21, 30, 0, 0, time.FixedZone("PST", -8*3600))
	fb := &fakeBadges{}
	e := NewEngine(&fakeProfiles{p: store.Profile{UserID: "u", Level: 1}}, fb,
		WithClock(FixedClock(date(2025, 6, 10))),
		WithNow(func() time.Time { return stamp }))

	_, err := e.EvaluateCompletion(context.Background(), "u", CompletionFacts{
		Created:        true,
		CompletedCount: 1,
		Completed:      map[string]bool{"lm-1": true},
	})
	require.NoError(t, err)
	got, ok := fb.at["u/"+string(BadgeFirstArticle)]
	require.True(t, ok, "first_article should be issued")
	assert.True(t, got.Equal(stamp), "earned_at = %v, want %v", got, stamp)
}

func TestBadgeTypes_HaveDisplayInfo(t *testing.T) {
	types := AllBadgeTypes()
	if len(types) != 10 {
		t.Fatalf("got %d badge types, want 10", len(types))
	}
	for _, b := range types {
		if b.DisplayName() == string(b) || b.Description() == "" || b.Icon() == "🏅" {
			t.Errorf("badge %q missing display info", b)
		}
	}
}
