package community

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	engine := gamify.NewEngine(st, st.Badges())
	svc := NewService(st, engine, nil)
	tick := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return svc, st
}

func TestCreateDiscussion_Validation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name, title, content, category string
	}{
		{"empty title", "  ", "body", ""},
		{"empty content", "Title", "", ""},
		{"unknown category", "Title", "body", "cardio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDiscussion(ctx, "u1", tt.title, tt.content, tt.category)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	n, err := st.Community().CountDiscussionsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, n, "rejected posts must not be stored")
}

func TestCreateDiscussion_DefaultsAndOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateDiscussion(ctx, "u1", "First", "hello", "")
	require.NoError(t, err)
	assert.Equal(t, CategoryGeneral, first.Discussion.Category)
	_, err = svc.CreateDiscussion(ctx, "u1", "Second", "hello again", CategoryLooksmaxxing)
	require.NoError(t, err)

	list, err := svc.ListDiscussions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title)
}

func TestCreateDiscussion_ContributorBadge(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var earned []gamify.BadgeType
	for i := 0; i < 5; i++ {
		p, err := svc.CreateDiscussion(ctx, "u1", "Post", "body", "")
		require.NoError(t, err)
		if i < 4 {
			assert.Empty(t, p.Badges)
		}
		earned = append(earned, p.Badges...)
	}
	assert.Equal(t, []gamify.BadgeType{gamify.BadgeCommunityContributor}, earned)

	p, err := svc.CreateDiscussion(ctx, "u1", "Post", "body", "")
	require.NoError(t, err)
	assert.Empty(t, p.Badges)
}

func TestComments(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p, err := svc.CreateDiscussion(ctx, "u1", "Q", "question", "")
	require.NoError(t, err)
	id := p.Discussion.ID

	_, err = svc.AddComment(ctx, "u2", id, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddComment(ctx, "u2", id, "first")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, "u1", id, "second")
	require.NoError(t, err)

	cs, err := svc.Comments(ctx, id)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "first", cs[0].Content)

	d, err := svc.Discussion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, d.CommentsCount)
}

func TestAddComment_MissingDiscussionRollsBack(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	_, err := svc.AddComment(ctx, "u1", "nope", "hi")
	assert.ErrorIs(t, err, store.ErrNotFound)

	cs, err := st.Community().Comments(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestToggleLike(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p, err := svc.CreateDiscussion(ctx, "u1", "Q", "question", "")
	require.NoError(t, err)
	id := p.Discussion.ID

	liked, err := svc.ToggleLike(ctx, "u2", id)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = svc.ToggleLike(ctx, "u3", id)
	require.NoError(t, err)
	assert.True(t, liked)

	d, err := svc.Discussion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, d.LikesCount)

	liked, err = svc.ToggleLike(ctx, "u2", id)
	require.NoError(t, err)
	assert.False(t, liked)

	set, err := svc.LikedBy(ctx, "u3")
	require.NoError(t, err)
	assert.True(t, set[id])
	d, err = svc.Discussion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, d.LikesCount)
}

func TestResolveID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p, err := svc.CreateDiscussion(ctx, "u1", "Q", "question", "")
	require.NoError(t, err)

	got, err := svc.ResolveID(ctx, p.Discussion.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.Discussion.ID, got)

	_, err = svc.ResolveID(ctx, "zzzzzzzz")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
