package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestRouter() (*Router, *stubScreen, map[string]*stubScreen) {
	built := map[string]*stubScreen{}
	root := &stubScreen{title: "categories"}
	r := New(nav.Categories(), root, func(v nav.View) (screen.Screen, error) {
		s := &stubScreen{title: v.String()}
		built[v.String()] = s
		return s, nil
	})
	return r, root, built
}

func TestApply_PushesNewView(t *testing.T) {
	r, _, built := newTestRouter()

	if _, err := r.Apply(nav.Event{Kind: nav.OpenCategory, CategoryID: catalog.CategoryLooksmaxxing}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if got := r.Active().Title(); got != "category(looksmaxxing)" {
		t.Errorf("expected active 'category(looksmaxxing)', got %q", got)
	}
	if built["category(looksmaxxing)"].inits != 1 {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestApply_BackUnwindsStack(t *testing.T) {
	r, _, _ := newTestRouter()
	events := []nav.Event{
		{Kind: nav.OpenCategory, CategoryID: catalog.CategoryLooksmaxxing},
		{Kind: nav.OpenArticle, ArticleID: "lm-1"},
		{Kind: nav.StartQuiz},
	}
	for _, ev := range events {
		if _, err := r.Apply(ev); err != nil {
			t.Fatalf("Apply(%s): %v", ev.Kind, err)
		}
	}
	if r.Depth() != 4 {
		t.Fatalf("expected depth 4, got %d", r.Depth())
	}

	if _, err := r.Apply(nav.Event{Kind: nav.Reread}); err != nil {
		t.Fatalf("Reread: %v", err)
	}
	if r.Depth() != 3 || r.Current() != nav.Article("lm-1") {
		t.Errorf("expected article(lm-1) at depth 3, got %s at %d", r.Current(), r.Depth())
	}
}

func TestApply_QuizCompleteReturnsToRoot(t *testing.T) {
	r, root, _ := newTestRouter()
	for _, ev := range []nav.Event{
		{Kind: nav.OpenCategory, CategoryID: catalog.CategoryAncestralEating},
		{Kind: nav.OpenArticle, ArticleID: "ae-1"},
		{Kind: nav.StartQuiz},
		{Kind: nav.QuizComplete},
	} {
		if _, err := r.Apply(ev); err != nil {
			t.Fatalf("Apply(%s): %v", ev.Kind, err)
		}
	}

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != screen.Screen(root) {
		t.Error("expected root screen to be active")
	}
	if root.inits != 1 {
		t.Errorf("expected root to re-init once, got %d", root.inits)
	}
}

func TestApply_IllegalLeavesStack(t *testing.T) {
	r, _, _ := newTestRouter()

	_, err := r.Apply(nav.Event{Kind: nav.Back})
	if !errors.Is(err, nav.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestApply_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := New(nav.Categories(), &stubScreen{title: "root"}, func(nav.View) (screen.Screen, error) {
		return nil, boom
	})

	if _, err := r.Apply(nav.Event{Kind: nav.OpenPlan}); !errors.Is(err, boom) {
		t.Fatalf("expected factory error, got %v", err)
	}
	if r.Current() != nav.Categories() {
		t.Errorf("expected state unchanged, got %s", r.Current())
	}
}

func TestUpdate_NavigateMsg(t *testing.T) {
	r, _, _ := newTestRouter()

	r.Update(NavigateMsg{Event: nav.Event{Kind: nav.OpenBadges}})
	if r.Current() != nav.Badges() {
		t.Errorf("expected badges, got %s", r.Current())
	}

	cmd := r.Update(NavigateMsg{Event: nav.Event{Kind: nav.OpenPlan}})
	if cmd == nil {
		t.Fatal("expected error command for illegal navigation")
	}
	if _, ok := cmd().(NavErrorMsg); !ok {
		t.Error("expected NavErrorMsg")
	}
}
