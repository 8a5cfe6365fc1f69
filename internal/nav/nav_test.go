package nav

import (
	"errors"
	"testing"

	"github.com/abhisek/ascend/internal/catalog"
)

func TestTransition_Legal(t *testing.T) {
	tests := []struct {
		name string
		from View
		ev   Event
		want View
	}{
		{"open category", Categories(), Event{Kind: OpenCategory, CategoryID: catalog.CategoryLooksmaxxing}, Category(catalog.CategoryLooksmaxxing)},
		{"open article", Category(catalog.CategoryAncestralEating), Event{Kind: OpenArticle, ArticleID: "ae-2"}, Article("ae-2")},
		{"start quiz", Article("lm-1"), Event{Kind: StartQuiz}, Quiz("lm-1")},
		{"reread", Quiz("lm-1"), Event{Kind: Reread}, Article("lm-1")},
		{"quiz complete", Quiz("lm-1"), Event{Kind: QuizComplete}, Categories()},
		{"open plan", Categories(), Event{Kind: OpenPlan}, Plan()},
		{"open community", Categories(), Event{Kind: OpenCommunity}, Community()},
		{"open badges", Categories(), Event{Kind: OpenBadges}, Badges()},
		{"back from category", Category(catalog.CategoryLooksmaxxing), Event{Kind: Back}, Categories()},
		{"back from article", Article("ae-3"), Event{Kind: Back}, Category(catalog.CategoryAncestralEating)},
		{"back from quiz", Quiz("ae-3"), Event{Kind: Back}, Article("ae-3")},
		{"back from plan", Plan(), Event{Kind: Back}, Categories()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTransition_Illegal(t *testing.T) {
	tests := []struct {
		name string
		from View
		ev   Event
	}{
		{"start quiz outside article", Category(catalog.CategoryLooksmaxxing), Event{Kind: StartQuiz}},
		{"reread outside quiz", Article("lm-1"), Event{Kind: Reread}},
		{"complete outside quiz", Article("lm-1"), Event{Kind: QuizComplete}},
		{"article from other category", Category(catalog.CategoryLooksmaxxing), Event{Kind: OpenArticle, ArticleID: "ae-1"}},
		{"plan from article", Article("lm-1"), Event{Kind: OpenPlan}},
		{"back from root", Categories(), Event{Kind: Back}},
		{"category from category", Category(catalog.CategoryLooksmaxxing), Event{Kind: OpenCategory, CategoryID: catalog.CategoryAncestralEating}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("got err %v, want ErrIllegalTransition", err)
			}
			if got != tt.from {
				t.Errorf("view changed to %s on illegal transition", got)
			}
		})
	}
}

func TestTransition_UnknownTargets(t *testing.T) {
	if _, err := Transition(Categories(), Event{Kind: OpenCategory, CategoryID: "cardio"}); !errors.Is(err, catalog.ErrCategoryNotFound) {
		t.Errorf("got %v, want ErrCategoryNotFound", err)
	}
	if _, err := Transition(Category(catalog.CategoryLooksmaxxing), Event{Kind: OpenArticle, ArticleID: "lm-99"}); !errors.Is(err, catalog.ErrArticleNotFound) {
		t.Errorf("got %v, want ErrArticleNotFound", err)
	}
}
