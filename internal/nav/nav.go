// Package nav is the navigation state machine: which view the learner is
// on and which moves are legal from it.
package nav

import (
	"errors"
	"fmt"

	"github.com/abhisek/ascend/internal/catalog"
)

// ErrIllegalTransition is returned for an event the current view does not
// accept.
var ErrIllegalTransition = errors.New("illegal navigation")

// Kind tags a View.
type Kind int

const (
	KindCategories Kind = iota
	KindCategory
	KindArticle
	KindQuiz
	KindPlan
	KindCommunity
	KindBadges
)

func (k Kind) String() string {
	switch k {
	case KindCategories:
		return "categories"
	case KindCategory:
		return "category"
	case KindArticle:
		return "article"
	case KindQuiz:
		return "quiz"
	case KindPlan:
		return "plan"
	case KindCommunity:
		return "community"
	case KindBadges:
		return "badges"
	default:
		return "unknown"
	}
}

// View is a tagged variant. CategoryID is set only for KindCategory and
// ArticleID only for KindArticle and KindQuiz.
type View struct {
	Kind       Kind
	CategoryID catalog.CategoryID
	ArticleID  string
}

func Categories() View                    { return View{Kind: KindCategories} }
func Category(id catalog.CategoryID) View { return View{Kind: KindCategory, CategoryID: id} }
func Article(id string) View              { return View{Kind: KindArticle, ArticleID: id} }
func Quiz(articleID string) View          { return View{Kind: KindQuiz, ArticleID: articleID} }
func Plan() View                          { return View{Kind: KindPlan} }
func Community() View                     { return View{Kind: KindCommunity} }
func Badges() View                        { return View{Kind: KindBadges} }

func (v View) String() string {
	switch v.Kind {
	case KindCategory:
		return fmt.Sprintf("category(%s)", v.CategoryID)
	case KindArticle, KindQuiz:
		return fmt.Sprintf("%s(%s)", v.Kind, v.ArticleID)
	default:
		return v.Kind.String()
	}
}

// EventKind names a navigation event.
type EventKind int

const (
	OpenCategory EventKind = iota
	OpenArticle
	StartQuiz
	Reread
	QuizComplete
	OpenPlan
	OpenCommunity
	OpenBadges
	Back
)

func (k EventKind) String() string {
	return [...]string{
		"open-category", "open-article", "start-quiz", "reread", "quiz-complete",
		"open-plan", "open-community", "open-badges", "back",
	}[k]
}

// Event is a navigation request. CategoryID and ArticleID carry the target
// for OpenCategory and OpenArticle.
type Event struct {
	Kind       EventKind
	CategoryID catalog.CategoryID
	ArticleID  string
}

// Transition returns the view reached from `from` by ev.
func Transition(from View, ev Event) (View, error) {
	illegal := func() (View, error) {
		return from, fmt.Errorf("%w: %s from %s", ErrIllegalTransition, ev.Kind, from)
	}

	switch ev.Kind {
	case OpenCategory:
		if from.Kind != KindCategories {
			return illegal()
		}
		if _, err := catalog.GetCategory(ev.CategoryID); err != nil {
			return from, err
		}
		return Category(ev.CategoryID), nil

	case OpenArticle:
		if from.Kind != KindCategory {
			return illegal()
		}
		a, err := catalog.GetArticle(ev.ArticleID)
		if err != nil {
			return from, err
		}
		if a.Category != from.CategoryID {
			return illegal()
		}
		return Article(a.ID), nil

	case StartQuiz:
		if from.Kind != KindArticle {
			return illegal()
		}
		return Quiz(from.ArticleID), nil

	case Reread:
		if from.Kind != KindQuiz {
			return illegal()
		}
		return Article(from.ArticleID), nil

	case QuizComplete:
		if from.Kind != KindQuiz {
			return illegal()
		}
		return Categories(), nil

	case OpenPlan, OpenCommunity, OpenBadges:
		if from.Kind != KindCategories {
			return illegal()
		}
		switch ev.Kind {
		case OpenPlan:
			return Plan(), nil
		case OpenCommunity:
			return Community(), nil
		default:
			return Badges(), nil
		}

	case Back:
		return back(from)
	}
	return illegal()
}

func back(from View) (View, error) {
	switch from.Kind {
	case KindCategory, KindPlan, KindCommunity, KindBadges:
		return Categories(), nil
	case KindArticle:
		a, err := catalog.GetArticle(from.ArticleID)
		if err != nil {
			return from, err
		}
		return Category(a.Category), nil
	case KindQuiz:
		return Article(from.ArticleID), nil
	default:
		return from, fmt.Errorf("%w: back from %s", ErrIllegalTransition, from)
	}
}
