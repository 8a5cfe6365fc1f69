package quiz

import (
	"errors"
	"testing"
)

func newEval(t *testing.T, articleID string) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(DefaultBank(), articleID)
	if err != nil {
		t.Fatalf("NewEvaluator(%q): %v", articleID, err)
	}
	return e
}

func TestNewEvaluator_UnknownArticle(t *testing.T) {
	_, err := NewEvaluator(DefaultBank(), "zz-1")
	if !errors.Is(err, ErrNoQuiz) {
		t.Fatalf("got %v, want ErrNoQuiz", err)
	}
}

func TestEvaluator_HappyPath(t *testing.T) {
	e := newEval(t, "lm-2")

	ok, err := e.SubmitComprehension(2)
	if err != nil || !ok {
		t.Fatalf("SubmitComprehension(2) = (%v, %v), want (true, nil)", ok, err)
	}
	if e.Step() != StepPersonalization {
		t.Fatalf("step = %s, want personalization", e.Step())
	}
	if e.Ready() {
		t.Error("Ready() before answering")
	}
	if err := e.Answer("skin_type", "Acne-prone"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	res, err := e.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.ArticleID != "lm-2" || res.Answers["skin_type"] != "Acne-prone" || res.Score != 100 {
		t.Errorf("unexpected result: %+v", res)
	}
	if e.Step() != StepComplete {
		t.Errorf("step = %s, want complete", e.Step())
	}
}

func TestEvaluator_WrongAnswerStaysInComprehension(t *testing.T) {
	e := newEval(t, "lm-1")
	ok, err := e.SubmitComprehension(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("wrong choice reported correct")
	}
	if e.Step() != StepComprehension {
		t.Errorf("step = %s, want comprehension", e.Step())
	}
	if err := e.Answer("primary_goal", "All of the above"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Answer before passing: got %v, want ErrWrongStep", err)
	}
}

func TestEvaluator_ScoreAfterRetries(t *testing.T) {
	tests := []struct {
		wrong int
		want  int
	}{
		{0, 100},
		{1, 50},
		{2, 33},
		{3, 25},
	}
	for _, tt := range tests {
		e := newEval(t, "ae-1")
		for i := 0; i < tt.wrong; i++ {
			if ok, _ := e.SubmitComprehension(0); ok {
				t.Fatal("wrong choice reported correct")
			}
		}
		if ok, _ := e.SubmitComprehension(1); !ok {
			t.Fatal("correct choice rejected")
		}
		if err := e.Answer("current_diet", "Mostly whole foods"); err != nil {
			t.Fatal(err)
		}
		res, err := e.Complete()
		if err != nil {
			t.Fatal(err)
		}
		if res.Score != tt.want {
			t.Errorf("%d wrong attempts: score %d, want %d", tt.wrong, res.Score, tt.want)
		}
	}
}

func TestEvaluator_InvalidInputs(t *testing.T) {
	e := newEval(t, "ae-3")
	if _, err := e.SubmitComprehension(4); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("out of range choice: got %v", err)
	}
	if _, err := e.SubmitComprehension(-1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("negative choice: got %v", err)
	}
	if e.Attempts() != 0 {
		t.Errorf("invalid choices counted as attempts: %d", e.Attempts())
	}
	if _, err := e.SubmitComprehension(1); err != nil {
		t.Fatal(err)
	}
	if err := e.Answer("unknown_key", "x"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("unknown key: got %v", err)
	}
	if err := e.Answer("cooking_oils", "Lard only"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("unknown option: got %v", err)
	}
	if _, err := e.SubmitComprehension(1); !errors.Is(err, ErrWrongStep) {
		t.Errorf("resubmit after pass: got %v", err)
	}
}

func TestEvaluator_IncompleteIsNoop(t *testing.T) {
	e := newEval(t, "ae-5")
	if _, err := e.SubmitComprehension(1); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Complete(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v, want ErrIncomplete", err)
	}
	if e.Step() != StepPersonalization {
		t.Errorf("step changed to %s", e.Step())
	}
	if got := e.Missing(); len(got) != 1 || got[0] != "digestion_issues" {
		t.Errorf("Missing() = %v", got)
	}
}

func TestEvaluator_CompleteIsTerminal(t *testing.T) {
	e := newEval(t, "lm-5")
	e.SubmitComprehension(1)
	e.Answer("facial_exercise_exp", "Never")
	res, err := e.Complete()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Complete(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("second Complete: got %v, want ErrWrongStep", err)
	}
	if err := e.Answer("facial_exercise_exp", "A few times"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Answer after complete: got %v", err)
	}
	res.Answers["facial_exercise_exp"] = "mutated"
	if e.answers["facial_exercise_exp"] != "Never" {
		t.Error("result answers alias evaluator state")
	}
}

func TestBank_Validate(t *testing.T) {
	ids := []string{"lm-1", "lm-2", "lm-3", "lm-4", "lm-5", "ae-1", "ae-2", "ae-3", "ae-4", "ae-5"}
	if err := DefaultBank().Validate(ids); err != nil {
		t.Fatalf("default bank invalid: %v", err)
	}
	if err := DefaultBank().Validate([]string{"xx-1"}); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("missing quiz: got %v", err)
	}
	bad := NewBank(map[string]Quiz{"a": {
		ArticleID:     "a",
		Comprehension: Comprehension{Question: "q", Options: []string{"x", "y"}, Correct: 5},
	}})
	if err := bad.Validate(nil); err == nil {
		t.Error("expected error for out-of-range correct index")
	}
}

func TestBank_LookupReturnsCopy(t *testing.T) {
	b := DefaultBank()
	q, _ := b.Lookup("lm-1")
	q.Comprehension.Options[0] = "mutated"
	q2, _ := b.Lookup("lm-1")
	if q2.Comprehension.Options[0] == "mutated" {
		t.Error("Lookup leaked internal slice")
	}
}
