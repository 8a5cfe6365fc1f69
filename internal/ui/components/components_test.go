package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "one"},
		{Label: "locked too", Disabled: true},
		{Label: "two"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected initial selection 1, got %d", m.Selected)
	}

	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("expected selection 3 after down, got %d", m.Selected)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Errorf("expected selection 1 after up, got %d", m.Selected)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Errorf("expected selection to stay at 1, got %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		called = true
		return nil
	}}})

	m.Update(key("enter"))
	if !called {
		t.Error("expected action to run on enter")
	}
}

func TestMultiChoice_SubmitAndRetry(t *testing.T) {
	m := NewMultiChoice("Pick", []string{"a", "b", "c"}, 1)

	m, _ = m.Update(key("enter"))
	if !m.Submitted || m.IsCorrect() {
		t.Fatalf("expected submitted wrong answer, got submitted=%v correct=%v", m.Submitted, m.IsCorrect())
	}

	m.Retry()
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if !m.IsCorrect() {
		t.Error("expected correct answer after retry")
	}
	if got, _ := m.Choice(); got != "b" {
		t.Errorf("expected choice b, got %q", got)
	}
}

func TestMultiChoice_NumberKeys(t *testing.T) {
	m := NewMultiChoice("Pick", []string{"a", "b", "c"}, NoCorrect)

	m, _ = m.Update(key("3"))
	if m.Selected != 2 {
		t.Errorf("expected selection 2, got %d", m.Selected)
	}
	m, _ = m.Update(key("9"))
	if m.Selected != 2 {
		t.Errorf("out of range key moved selection to %d", m.Selected)
	}

	m, _ = m.Update(key("enter"))
	if m.IsCorrect() {
		t.Error("preference question should never be correct")
	}
}

func TestCountBar_Caption(t *testing.T) {
	p := NewCountBar("Looksmaxxing", 3, 5, 40)
	if p.Percent != 0.6 {
		t.Errorf("expected 0.6, got %v", p.Percent)
	}
	if !strings.Contains(p.View(), "3/5") {
		t.Error("expected 3/5 caption in view")
	}

	empty := NewCountBar("", 0, 0, 20)
	if empty.Percent != 0 {
		t.Errorf("expected 0 for empty total, got %v", empty.Percent)
	}
}
