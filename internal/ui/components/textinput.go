package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an inline error.
type TextInput struct {
	Label string
	Model textinput.Model
	err   string
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(label, placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()

	return TextInput{Label: label, Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears a previous error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.err = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	var b strings.Builder
	if t.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label) + "\n")
	}
	b.WriteString(t.Model.View())
	if t.err != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err))
	}
	return b.String()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the value and any error.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.err = ""
}

// SetError shows msg under the input until the next keypress.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}
