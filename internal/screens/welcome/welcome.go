package welcome

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// Authenticator signs a learner in or registers a new one. A successful
// call publishes a SignedIn event on the session, which is what moves the
// application past this screen.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*auth.User, error)
	SignUp(ctx context.Context, email, password, username string) (*auth.User, error)
}

type authDoneMsg struct {
	Err error
}

const (
	fieldEmail = iota
	fieldPassword
	fieldUsername
)

// WelcomeScreen is the sign-in gate shown while nobody is signed in.
type WelcomeScreen struct {
	auth   Authenticator
	signUp bool
	fields []components.TextInput
	focus  int
	busy   bool
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen in sign-in mode.
func New(a Authenticator) *WelcomeScreen {
	email := components.NewTextInput("Email", "you@example.com", 254)
	password := components.NewTextInput("Password", "at least 8 characters", 128)
	password.Model.EchoMode = textinput.EchoPassword
	password.Model.Blur()
	username := components.NewTextInput("Username", "how others see you", 40)
	username.Model.Blur()

	return &WelcomeScreen{
		auth:   a,
		fields: []components.TextInput{email, password, username},
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	toggle := "Create account"
	if w.signUp {
		toggle = "Have an account"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: toggle},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.fields[w.focus].Init()
}

func (w *WelcomeScreen) fieldCount() int {
	if w.signUp {
		return 3
	}
	return 2
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		w.busy = false
		if msg.Err != nil {
			w.errMsg = describe(msg.Err)
		}
		return w, nil

	case tea.KeyMsg:
		if w.busy {
			return w, nil
		}
		switch msg.String() {
		case "ctrl+t":
			w.signUp = !w.signUp
			w.errMsg = ""
			if w.focus >= w.fieldCount() {
				return w, w.moveFocus(0)
			}
			return w, nil
		case "tab", "down":
			return w, w.moveFocus((w.focus + 1) % w.fieldCount())
		case "shift+tab", "up":
			return w, w.moveFocus((w.focus + w.fieldCount() - 1) % w.fieldCount())
		case "enter":
			if w.focus < w.fieldCount()-1 {
				return w, w.moveFocus(w.focus + 1)
			}
			return w, w.submit()
		}
		w.errMsg = ""
	}

	var cmd tea.Cmd
	w.fields[w.focus], cmd = w.fields[w.focus].Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) moveFocus(i int) tea.Cmd {
	w.fields[w.focus].Model.Blur()
	w.focus = i
	return w.fields[w.focus].Model.Focus()
}

func (w *WelcomeScreen) submit() tea.Cmd {
	email := w.fields[fieldEmail].Value()
	password := w.fields[fieldPassword].Model.Value()
	username := w.fields[fieldUsername].Value()
	signUp := w.signUp

	if signUp {
		if err := auth.ValidateSignUp(email, password, username); err != nil {
			w.errMsg = describe(err)
			return nil
		}
	}

	w.busy = true
	w.errMsg = ""
	return func() tea.Msg {
		var err error
		if signUp {
			_, err = w.auth.SignUp(context.Background(), email, password, username)
		} else {
			_, err = w.auth.SignIn(context.Background(), email, password)
		}
		return authDoneMsg{Err: err}
	}
}

// describe turns an auth error into a message for the form.
func describe(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, auth.ErrEmailTaken):
		return "That email is already registered. Sign in instead."
	case errors.Is(err, auth.ErrValidation):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Level up your looks and your plate."))

	heading := "Sign in"
	if w.signUp {
		heading = "Create your account"
	}
	form := []string{theme.Subheading.Render(heading)}
	for i := 0; i < w.fieldCount(); i++ {
		form = append(form, w.fields[i].View())
	}
	switch {
	case w.busy:
		form = append(form, theme.Hint.Render("Working..."))
	case w.errMsg != "":
		form = append(form, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}
	sections = append(sections, theme.Card.Width(min(width-4, 56)).Render(strings.Join(form, "\n\n")))

	content := lipgloss.JoinVertical(lipgloss.Center, interleave(sections, "")...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
