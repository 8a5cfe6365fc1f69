package cmd

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/community"
)

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// credentialsForm prompts for whichever of email and password are still
// empty. It returns nil when nothing is missing.
func credentialsForm(email, password *string) *huh.Form {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(email).
			Validate(required("email")))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(required("password")))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// signUpForm prompts for the sign-up fields that weren't passed as flags.
func signUpForm(email, password, username *string) *huh.Form {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Description("Shown next to your community posts").
			Value(username).
			Validate(required("username")))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(email).
			Validate(required("email")))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			Description("At least 8 characters").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(func(s string) error {
				if len(s) < auth.MinPasswordLength {
					return errors.New("password must be at least 8 characters")
				}
				return nil
			}))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// discussionForm prompts for a new discussion's title, category and body.
func discussionForm(title, category, content *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(community.AllCategories()))
	for _, c := range community.AllCategories() {
		options = append(options, huh.NewOption(c, c))
	}
	if *category == "" {
		*category = community.AllCategories()[0]
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(120).
				Value(title).
				Validate(required("title")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(category),
			huh.NewText().
				Title("What's on your mind?").
				Value(content).
				Validate(required("content")),
		),
	).WithShowHelp(false)
}

// confirmForm creates a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithShowHelp(false)
}

// runForm runs f unless it is nil.
func runForm(f *huh.Form) error {
	if f == nil {
		return nil
	}
	return f.Run()
}
