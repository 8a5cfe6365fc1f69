package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/auth"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		username, _ := cmd.Flags().GetString("username")
		if err := runForm(signUpForm(&email, &password, &username)); err != nil {
			return err
		}

		u, err := e.auth.SignUp(cmd.Context(), email, password, username)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You're signed in as %s.\n", u.Username, u.Email)
		return nil
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if err := runForm(credentialsForm(&email, &password)); err != nil {
			return err
		}

		u, err := e.auth.SignIn(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s.\n", u.Username)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
		if e.auth.Session().CurrentUser() == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			return nil
		}
		if err := e.auth.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in learner",
	RunE: withUser(func(cmd *cobra.Command, e *env, u *auth.User, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.Username, u.Email)
		return nil
	}),
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().String("email", "", "Account email (prompted when empty)")
		c.Flags().String("password", "", "Account password (prompted when empty)")
	}
	signupCmd.Flags().String("username", "", "Display name (prompted when empty)")
}
