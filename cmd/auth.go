package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.sessions.Login(cmd.Context(), domain.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.FullName, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var fullName, email, password, vneid string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account verified against the national e-identity registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registration, err := app.sessions.Register(cmd.Context(), domain.RegisterRequest{
				FullName: fullName,
				Email:    email,
				Password: password,
				VNeID:    vneid,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s>\n", registration.User.FullName, registration.User.Email)
			if registration.Identity != nil && registration.Identity.Phone != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Verified phone: %s\n", registration.Identity.Phone)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&vneid, "vneid", "", "National e-identity number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("vneid")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Logout(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

var errNotSignedIn = errors.New("not signed in")

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Bootstrap(cmd.Context())

			session := app.sessions.Session()
			if !session.Authenticated() {
				return errNotSignedIn
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", session.User.FullName, session.User.Email)
			return nil
		},
	}
}
