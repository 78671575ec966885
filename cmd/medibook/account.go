package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/medibook/internal/domain/entities"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func parseRole(s string) (entities.Role, error) {
	role := entities.Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown role %q, expected patient or doctor", s))
	}
	return role, nil
}

func (a *app) printSession(s *entities.Session) error {
	if a.json {
		return a.printJSON(s)
	}
	a.printf("Signed in as %s <%s> (%s, id %s)\n", s.User.Name, s.User.Email, s.User.Role, s.User.ID)
	return nil
}

func loginCmd(a *app) *cobra.Command {
	var email, role string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an email and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRole(role)
			if err != nil {
				return err
			}
			s, err := a.sessions.Login(cmd.Context(), email, r)
			if err != nil {
				return err
			}
			return a.printSession(s)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&role, "role", string(entities.RolePatient), "patient or doctor")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func registerCmd(a *app) *cobra.Command {
	var name, email, role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRole(role)
			if err != nil {
				return err
			}
			s, err := a.sessions.Register(cmd.Context(), name, email, r)
			if err != nil {
				return err
			}
			return a.printSession(s)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&role, "role", string(entities.RolePatient), "patient or doctor")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			if !a.json {
				a.printf("Signed out\n")
			}
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(user)
			}
			a.printf("%s <%s>\nrole: %s\nid:   %s\n", user.Name, user.Email, user.Role, user.ID)
			if user.Role == entities.RolePatient {
				p, err := a.patients.GetByID(cmd.Context(), user.ID)
				if err != nil && !apperrors.IsNotFound(err) {
					return err
				}
				if p != nil {
					a.printf("age:  %d\nphone: %s\n", p.Age, p.Phone)
				}
			}
			return nil
		},
	}
}
