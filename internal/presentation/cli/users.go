package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sangkips/till-pos/internal/application/service"
	"github.com/sangkips/till-pos/internal/domain/enum"
	"github.com/sangkips/till-pos/pkg/apperror"
)

func newUsersCommand(app *App) *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts (admin only)",
	}
	users.AddCommand(newUsersRegisterCommand(app), newUsersListCommand(app))
	return users
}

// adminLogin prompts for credentials and requires the admin role.
func adminLogin(app *App, cmd *cobra.Command) (*service.Session, error) {
	session, err := login(app, cmd)
	if err != nil {
		return nil, err
	}
	if session.Profile.Role != enum.RoleAdmin {
		session.Close()
		return nil, apperror.NewValidationError("Only admins can manage users")
	}
	return session, nil
}

func newUsersRegisterCommand(app *App) *cobra.Command {
	input := &service.RegisterInput{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := adminLogin(app, cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			if input.Password == "" {
				input.Password, err = promptPassword(cmd, "New user password: ")
				if err != nil {
					return err
				}
			}
			if err := app.Auth.Register(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s created\n", input.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Username, "username", "", "login name")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&input.FullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.Role, "role", "cashier", "role: admin or cashier")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newUsersListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := adminLogin(app, cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			names, err := app.Profiles.ListUsernames(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				profile, err := app.Profiles.GetProfile(cmd.Context(), name)
				if err != nil {
					return err
				}
				lastLogin := "never"
				if profile.LastLogin != nil {
					lastLogin = *profile.LastLogin
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s %-25s last login: %s\n",
					profile.Username, profile.Role, profile.FullName, lastLogin)
			}
			return nil
		},
	}
}
