package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sangkips/till-pos/internal/application/service"
)

func newProfileCommand(app *App) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "View or update your own profile",
	}
	profile.AddCommand(
		newProfileShowCommand(app),
		newProfileUpdateCommand(app),
		newProfilePasswdCommand(app),
	)
	return profile
}

func newProfileShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(app, cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			p := session.Profile
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username:  %s\n", p.Username)
			fmt.Fprintf(out, "Full name: %s\n", p.FullName)
			fmt.Fprintf(out, "Email:     %s\n", p.Email)
			fmt.Fprintf(out, "Role:      %s\n", p.Role)
			fmt.Fprintf(out, "Created:   %s\n", p.CreatedDate)
			if p.HasProfileImage() {
				fmt.Fprintf(out, "Avatar:    %s\n", p.ProfileImage)
			} else {
				fmt.Fprintln(out, "Avatar:    (placeholder)")
			}
			return nil
		},
	}
}

func newProfileUpdateCommand(app *App) *cobra.Command {
	var fullName, email, imagePath string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(app, cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			input := &service.UpdateProfileInput{Username: session.Username()}
			if cmd.Flags().Changed("full-name") {
				input.FullName = &fullName
			}
			if cmd.Flags().Changed("email") {
				input.Email = &email
			}
			if cmd.Flags().Changed("image") {
				saved, err := app.Profiles.SaveProfileImage(cmd.Context(), session.Username(), imagePath)
				if err != nil {
					return err
				}
				input.ProfileImage = &saved
			}

			result, err := app.Profiles.UpdateProfile(cmd.Context(), input)
			if err != nil {
				return err
			}
			if result.Warning != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning:", result.Warning)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a new avatar image")
	return cmd
}

func newProfilePasswdCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := promptLine(cmd, "Username: ")
			if err != nil {
				return err
			}
			oldPassword, err := promptPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptPassword(cmd, "New password: ")
			if err != nil {
				return err
			}

			err = app.Auth.ChangePassword(cmd.Context(), &service.ChangePasswordInput{
				Username:    username,
				OldPassword: oldPassword,
				NewPassword: newPassword,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
}
