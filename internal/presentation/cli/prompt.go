package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sangkips/till-pos/internal/application/service"
)

// promptLine reads one line of input with a label.
func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func promptPassword(cmd *cobra.Command, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), label)
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return promptLine(cmd, label)
}

// login prompts for credentials and opens a session.
func login(app *App, cmd *cobra.Command) (*service.Session, error) {
	username, err := promptLine(cmd, "Username: ")
	if err != nil {
		return nil, err
	}
	password, err := promptPassword(cmd, "Password: ")
	if err != nil {
		return nil, err
	}
	return app.Auth.Login(cmd.Context(), username, password)
}
