package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the `login` command
func NewLoginCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"login",
		"Authenticate against the MAPO backend",
	)
	cmd.Long = `Exchanges your credentials for a bearer token and stores it in the
session file under your user config directory. Subsequent commands attach it
automatically until you log out or the backend rejects it.`

	cmd.Flags().String("email", "", "Account email (prompted when omitted)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cli.GetLogger(cmd)

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		resp, err := s.Login(cmd.Context(), email, string(passwordBytes))
		if err != nil {
			return err
		}

		if err := session.Save(&session.Session{
			AccessToken: resp.AccessToken,
			TokenType:   resp.TokenType,
			User:        resp.User,
			CreatedAt:   time.Now(),
		}); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}

		logger.WithField("user", resp.User.Email).Debug("Session persisted")
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil
	}

	return cmd
}

// NewLogoutCmd creates the `logout` command
func NewLogoutCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"logout",
		"Drop the stored session",
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	}

	return cmd
}
