package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/session"
)

func (c *Cli) newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.MustFromContext(cmd.Context())

			var err error
			if email == "" {
				if email, err = readInput("Email: "); err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			if err := sess.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			user := sess.User()
			fmt.Fprintf(c.out, "Logged in as %s (%s)\n", user.Nome, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")

	return cmd
}
