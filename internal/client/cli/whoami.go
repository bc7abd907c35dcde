package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/session"
)

func (c *Cli) newWhoamiCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.MustFromContext(cmd.Context())

			if refresh {
				if err := sess.RefreshUser(cmd.Context()); err != nil {
					return fmt.Errorf("failed to refresh profile: %w", err)
				}
			}

			user := sess.User()
			if user == nil {
				return fmt.Errorf("not authenticated. Run 'rastro login' first")
			}

			fmt.Fprintf(c.out, "Name:    %s\n", user.Nome)
			fmt.Fprintf(c.out, "Email:   %s\n", user.Email)
			fmt.Fprintf(c.out, "Profile: %s\n", user.TipoPerfil)
			if user.Cidade != "" {
				fmt.Fprintf(c.out, "City:    %s/%s\n", user.Cidade, user.Estado)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-fetch the profile from the server first")

	return cmd
}
