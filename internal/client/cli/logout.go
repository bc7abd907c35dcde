package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/session"
)

func (c *Cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.MustFromContext(cmd.Context())
			sess.Logout(cmd.Context())

			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}
