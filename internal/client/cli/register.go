package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func (c *Cli) newRegisterCmd() *cobra.Command {
	var nome, email, telefone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new producer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if nome == "" {
				if nome, err = readInput("Name: "); err != nil {
					return fmt.Errorf("failed to read name: %w", err)
				}
			}
			if email == "" {
				if email, err = readInput("Email: "); err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password confirmation: %w", err)
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			profile, err := c.auth.Register(cmd.Context(), pkgapi.RegisterRequest{
				Nome:     nome,
				Email:    email,
				Password: password,
				Telefone: telefone,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Account created for %s. Run 'rastro login' to sign in.\n", profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&nome, "name", "", "Producer name (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&telefone, "phone", "", "Contact phone")

	return cmd
}
