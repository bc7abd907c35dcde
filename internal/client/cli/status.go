package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the authentication status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tok, ok := c.auth.Token(ctx)
			if !ok {
				fmt.Fprintln(c.out, "Status: not authenticated")
				fmt.Fprintln(c.out, "Run 'rastro login' to authenticate.")
				return nil
			}

			fmt.Fprintln(c.out, "Status: authenticated")

			// Best effort: the token is opaque to this client, but when
			// it happens to be a JWT its claims are worth showing.
			for _, line := range tokenClaims(tok) {
				fmt.Fprintln(c.out, line)
			}

			return nil
		},
	}
}

// tokenClaims renders display lines for a JWT's subject and expiry.
// Returns nothing for tokens that are not parseable JWTs.
func tokenClaims(tok string) []string {
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	var lines []string

	if sub, err := parsed.Claims.GetSubject(); err == nil && sub != "" {
		lines = append(lines, "Subject: "+sub)
	}

	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		lines = append(lines, "Token expires: "+exp.Time.Format(time.RFC3339))
	}

	return lines
}
