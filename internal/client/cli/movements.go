package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/api"
	"github.com/rastroagro/rastro/internal/validation"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func (c *Cli) newMovementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Record and list batch movements",
	}

	cmd.AddCommand(
		c.newMovementsListCmd(),
		c.newMovementsCreateCmd(),
	)

	return cmd
}

func (c *Cli) newMovementsListCmd() *cobra.Command {
	var skip, limit int
	var loteID int64
	var tipo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			movements, err := c.apiClient.ListMovements(cmd.Context(),
				api.ListOptions{Skip: skip, Limit: limit},
				pkgapi.MovementFilter{LoteID: loteID, Tipo: tipo})
			if err != nil {
				return err
			}

			if len(movements) == 0 {
				fmt.Fprintln(c.out, "No movements found.")
				return nil
			}

			for _, m := range movements {
				fmt.Fprintf(c.out, "%d\tlote %d\t%s\t%s\n", m.ID, m.LoteID, m.Tipo, m.Data.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of movements to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of movements to return")
	cmd.Flags().Int64Var(&loteID, "batch", 0, "Filter by batch id")
	cmd.Flags().StringVar(&tipo, "type", "", "Filter by type (plantio, colheita, envio)")

	return cmd
}

func (c *Cli) newMovementsCreateCmd() *cobra.Command {
	var req pkgapi.MovementRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a movement for a batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Struct(req); err != nil {
				return err
			}

			m, err := c.apiClient.CreateMovement(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Movement %d (%s) recorded for batch %d\n", m.ID, m.Tipo, m.LoteID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.LoteID, "batch", 0, "Batch id")
	cmd.Flags().StringVar(&req.Tipo, "type", "", "Movement type (plantio, colheita, envio)")
	cmd.Flags().StringVar(&req.Origem, "from", "", "Origin location")
	cmd.Flags().StringVar(&req.Destino, "to", "", "Destination location")
	cmd.Flags().StringVar(&req.Observacoes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("batch")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
