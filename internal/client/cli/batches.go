package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/api"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func (c *Cli) newBatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Manage traceable batches",
	}

	cmd.AddCommand(
		c.newBatchesListCmd(),
		c.newBatchesGetCmd(),
		c.newBatchesCreateCmd(),
	)

	return cmd
}

func (c *Cli) newBatchesListCmd() *cobra.Command {
	var skip, limit int
	var produtoID int64
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := c.apiClient.ListBatches(cmd.Context(),
				api.ListOptions{Skip: skip, Limit: limit},
				pkgapi.BatchFilter{ProdutoID: produtoID, Status: status})
			if err != nil {
				return err
			}

			if len(batches) == 0 {
				fmt.Fprintln(c.out, "No batches found.")
				return nil
			}

			for _, b := range batches {
				onChain := ""
				if b.ChainTxID != "" {
					onChain = "\ton-chain"
				}
				fmt.Fprintf(c.out, "%d\t%s\t%.2f\t%s%s\n", b.ID, b.Codigo, b.Quantidade, b.Status, onChain)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of batches to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of batches to return")
	cmd.Flags().Int64Var(&produtoID, "product", 0, "Filter by product id")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")

	return cmd
}

func (c *Cli) newBatchesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one batch and its movements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid batch id %q", args[0])
			}

			b, err := c.apiClient.GetBatch(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "ID:       %d\n", b.ID)
			fmt.Fprintf(c.out, "Code:     %s\n", b.Codigo)
			fmt.Fprintf(c.out, "Product:  %d\n", b.ProdutoID)
			fmt.Fprintf(c.out, "Quantity: %.2f\n", b.Quantidade)
			fmt.Fprintf(c.out, "Status:   %s\n", b.Status)
			if b.DataColheita != nil {
				fmt.Fprintf(c.out, "Harvest:  %s\n", b.DataColheita.Format("2006-01-02"))
			}
			if b.ChainTxID != "" {
				fmt.Fprintf(c.out, "Chain tx: %s\n", b.ChainTxID)
			}

			movements, err := c.apiClient.ListBatchMovements(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(movements) > 0 {
				fmt.Fprintln(c.out, "Movements:")
				for _, m := range movements {
					fmt.Fprintf(c.out, "  %s\t%s", m.Data.Format("2006-01-02"), m.Tipo)
					if m.Destino != "" {
						fmt.Fprintf(c.out, "\t-> %s", m.Destino)
					}
					fmt.Fprintln(c.out)
				}
			}
			return nil
		},
	}
}

func (c *Cli) newBatchesCreateCmd() *cobra.Command {
	var produtoID int64
	var quantidade float64
	var harvest string
	var mint bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pkgapi.BatchRequest{ProdutoID: produtoID, Quantidade: quantidade}

			if harvest != "" {
				d, err := time.Parse("2006-01-02", harvest)
				if err != nil {
					return fmt.Errorf("invalid harvest date %q (want YYYY-MM-DD)", harvest)
				}
				req.DataColheita = &d
			}

			b, err := c.apiClient.CreateBatch(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Batch created: id %d, tracking code %s\n", b.ID, b.Codigo)

			if mint {
				res := c.registrar.RegisterBatch(cmd.Context(), b)
				if res.OnChain {
					fmt.Fprintf(c.out, "Registered on chain: %s\n", res.TxID)
				} else {
					fmt.Fprintln(c.out, "On-chain registration unavailable; batch saved off-chain.")
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&produtoID, "product", 0, "Product id the batch belongs to")
	cmd.Flags().Float64Var(&quantidade, "quantity", 0, "Batch quantity, in the product's unit")
	cmd.Flags().StringVar(&harvest, "harvest", "", "Harvest date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&mint, "mint", false, "Also register the batch on chain (best effort)")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}
