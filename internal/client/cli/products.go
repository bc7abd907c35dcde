package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/api"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func (c *Cli) newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage registered products",
	}

	cmd.AddCommand(
		c.newProductsListCmd(),
		c.newProductsGetCmd(),
		c.newProductsCreateCmd(),
		c.newProductsDeleteCmd(),
	)

	return cmd
}

func (c *Cli) newProductsListCmd() *cobra.Command {
	var skip, limit int
	var categoria, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.apiClient.ListProducts(cmd.Context(),
				api.ListOptions{Skip: skip, Limit: limit},
				pkgapi.ProductFilter{Categoria: categoria, Search: search})
			if err != nil {
				return err
			}

			if len(products) == 0 {
				fmt.Fprintln(c.out, "No products found.")
				return nil
			}

			for _, p := range products {
				fmt.Fprintf(c.out, "%d\t%s\t%s (%s)\n", p.ID, p.Nome, p.Categoria, p.Unidade)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of products to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of products to return")
	cmd.Flags().StringVar(&categoria, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name")

	return cmd
}

func (c *Cli) newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			p, err := c.apiClient.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "ID:        %d\n", p.ID)
			fmt.Fprintf(c.out, "Name:      %s\n", p.Nome)
			fmt.Fprintf(c.out, "Category:  %s\n", p.Categoria)
			fmt.Fprintf(c.out, "Unit:      %s\n", p.Unidade)
			if p.Descricao != "" {
				fmt.Fprintf(c.out, "Notes:     %s\n", p.Descricao)
			}
			return nil
		},
	}
}

func (c *Cli) newProductsCreateCmd() *cobra.Command {
	var req pkgapi.ProductRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.apiClient.CreateProduct(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Product %q created with id %d\n", p.Nome, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Nome, "name", "", "Product name")
	cmd.Flags().StringVar(&req.Categoria, "category", "", "Product category")
	cmd.Flags().StringVar(&req.Unidade, "unit", "", "Unit of measure (kg, caixa, saca...)")
	cmd.Flags().StringVar(&req.Descricao, "notes", "", "Free-form description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func (c *Cli) newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if err := c.apiClient.DeleteProduct(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Product %d deleted\n", id)
			return nil
		},
	}
}
