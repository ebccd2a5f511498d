package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/spf13/cobra"
)

// NewProductsCmd creates the `products` command
func NewProductsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"products",
		"Browse the product catalog",
	)

	cmd.Flags().String("category", "", "Only list products in this category id")
	cmd.Flags().String("search", "", "Filter the fetched page by substring (name, SKU, presentation)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		categoryID, _ := cmd.Flags().GetString("category")
		if categoryID != "" {
			err = s.LoadProductsByCategory(cmd.Context(), categoryID)
		} else {
			err = s.LoadAllProducts(cmd.Context())
		}
		if err != nil {
			return err
		}

		products := s.Products()
		if query, _ := cmd.Flags().GetString("search"); query != "" {
			products = s.SearchProducts(query)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(products, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal products: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printProducts(products)
		return nil
	}

	cmd.AddCommand(newCategoriesCmd())
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"categories",
		"List catalog categories",
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		categories, err := s.LoadCategories(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		return w.Flush()
	}

	return cmd
}

func printProducts(products []models.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESENTATION\tPRODUCT\tSKU\tPRICE\tSTOCK\tBULK")
	for _, p := range products {
		for _, pres := range p.Presentations {
			bulk := ""
			if pres.IsBulk() {
				bulk = "granel"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				pres.PresentationName, p.Name, pres.SKU,
				pres.Price.StringFixed(2), pres.TotalStock().String(), bulk)
		}
	}
	_ = w.Flush()
}
