package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addDateRangeFlags registers the shared start/end filter flags.
func addDateRangeFlags(flags *pflag.FlagSet) {
	flags.String("start", "", "Only sales on or after this date (YYYY-MM-DD)")
	flags.String("end", "", "Only sales on or before this date (YYYY-MM-DD)")
}

func parseDateRange(cmd *cobra.Command) (models.SalesFilter, error) {
	var filter models.SalesFilter

	if start, _ := cmd.Flags().GetString("start"); start != "" {
		ts, err := time.Parse("2006-01-02", start)
		if err != nil {
			return filter, fmt.Errorf("invalid --start date %q: %w", start, err)
		}
		filter.StartDate = &ts
	}
	if end, _ := cmd.Flags().GetString("end"); end != "" {
		ts, err := time.Parse("2006-01-02", end)
		if err != nil {
			return filter, fmt.Errorf("invalid --end date %q: %w", end, err)
		}
		filter.EndDate = &ts
	}
	return filter, nil
}

// NewSalesCmd creates the `sales` command
func NewSalesCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"sales",
		"Browse sales history",
	)

	addDateRangeFlags(cmd.Flags())
	cmd.Flags().Int("pages", 1, "Number of pages to fetch")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		filter, err := parseDateRange(cmd)
		if err != nil {
			return err
		}

		if err := s.LoadSalesHistory(cmd.Context(), filter); err != nil {
			return err
		}
		pages, _ := cmd.Flags().GetInt("pages")
		for page := 1; page < pages && s.HasMoreSales(); page++ {
			if err := s.LoadMoreSales(cmd.Context()); err != nil {
				return err
			}
		}

		sales := s.Sales()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(sales, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal sales: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSTATUS\tTOTAL\tREFUNDED\tNET")
		for _, sale := range sales {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				sale.ID, sale.CreatedAt.Format("2006-01-02 15:04"), sale.Status,
				sale.Total.StringFixed(2), sale.TotalRefunded.StringFixed(2),
				sale.TotalNet.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if s.HasMoreSales() {
			fmt.Println("(more pages available, use --pages)")
		}
		return nil
	}

	cmd.AddCommand(newSaleShowCmd())
	cmd.AddCommand(newSaleStatusCmd())
	return cmd
}

func newSaleStatusCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"status <sale-id> <pending|completed|cancelled>",
		"Update a sale's status",
	)
	cmd.Args = cobra.ExactArgs(2)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireRole(models.Role.CanManageInventory, "update sale statuses"); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		status := models.SaleStatus(args[1])
		switch status {
		case models.SaleStatusPending, models.SaleStatusCompleted, models.SaleStatusCancelled:
		default:
			return fmt.Errorf("unknown status %q", args[1])
		}

		sale, err := s.UpdateSaleStatus(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}

		fmt.Printf("Sale %s is now %s\n", sale.ID, sale.Status)
		return nil
	}

	return cmd
}

func newSaleShowCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"show <sale-id>",
		"Show one sale with its detail lines",
	)
	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		sale, err := s.SaleDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(sale, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal sale: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Sale %s  status=%s  total=%s  refunded=%s  net=%s\n\n",
			sale.ID, sale.Status, sale.Total.StringFixed(2),
			sale.TotalRefunded.StringFixed(2), sale.TotalNet.StringFixed(2))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LINE\tPRESENTATION\tQTY\tUNIT PRICE\tSUBTOTAL\tRETURNABLE")
		for _, line := range sale.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				line.ID, line.PresentationName, line.Quantity.String(),
				line.UnitPrice.StringFixed(2), line.Subtotal.StringFixed(2),
				line.QuantityNet.String())
		}
		return w.Flush()
	}

	return cmd
}
