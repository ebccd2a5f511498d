package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewInventoryCmd creates the `inventory` command
func NewInventoryCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"inventory",
		"Inspect lots and open bulk stock",
	)

	cmd.AddCommand(newLotsCmd())
	cmd.AddCommand(newOpenBulkCmd())
	return cmd
}

func newLotsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"lots <presentation-id>",
		"List available lot details for a presentation, oldest first",
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

		details, err := s.LotDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOT DETAIL\tRECEIVED\tBATCH\tAVAILABLE\tUNIT COST\tEXPIRES")
		for _, d := range details {
			expiry := ""
			if d.ExpiryDate != nil {
				expiry = d.ExpiryDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.ReceivedDate.Format("2006-01-02"), d.BatchNumber,
				d.QuantityAvailable.String(), d.UnitCost.StringFixed(2), expiry)
		}
		return w.Flush()
	}

	return cmd
}

func newOpenBulkCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"open-bulk",
		"Open packaged units into loose stock",
	)
	cmd.Long = `Opens packaged units from a specific lot detail into loose stock on the
bulk presentation. The stock movement itself happens server-side; this command
shows the resulting-units preview and submits the conversion.`

	cmd.Flags().String("lot-detail", "", "Source lot detail id")
	cmd.Flags().String("target", "", "Target (bulk) presentation id")
	cmd.Flags().String("quantity", "", "Packaged units to open")
	cmd.Flags().Int64("factor", 0, "Loose units yielded per packaged unit")
	_ = cmd.MarkFlagRequired("lot-detail")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("factor")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireRole(models.Role.CanManageInventory, "open bulk stock"); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		quantityStr, _ := cmd.Flags().GetString("quantity")
		quantity, err := decimal.NewFromString(quantityStr)
		if err != nil {
			return fmt.Errorf("invalid --quantity %q: %w", quantityStr, err)
		}

		lotDetail, _ := cmd.Flags().GetString("lot-detail")
		target, _ := cmd.Flags().GetString("target")
		factor, _ := cmd.Flags().GetInt64("factor")

		req := models.BulkConversionRequest{
			SourceLotDetailID:    lotDetail,
			TargetPresentationID: target,
			ConvertedQuantity:    quantity,
			UnitConversionFactor: factor,
		}
		fmt.Printf("Opening %s unit(s) at %d per unit -> %s loose units\n",
			quantity.String(), factor, req.TotalUnitsResulting().String())

		conv, err := s.OpenBulk(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Conversion %s registered\n", conv.ID)
		return nil
	}

	return cmd
}

// NewSuppliersCmd creates the `suppliers` command
func NewSuppliersCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"suppliers",
		"List registered suppliers",
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		suppliers, err := s.LoadSuppliers(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONTACT\tPHONE")
		for _, sup := range suppliers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sup.ID, sup.Name, sup.Contact, sup.Phone)
		}
		return w.Flush()
	}

	cmd.AddCommand(newSupplierAddCmd())
	return cmd
}

func newSupplierAddCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"add <name>",
		"Register a new supplier",
	)
	cmd.Args = cobra.ExactArgs(1)

	cmd.Flags().String("contact", "", "Contact person")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("phone", "", "Contact phone")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireRole(models.Role.CanManageUsers, "manage suppliers"); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		contact, _ := cmd.Flags().GetString("contact")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		created, err := s.CreateSupplier(cmd.Context(), models.Supplier{
			Name:    args[0],
			Contact: contact,
			Email:   email,
			Phone:   phone,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Supplier %s registered (%s)\n", created.Name, created.ID)
		return nil
	}

	return cmd
}
