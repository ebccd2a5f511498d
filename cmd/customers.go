package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/spf13/cobra"
)

// NewCustomersCmd creates the `customers` command
func NewCustomersCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"customers",
		"List registered customers",
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		customers, err := s.LoadCustomers(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDOCUMENT\tPHONE")
		for _, c := range customers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Document, c.Phone)
		}
		return w.Flush()
	}

	cmd.AddCommand(newCustomerAddCmd())
	return cmd
}

func newCustomerAddCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"add <name>",
		"Register a new customer",
	)
	cmd.Args = cobra.ExactArgs(1)

	cmd.Flags().String("document", "", "Identity document number")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("phone", "", "Contact phone")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireRole(models.Role.CanManageInventory, "register customers"); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		document, _ := cmd.Flags().GetString("document")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		created, err := s.CreateCustomer(cmd.Context(), models.Customer{
			Name:     args[0],
			Document: document,
			Email:    email,
			Phone:    phone,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Customer %s registered (%s)\n", created.Name, created.ID)
		return nil
	}

	return cmd
}
