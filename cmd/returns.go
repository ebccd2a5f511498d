package cmd

import (
	"fmt"
	"strings"

	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewReturnsCmd creates the `returns` command
func NewReturnsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"returns",
		"Register and manage returns",
	)

	cmd.AddCommand(newReturnCreateCmd())
	cmd.AddCommand(newReturnStatusCmd())
	return cmd
}

func newReturnCreateCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"create <sale-id>",
		"Create a return against a sale",
	)
	cmd.Long = `Registers a reversal request against specific lines of a sale.
Each --item takes the form <sale-detail-id>:<quantity>[:<condition>] where
condition is one of good, damaged, expired (default good). Quantities are
bounded by each line's remaining returnable quantity.`
	cmd.Args = cobra.ExactArgs(1)

	cmd.Flags().StringSlice("item", nil, "Line to return, as <detail-id>:<qty>[:<condition>] (repeatable)")
	cmd.Flags().String("reason", "", "Reason for the return")
	cmd.Flags().String("notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("reason")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		saleID := args[0]
		sale, err := s.SaleDetails(cmd.Context(), saleID)
		if err != nil {
			return err
		}

		itemSpecs, _ := cmd.Flags().GetStringSlice("item")
		items := make([]models.ReturnItem, 0, len(itemSpecs))
		for _, spec := range itemSpecs {
			item, err := parseReturnItem(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		reason, _ := cmd.Flags().GetString("reason")
		notes, _ := cmd.Flags().GetString("notes")

		ret, err := s.CreateReturn(cmd.Context(), sale, models.CreateReturnRequest{
			SaleID: saleID,
			Reason: reason,
			Notes:  notes,
			Items:  items,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Return %s created (status %s)\n", ret.ID, ret.Status)
		return nil
	}

	return cmd
}

func newReturnStatusCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"status <return-id> <pending|approved|rejected>",
		"Update a return's status",
	)
	cmd.Args = cobra.ExactArgs(2)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		s, _, err := newStore(cmd)
		if err != nil {
			return err
		}

		status := models.ReturnStatus(args[1])
		switch status {
		case models.ReturnStatusPending, models.ReturnStatusApproved, models.ReturnStatusRejected:
		default:
			return fmt.Errorf("unknown status %q", args[1])
		}

		ret, err := s.UpdateReturnStatus(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}

		fmt.Printf("Return %s is now %s\n", ret.ID, ret.Status)
		return nil
	}

	return cmd
}

// parseReturnItem parses "<detail-id>:<qty>[:<condition>]".
func parseReturnItem(spec string) (models.ReturnItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return models.ReturnItem{}, fmt.Errorf("invalid --item %q, expected <detail-id>:<qty>[:<condition>]", spec)
	}

	quantity, err := decimal.NewFromString(parts[1])
	if err != nil {
		return models.ReturnItem{}, fmt.Errorf("invalid quantity in --item %q: %w", spec, err)
	}

	condition := models.ConditionGood
	if len(parts) == 3 {
		condition = models.ItemCondition(parts[2])
		switch condition {
		case models.ConditionGood, models.ConditionDamaged, models.ConditionExpired:
		default:
			return models.ReturnItem{}, fmt.Errorf("unknown condition %q in --item %q", parts[2], spec)
		}
	}

	return models.ReturnItem{
		SaleDetailID:     parts[0],
		QuantityReturned: quantity,
		Condition:        condition,
	}, nil
}
