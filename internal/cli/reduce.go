package cli

import (
	"errors"
	"fmt"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewReduceCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "reduce <barcode>",
		Short: "Reduce stock by a given amount (default: the product's default reduction)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			barcode := args[0]

			p, err := uc.GetProductByBarcode(ctx, barcode)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no product with barcode %q", barcode)
			}

			if amount == 0 {
				amount = p.DefaultReductionAmount
			}
			updated, err := uc.ReduceStock(ctx, p.Barcode, amount)
			if err != nil {
				if errors.Is(err, stock.ErrInvalidReduction) {
					return fmt.Errorf("cannot reduce %q by %d: only %d in stock", p.Name, amount, p.Quantity)
				}
				return err
			}
			return writeProduct(cmd.OutOrStdout(), updated, opts.Format)
		},
	}

	cmd.Flags().IntVarP(&amount, "amount", "a", 0, "amount to consume (0 uses the product default)")
	return cmd
}
