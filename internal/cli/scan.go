package cli

import (
	"errors"
	"fmt"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

// NewScanCommand is the "scan and consume" flow: look up the barcode and
// reduce stock by the product's default reduction amount.
func NewScanCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <barcode>",
		Short: "Look up a barcode and consume the default reduction amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			barcode := args[0]

			p, err := uc.GetProductByBarcode(ctx, barcode)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "unknown barcode %q: register it with 'msm add'\n", barcode)
				return nil
			}

			updated, err := uc.ReduceStock(ctx, p.Barcode, p.DefaultReductionAmount)
			if err != nil {
				if errors.Is(err, stock.ErrInvalidReduction) {
					return fmt.Errorf("cannot reduce %q by %d: only %d in stock", p.Name, p.DefaultReductionAmount, p.Quantity)
				}
				return err
			}
			return writeProduct(cmd.OutOrStdout(), updated, opts.Format)
		},
	}
	return cmd
}
