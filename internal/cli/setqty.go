package cli

import (
	"fmt"
	"strconv"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewSetQuantityCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-qty <barcode> <quantity>",
		Short: "Set a product's stock to an absolute quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			barcode := args[0]

			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}

			if err := uc.UpdateStock(ctx, barcode, quantity); err != nil {
				return err
			}

			p, err := uc.GetProductByBarcode(ctx, barcode)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no product with barcode %q", barcode)
			}
			return writeProduct(cmd.OutOrStdout(), p, opts.Format)
		},
	}
	return cmd
}
