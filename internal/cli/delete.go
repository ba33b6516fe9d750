package cli

import (
	"fmt"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewDeleteCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <barcode>",
		Short: "Delete a product (its ledger entries remain)",
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

			if err := uc.DeleteProduct(ctx, p.Barcode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (%s)\n", p.Name, p.Barcode)
			return nil
		},
	}
	return cmd
}
