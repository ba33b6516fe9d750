package cli

import (
	"errors"
	"fmt"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewAddCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	p := model.Product{DefaultReductionAmount: 1}

	cmd := &cobra.Command{
		Use:   "add <barcode>",
		Short: "Register a new product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p.Barcode = args[0]

			if err := uc.AddProduct(ctx, &p); err != nil {
				if errors.Is(err, stock.ErrDuplicateBarcode) {
					return fmt.Errorf("barcode %q is already registered", p.Barcode)
				}
				return err
			}
			return writeProduct(cmd.OutOrStdout(), &p, opts.Format)
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "product name")
	cmd.Flags().IntVar(&p.Quantity, "quantity", 0, "initial stock quantity")
	cmd.Flags().StringVar(&p.ImagePath, "image", "", "path to a product image")
	cmd.Flags().IntVar(&p.DefaultReductionAmount, "default-reduction", 1, "amount consumed per scan")
	cmd.Flags().IntVar(&p.AlertQuantity, "alert", 0, "alert threshold")
	cmd.Flags().IntVar(&p.SafeQuantity, "safe", 0, "safe threshold")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
