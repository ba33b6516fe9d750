package cli

import (
	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewListCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				products []model.Product
				err      error
			)
			if name != "" {
				products, err = uc.SearchByName(ctx, name)
			} else {
				products, err = uc.GetAllProducts(ctx)
			}
			if err != nil {
				return err
			}
			return writeProducts(cmd.OutOrStdout(), products, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "case-insensitive substring filter on product name")
	return cmd
}
