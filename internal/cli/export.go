package cli

import (
	"fmt"
	"time"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

func NewExportCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the stock report (inventory snapshot + full change history)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := fmt.Sprintf("stock-report_%s.xlsx", time.Now().Format("20060102_1504"))
			if len(args) == 1 {
				path = args[0]
			}

			if err := uc.ExportStockReport(ctx, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
			return nil
		},
	}
	return cmd
}

func NewAutoSaveCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosave",
		Short: "Write the stock report to the configured auto-save directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := uc.AutoSaveReport(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report auto-saved to %s\n", path)
			return nil
		},
	}
	return cmd
}
