package cli

import (
	"fmt"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Format string // "text" | "json"
}

var validFormats = []string{"text", "json"}

// NewRootCommand builds the msm command tree on top of the stock service.
func NewRootCommand(uc stock.UseCase) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "msm",
		Short: "MSM - small-business stock tracker",
		Long:  "Track product stock in a spreadsheet store with a permanent change ledger.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewListCommand(uc, opts))
	cmd.AddCommand(NewScanCommand(uc, opts))
	cmd.AddCommand(NewAddCommand(uc, opts))
	cmd.AddCommand(NewReduceCommand(uc, opts))
	cmd.AddCommand(NewSetQuantityCommand(uc, opts))
	cmd.AddCommand(NewDeleteCommand(uc, opts))
	cmd.AddCommand(NewHistoryCommand(uc, opts))
	cmd.AddCommand(NewExportCommand(uc, opts))
	cmd.AddCommand(NewAutoSaveCommand(uc, opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
