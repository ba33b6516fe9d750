package cli

import (
	"fmt"
	"time"

	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/jinhoo5694/MSM/internal/stock/dto"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func NewHistoryCommand(uc stock.UseCase, opts *RootOptions) *cobra.Command {
	var startStr, endStr string
	var today bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show change history within a date range",
		Long:  "Show ledger entries within a date range. Defaults to the start of the current month through today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
			end := now
			if today {
				start = now
			}

			var err error
			if startStr != "" {
				start, err = time.ParseInLocation(dateLayout, startStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", startStr, err)
				}
			}
			if endStr != "" {
				end, err = time.ParseInLocation(dateLayout, endStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", endStr, err)
				}
			}

			entries, err := uc.GetLogsByDateRange(ctx, &dto.HistoryFilter{Start: start, End: end})
			if err != nil {
				return err
			}
			return writeHistory(cmd.OutOrStdout(), entries, opts.Format)
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "only today's entries")
	return cmd
}
