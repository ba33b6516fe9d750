package stock

import (
	"context"
	"time"

	"github.com/jinhoo5694/MSM/internal/model"
)

// ChangeLog is the append-only audit ledger. Entries are never modified or
// deleted; the ledger outlives the products it describes.
type ChangeLog interface {
	Append(ctx context.Context, entry *model.StockChangeLogEntry) error

	// LoadAll returns every parseable entry in file order. Malformed lines
	// are skipped; a missing file reads as empty.
	LoadAll(ctx context.Context) ([]model.StockChangeLogEntry, error)

	// QueryByDateRange filters by calendar date, both bounds inclusive and
	// time-of-day ignored, newest first.
	QueryByDateRange(ctx context.Context, start, end time.Time) ([]model.StockChangeLogEntry, error)
}
