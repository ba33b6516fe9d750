package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinhoo5694/MSM/internal/model"
	"go.uber.org/zap"
)

// ChangeEvent describes a committed mutation, handed to the Notifier after
// the store write and the ledger append attempt have both happened.
type ChangeEvent struct {
	ID      string    `json:"id"`
	Reason  string    `json:"reason"`
	Barcode string    `json:"barcode"`
	Name    string    `json:"name"`
	OldQty  int       `json:"old_qty"`
	NewQty  int       `json:"new_qty"`
	At      time.Time `json:"at"`
}

func NewChangeEvent(entry *model.StockChangeLogEntry) ChangeEvent {
	return ChangeEvent{
		ID:      uuid.New().String(),
		Reason:  entry.Reason,
		Barcode: entry.Barcode,
		Name:    entry.Name,
		OldQty:  entry.OldQty,
		NewQty:  entry.NewQty,
		At:      entry.Time,
	}
}

// Notifier receives refresh signals for the presentation layer.
// Implementations must not call back into the UseCase from StockChanged.
type Notifier interface {
	StockChanged(event ChangeEvent)
}

// LoggingNotifier writes change events to the application log. It stands in
// for an interactive view when the tool runs headless.
type LoggingNotifier struct {
	Logger *zap.Logger
}

func (n *LoggingNotifier) StockChanged(event ChangeEvent) {
	n.Logger.Info("stock changed",
		zap.String("event_id", event.ID),
		zap.String("barcode", event.Barcode),
		zap.String("reason", event.Reason),
		zap.Int("old_qty", event.OldQty),
		zap.Int("new_qty", event.NewQty),
	)
}
