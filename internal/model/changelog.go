package model

import "time"

// Change reasons recorded in the ledger.
const (
	ReasonProductAdded    = "product added"
	ReasonQuantityChanged = "quantity changed"
	ReasonProductDeleted  = "product deleted"
	ReasonInfoChanged     = "product info changed"
)

// StockChangeLogEntry is one immutable line of the change ledger. Name is
// captured at the moment of the change, not re-derived later, so entries
// stay meaningful after the product itself is deleted.
type StockChangeLogEntry struct {
	Time    time.Time `json:"Time"`
	Barcode string    `json:"Barcode"`
	Name    string    `json:"Name"`
	OldQty  int       `json:"OldQty"`
	NewQty  int       `json:"NewQty"`
	Reason  string    `json:"Reason"`
}

// ChangedQuantity is the canonical delta: positive means stock was added.
func (e *StockChangeLogEntry) ChangedQuantity() int {
	return e.NewQty - e.OldQty
}

// Consumed is the same delta seen from the consumption side.
func (e *StockChangeLogEntry) Consumed() int {
	return e.OldQty - e.NewQty
}
