package dto

import "time"

type RecordChangeInput struct {
	Barcode string
	Name    string
	OldQty  int
	NewQty  int
	Reason  string
}

type HistoryFilter struct {
	Start time.Time
	End   time.Time
}
