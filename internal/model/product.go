package model

// StockStatus classifies a product's quantity against its thresholds.
type StockStatus string

const (
	StatusAlert   StockStatus = "Alert"
	StatusWarning StockStatus = "Warning"
	StatusSafe    StockStatus = "Safe"
)

// Product is the authoritative inventory record. Barcode is the unique,
// case-insensitive key and never changes once the product exists.
type Product struct {
	Barcode                string `json:"barcode"`
	Name                   string `json:"name"`
	Quantity               int    `json:"quantity"`
	ImagePath              string `json:"image_path,omitempty"`
	DefaultReductionAmount int    `json:"default_reduction_amount"`
	AlertQuantity          int    `json:"alert_quantity"`
	SafeQuantity           int    `json:"safe_quantity"`
}

func (p *Product) Status() StockStatus {
	if p.Quantity <= p.AlertQuantity {
		return StatusAlert
	}
	if p.Quantity < p.SafeQuantity {
		return StatusWarning
	}
	return StatusSafe
}
