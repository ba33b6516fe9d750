package stock

import (
	"context"
	"errors"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock/dto"
)

var (
	ErrDuplicateBarcode = errors.New("barcode already exists")
	ErrInvalidReduction = errors.New("reduction amount must be positive and not exceed current stock")
)

// UseCase is the single entry point the presentation layer talks to. Every
// state-changing call writes the store first and then appends to the change
// ledger; a failed ledger append never rolls back the store write.
type UseCase interface {
	GetProductByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, query string) ([]model.Product, error)

	AddProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	UpdateStock(ctx context.Context, barcode string, quantity int) error
	ReduceStock(ctx context.Context, barcode string, amount int) (*model.Product, error)
	DeleteProduct(ctx context.Context, barcode string) error

	// RecordStockChange appends a ledger entry without touching the store,
	// for callers that already know both quantities.
	RecordStockChange(ctx context.Context, input *dto.RecordChangeInput) error
	GetLogsByDateRange(ctx context.Context, filter *dto.HistoryFilter) ([]model.StockChangeLogEntry, error)

	ExportStockReport(ctx context.Context, path string) error
	AutoSaveReport(ctx context.Context) (string, error)
}
