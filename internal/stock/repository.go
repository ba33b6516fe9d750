package stock

import (
	"context"

	"github.com/jinhoo5694/MSM/internal/model"
)

// Repository is the durable product table, one row per product keyed by
// barcode. Implementations persist every mutation before returning and hold
// no file handles between calls.
type Repository interface {
	// Init creates the store file with a header row if it does not exist.
	// A pre-existing file is left untouched.
	Init(ctx context.Context) error

	// Reads. Not-found is (nil, nil), never an error.
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	GetAll(ctx context.Context) ([]model.Product, error)

	// Row mutations. Insert does not check for a pre-existing barcode;
	// Update and Delete are silent no-ops when the barcode is absent.
	Insert(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	UpdateQuantity(ctx context.Context, barcode string, quantity int) error
	Delete(ctx context.Context, barcode string) error
	ReplaceAll(ctx context.Context, products []model.Product) error
}
