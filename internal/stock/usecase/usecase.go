package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/jinhoo5694/MSM/internal/stock/dto"
	"go.uber.org/zap"
)

type stockUseCase struct {
	mu       sync.Mutex
	repo     stock.Repository
	log      stock.ChangeLog
	exporter stock.ReportExporter
	notifier stock.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewStockUseCase wires the store, the change ledger and the exporter into
// the service the presentation layer consumes. notifier may be nil.
func NewStockUseCase(repo stock.Repository, log stock.ChangeLog, exporter stock.ReportExporter, notifier stock.Notifier, logger *zap.Logger) stock.UseCase {
	return &stockUseCase{
		repo:     repo,
		log:      log,
		exporter: exporter,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *stockUseCase) GetProductByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	return uc.repo.FindByBarcode(ctx, barcode)
}

func (uc *stockUseCase) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.GetAll(ctx)
}

func (uc *stockUseCase) SearchByName(ctx context.Context, query string) ([]model.Product, error) {
	products, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return products, nil
	}

	needle := strings.ToLower(query)
	var matched []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (uc *stockUseCase) AddProduct(ctx context.Context, p *model.Product) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.FindByBarcode(ctx, p.Barcode)
	if err != nil {
		return err
	}
	if existing != nil {
		return stock.ErrDuplicateBarcode
	}

	if err := uc.repo.Insert(ctx, p); err != nil {
		return err
	}
	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: p.Barcode,
		Name:    p.Name,
		OldQty:  0,
		NewQty:  p.Quantity,
		Reason:  model.ReasonProductAdded,
	})
	return nil
}

func (uc *stockUseCase) UpdateProduct(ctx context.Context, p *model.Product) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// The previous quantity must come from storage, not from the caller's
	// possibly stale copy.
	old, err := uc.repo.FindByBarcode(ctx, p.Barcode)
	if err != nil {
		return err
	}
	if old == nil {
		return nil
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return err
	}
	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: old.Barcode,
		Name:    p.Name,
		OldQty:  old.Quantity,
		NewQty:  p.Quantity,
		Reason:  model.ReasonInfoChanged,
	})
	return nil
}

func (uc *stockUseCase) UpdateStock(ctx context.Context, barcode string, quantity int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	old, err := uc.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if old == nil {
		return nil
	}

	if err := uc.repo.UpdateQuantity(ctx, old.Barcode, quantity); err != nil {
		return err
	}
	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: old.Barcode,
		Name:    old.Name,
		OldQty:  old.Quantity,
		NewQty:  quantity,
		Reason:  model.ReasonQuantityChanged,
	})
	return nil
}

func (uc *stockUseCase) ReduceStock(ctx context.Context, barcode string, amount int) (*model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, err := uc.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if amount <= 0 || amount > p.Quantity {
		return nil, stock.ErrInvalidReduction
	}

	newQty := p.Quantity - amount
	if err := uc.repo.UpdateQuantity(ctx, p.Barcode, newQty); err != nil {
		return nil, err
	}
	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: p.Barcode,
		Name:    p.Name,
		OldQty:  p.Quantity,
		NewQty:  newQty,
		Reason:  model.ReasonQuantityChanged,
	})

	p.Quantity = newQty
	return p, nil
}

func (uc *stockUseCase) DeleteProduct(ctx context.Context, barcode string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if strings.TrimSpace(barcode) == "" {
		return nil
	}

	// Name and quantity must be captured before the row disappears.
	old, err := uc.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if old == nil {
		return nil
	}

	if err := uc.repo.Delete(ctx, old.Barcode); err != nil {
		return err
	}
	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: old.Barcode,
		Name:    old.Name,
		OldQty:  old.Quantity,
		NewQty:  0,
		Reason:  model.ReasonProductDeleted,
	})
	return nil
}

func (uc *stockUseCase) RecordStockChange(ctx context.Context, input *dto.RecordChangeInput) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.recordAndNotify(ctx, &model.StockChangeLogEntry{
		Time:    uc.now(),
		Barcode: input.Barcode,
		Name:    input.Name,
		OldQty:  input.OldQty,
		NewQty:  input.NewQty,
		Reason:  input.Reason,
	})
	return nil
}

func (uc *stockUseCase) GetLogsByDateRange(ctx context.Context, filter *dto.HistoryFilter) ([]model.StockChangeLogEntry, error) {
	return uc.log.QueryByDateRange(ctx, filter.Start, filter.End)
}

func (uc *stockUseCase) ExportStockReport(ctx context.Context, path string) error {
	return uc.exporter.Export(ctx, path)
}

func (uc *stockUseCase) AutoSaveReport(ctx context.Context) (string, error) {
	return uc.exporter.ExportAutoSave(ctx)
}

// recordAndNotify appends the ledger entry and pings the observer. The store
// write already succeeded by the time this runs, so an append failure is
// logged and otherwise swallowed: the ledger is best effort, the store is
// authoritative.
func (uc *stockUseCase) recordAndNotify(ctx context.Context, entry *model.StockChangeLogEntry) {
	if err := uc.log.Append(ctx, entry); err != nil {
		uc.logger.Warn("failed to append change log entry",
			zap.String("barcode", entry.Barcode),
			zap.String("reason", entry.Reason),
			zap.Error(err),
		)
	}
	if uc.notifier != nil {
		uc.notifier.StockChanged(stock.NewChangeEvent(entry))
	}
}
