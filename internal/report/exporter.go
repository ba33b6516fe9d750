package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock"
	"github.com/xuri/excelize/v2"
)

const (
	inventorySheet = "Current Inventory"
	historySheet   = "Change History"
	timeLayout     = "2006-01-02 15:04:05"
)

var (
	inventoryHeader = []interface{}{"Barcode", "Name", "Quantity", "DefaultReductionAmount", "AlertQuantity", "SafeQuantity"}
	historyHeader   = []interface{}{"Time", "Barcode", "Name", "OldQuantity", "NewQuantity", "ChangedQuantity", "Reason"}
)

// Exporter composes the product store and the change ledger into a single
// two-sheet workbook: the current inventory snapshot and the full history.
type Exporter struct {
	repo        stock.Repository
	log         stock.ChangeLog
	settings    *model.AutoSaveSettings
	fallbackDir string
}

func NewExporter(repo stock.Repository, log stock.ChangeLog, settings *model.AutoSaveSettings, fallbackDir string) *Exporter {
	if settings == nil {
		settings = &model.AutoSaveSettings{}
	}
	return &Exporter{
		repo:        repo,
		log:         log,
		settings:    settings,
		fallbackDir: fallbackDir,
	}
}

// Export writes the report to path. The file is written directly to the
// destination; on failure the caller is expected to surface the error.
func (e *Exporter) Export(ctx context.Context, path string) error {
	products, err := e.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read products for report: %w", err)
	}
	entries, err := e.log.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read change history for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(historySheet); err != nil {
		return err
	}

	if err := writeRow(f, inventorySheet, 1, inventoryHeader); err != nil {
		return err
	}
	for i, p := range products {
		values := []interface{}{p.Barcode, p.Name, p.Quantity, p.DefaultReductionAmount, p.AlertQuantity, p.SafeQuantity}
		if err := writeRow(f, inventorySheet, i+2, values); err != nil {
			return err
		}
	}

	if err := writeRow(f, historySheet, 1, historyHeader); err != nil {
		return err
	}
	for i, entry := range entries {
		values := []interface{}{
			entry.Time.Format(timeLayout), entry.Barcode, entry.Name,
			entry.OldQty, entry.NewQty, entry.ChangedQuantity(), entry.Reason,
		}
		if err := writeRow(f, historySheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ExportAutoSave writes a timestamped report into the directory resolved
// from the auto-save settings and returns its path.
func (e *Exporter) ExportAutoSave(ctx context.Context) (string, error) {
	dir := e.settings.EffectivePath(e.fallbackDir)
	name := fmt.Sprintf("stock-report_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := e.Export(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
