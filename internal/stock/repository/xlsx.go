package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Products"

// Column order of the product worksheet. Row 1 is always this header.
var header = []string{
	"Barcode", "Name", "Quantity", "DefaultReductionAmount",
	"ImagePath", "AlertQuantity", "SafeQuantity",
}

// XLSXRepository stores products in a single worksheet, one row per product.
// The workbook is opened and closed inside each call so backup jobs and
// external tools can read the file between operations.
type XLSXRepository struct {
	path string
}

func NewXLSXRepository(path string) *XLSXRepository {
	return &XLSXRepository{path: path}
}

func (r *XLSXRepository) Init(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat store file: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := writeRow(f, 1, headerValues()); err != nil {
		return err
	}
	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to create store file: %w", err)
	}
	return nil
}

func (r *XLSXRepository) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		// A missing worksheet reads as not-found.
		return nil, nil
	}
	for i := 1; i < len(rows); i++ {
		if strings.EqualFold(cellAt(rows[i], 0), barcode) {
			p := productFromRow(rows[i])
			return &p, nil
		}
	}
	return nil, nil
}

func (r *XLSXRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil
	}

	var products []model.Product
	for i := 1; i < len(rows); i++ {
		if cellAt(rows[i], 0) == "" {
			continue // hole left by an earlier deletion
		}
		products = append(products, productFromRow(rows[i]))
	}
	return products, nil
}

func (r *XLSXRepository) Insert(ctx context.Context, p *model.Product) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read worksheet: %w", err)
	}
	row := len(rows) + 1
	if row < 2 {
		row = 2
	}
	if err := writeRow(f, row, productValues(p)); err != nil {
		return err
	}
	return save(f)
}

func (r *XLSXRepository) Update(ctx context.Context, p *model.Product) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	row := findRow(f, p.Barcode)
	if row == 0 {
		return nil
	}

	// Everything except the barcode cell is overwritten.
	cell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return err
	}
	values := []interface{}{p.Name, p.Quantity, p.DefaultReductionAmount, p.ImagePath, p.AlertQuantity, p.SafeQuantity}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return err
	}
	return save(f)
}

func (r *XLSXRepository) UpdateQuantity(ctx context.Context, barcode string, quantity int) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	row := findRow(f, barcode)
	if row == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(3, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, quantity); err != nil {
		return err
	}
	return save(f)
}

func (r *XLSXRepository) Delete(ctx context.Context, barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return nil
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	row := findRow(f, barcode)
	if row == 0 {
		return nil
	}
	if err := f.RemoveRow(sheetName, row); err != nil {
		return fmt.Errorf("failed to remove row: %w", err)
	}
	return save(f)
}

func (r *XLSXRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read worksheet: %w", err)
	}
	for i := len(rows); i >= 2; i-- {
		if err := f.RemoveRow(sheetName, i); err != nil {
			return fmt.Errorf("failed to clear row %d: %w", i, err)
		}
	}
	for i := range products {
		if err := writeRow(f, i+2, productValues(&products[i])); err != nil {
			return err
		}
	}
	return save(f)
}

// findRow returns the 1-based worksheet row of the first barcode match, or 0.
func findRow(f *excelize.File, barcode string) int {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0
	}
	for i := 1; i < len(rows); i++ {
		if strings.EqualFold(cellAt(rows[i], 0), barcode) {
			return i + 1
		}
	}
	return 0
}

func save(f *excelize.File) error {
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save store file: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func headerValues() []interface{} {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	return values
}

func productValues(p *model.Product) []interface{} {
	return []interface{}{
		p.Barcode, p.Name, p.Quantity, p.DefaultReductionAmount,
		p.ImagePath, p.AlertQuantity, p.SafeQuantity,
	}
}

// GetRows trims trailing empty cells, so a row may be shorter than the header.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func intAt(row []string, idx, fallback int) int {
	v, err := strconv.Atoi(cellAt(row, idx))
	if err != nil {
		return fallback
	}
	return v
}

func productFromRow(row []string) model.Product {
	return model.Product{
		Barcode:                cellAt(row, 0),
		Name:                   cellAt(row, 1),
		Quantity:               intAt(row, 2, 0),
		DefaultReductionAmount: intAt(row, 3, 1),
		ImagePath:              cellAt(row, 4),
		AlertQuantity:          intAt(row, 5, 0),
		SafeQuantity:           intAt(row, 6, 0),
	}
}
