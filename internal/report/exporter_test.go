package report

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jinhoo5694/MSM/internal/model"
	"github.com/jinhoo5694/MSM/internal/stock/changelog"
	"github.com/jinhoo5694/MSM/internal/stock/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newSeededExporter(t *testing.T, settings *model.AutoSaveSettings, fallbackDir string) *Exporter {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	repo := repository.NewXLSXRepository(filepath.Join(dir, "stock.xlsx"))
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Insert(ctx, &model.Product{
		Barcode: "111", Name: "Cola", Quantity: 12, DefaultReductionAmount: 1,
		AlertQuantity: 3, SafeQuantity: 10,
	}))
	require.NoError(t, repo.Insert(ctx, &model.Product{
		Barcode: "222", Name: "Cider", Quantity: 2, DefaultReductionAmount: 1,
		AlertQuantity: 3, SafeQuantity: 10,
	}))

	log := changelog.New(filepath.Join(dir, "ledger.txt"))
	ts := time.Date(2024, 5, 10, 14, 30, 5, 0, time.Local)
	require.NoError(t, log.Append(ctx, &model.StockChangeLogEntry{
		Time: ts, Barcode: "111", Name: "Cola", OldQty: 0, NewQty: 12,
		Reason: model.ReasonProductAdded,
	}))
	require.NoError(t, log.Append(ctx, &model.StockChangeLogEntry{
		Time: ts.Add(time.Hour), Barcode: "222", Name: "Cider", OldQty: 5, NewQty: 2,
		Reason: model.ReasonQuantityChanged,
	}))
	// A few more mutations, including one for a product that no longer exists.
	require.NoError(t, log.Append(ctx, &model.StockChangeLogEntry{
		Time: ts.Add(2 * time.Hour), Barcode: "111", Name: "Cola", OldQty: 12, NewQty: 9,
		Reason: model.ReasonQuantityChanged,
	}))
	require.NoError(t, log.Append(ctx, &model.StockChangeLogEntry{
		Time: ts.Add(3 * time.Hour), Barcode: "333", Name: "Water", OldQty: 4, NewQty: 0,
		Reason: model.ReasonProductDeleted,
	}))
	require.NoError(t, log.Append(ctx, &model.StockChangeLogEntry{
		Time: ts.Add(4 * time.Hour), Barcode: "111", Name: "Cola", OldQty: 9, NewQty: 12,
		Reason: model.ReasonQuantityChanged,
	}))

	return NewExporter(repo, log, settings, fallbackDir)
}

func TestExport_WritesBothSheets(t *testing.T) {
	e := newSeededExporter(t, nil, t.TempDir())
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, e.Export(context.Background(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	inventory, err := f.GetRows(inventorySheet)
	require.NoError(t, err)
	require.Len(t, inventory, 3) // header + two products
	assert.Equal(t, "Barcode", inventory[0][0])
	assert.Equal(t, []string{"111", "Cola", "12", "1", "3", "10"}, inventory[1])

	history, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, history, 6) // header + every entry ever, including deleted products
	assert.Equal(t, "Reason", history[0][6])
	assert.Equal(t, "2024-05-10 14:30:05", history[1][0])
	assert.Equal(t, "12", history[1][5]) // changed = new - old
	assert.Equal(t, "-3", history[2][5])
	assert.Equal(t, model.ReasonQuantityChanged, history[2][6])
	assert.Equal(t, "Water", history[4][2]) // deleted product still reported
	assert.Equal(t, "-4", history[4][5])
}

func TestExport_EmptyStoreStillProducesHeaders(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := repository.NewXLSXRepository(filepath.Join(dir, "stock.xlsx"))
	require.NoError(t, repo.Init(ctx))
	log := changelog.New(filepath.Join(dir, "ledger.txt"))

	e := NewExporter(repo, log, nil, dir)
	path := filepath.Join(dir, "report.xlsx")
	require.NoError(t, e.Export(ctx, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	inventory, err := f.GetRows(inventorySheet)
	require.NoError(t, err)
	assert.Len(t, inventory, 1)
	history, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestExport_UnwritablePathFails(t *testing.T) {
	e := newSeededExporter(t, nil, t.TempDir())

	err := e.Export(context.Background(), filepath.Join(t.TempDir(), "no-such-dir", "report.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}

func TestExportAutoSave_PrefersPrimaryDirectory(t *testing.T) {
	primary := t.TempDir()
	settings := &model.AutoSaveSettings{PrimaryPath: primary, SecondaryPath: t.TempDir()}
	e := newSeededExporter(t, settings, t.TempDir())

	path, err := e.ExportAutoSave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, primary, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "stock-report_"))
	assert.True(t, strings.HasSuffix(path, ".xlsx"))
}

func TestExportAutoSave_UsesFallbackWhenUnconfigured(t *testing.T) {
	fallback := filepath.Join(t.TempDir(), "autosave")
	e := newSeededExporter(t, nil, fallback)

	path, err := e.ExportAutoSave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fallback, filepath.Dir(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
