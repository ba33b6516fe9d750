package changelog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jinhoo5694/MSM/internal/model"
)

// Log is the append-only JSON-lines ledger of stock changes, one entry per
// line. Lines that fail to parse are skipped on read so a torn write never
// poisons the rest of the history.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Append(ctx context.Context, entry *model.StockChangeLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open change log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append to change log: %w", err)
	}
	return nil
}

func (l *Log) LoadAll(ctx context.Context) ([]model.StockChangeLogEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open change log: %w", err)
	}
	defer f.Close()

	var entries []model.StockChangeLogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry model.StockChangeLogEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue // malformed line
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read change log: %w", err)
	}
	return entries, nil
}

// QueryByDateRange returns entries whose calendar date falls within
// [start, end]. Both bounds are inclusive and compared date-only; results
// come back newest first.
func (l *Log) QueryByDateRange(ctx context.Context, start, end time.Time) ([]model.StockChangeLogEntry, error) {
	entries, err := l.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	from := truncateToDate(start)
	to := truncateToDate(end)

	var filtered []model.StockChangeLogEntry
	for _, e := range entries {
		day := truncateToDate(e.Time)
		if day.Before(from) || day.After(to) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Time.After(filtered[j].Time)
	})
	return filtered, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
