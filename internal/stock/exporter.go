package stock

import "context"

// ReportExporter produces the consolidated stock report artifact.
type ReportExporter interface {
	// Export writes the two-sheet report to path.
	Export(ctx context.Context, path string) error

	// ExportAutoSave writes the report into the configured auto-save
	// directory and returns the resulting file path.
	ExportAutoSave(ctx context.Context) (string, error)
}
