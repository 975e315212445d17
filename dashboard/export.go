package dashboard

import (
	"context"

	"github.com/pkg/errors"

	errs "github.com/fintrack/go-finance-client/internal/errors"
)

// ExportFormat selects the transaction export rendering.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

const (
	exportCSVPath = "/api/export-transactions/"
	exportPDFPath = "/api/export-transactions-pdf/"
)

// ExportResult is the raw export payload handed to the caller for saving.
type ExportResult struct {
	Filename string
	Data     []byte
}

// Export fetches the user's transactions in the requested format. Failures
// are returned for a transient notification and never touch the snapshot.
func (o *Orchestrator) Export(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	access, err := o.access()
	if err != nil {
		return nil, err
	}

	var path, fallbackName string
	switch format {
	case ExportCSV:
		path, fallbackName = exportCSVPath, "transactions.csv"
	case ExportPDF:
		path, fallbackName = exportPDFPath, "transactions.pdf"
	default:
		return nil, errors.Errorf("[Orchestrator.Export] unsupported format %q", format)
	}

	data, filename, err := o.client.GetRaw(ctx, access, path)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			o.sessions.Logout()
		}
		return nil, errs.Wrapf(err, "export %s", format)
	}
	if filename == "" {
		filename = fallbackName
	}
	return &ExportResult{Filename: filename, Data: data}, nil
}
