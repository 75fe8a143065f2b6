package domain

import "context"

// ExportFormat selects the export serialization.
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"  // pretty-printed record array
	FormatCSV   ExportFormat = "csv"   // BOM-prefixed, fully quoted, 30 columns
	FormatExcel ExportFormat = "excel" // legacy HTML table, .xls
	FormatXLSX  ExportFormat = "xlsx"  // real workbook
	FormatPDF   ExportFormat = "pdf"   // print-ready HTML document
)

func (f ExportFormat) Valid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatExcel, FormatXLSX, FormatPDF:
		return true
	}
	return false
}

// ExportPayload is a serialized record set ready to hand to the caller.
type ExportPayload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUsecase turns a filtered record set into a downloadable payload.
// Stem is the caller-supplied filename stem, without extension.
type ExportUsecase interface {
	Export(ctx context.Context, filter CandidateFilter, format ExportFormat, stem string) (*ExportPayload, error)
}
