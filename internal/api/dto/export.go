package dto

// ReportTable is the flat export contract. Every report export renders
// to headers plus stringified rows so downstream sinks (CSV download,
// spreadsheet import) stay format-agnostic.
type ReportTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ExportReportRequest selects which report to export and its window.
type ExportReportRequest struct {
	DateRangeRequest
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
}
