// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tabledump pipeline:
// extracted table rows, detection profiles, run history records, and
// configuration blocks shared between the CLI and the internal stages.
package types

// ExtractedRow is a single table row lifted out of a PDF page, tagged with
// the 1-based page number it came from.
type ExtractedRow struct {
	// Page is the 1-based page number the row was found on.
	Page int `json:"page" yaml:"page"`

	// Cells holds the row's cell texts in left-to-right column order.
	Cells []string `json:"cells" yaml:"cells"`
}

// ExtractionResult collects everything a full document scan produced.
type ExtractionResult struct {
	// Rows holds all extracted rows ordered by page, then by table
	// within the page, then by row within the table.
	Rows []ExtractedRow `json:"rows" yaml:"rows"`

	// PagesScanned is the number of pages the scan visited.
	PagesScanned int `json:"pages_scanned" yaml:"pages_scanned"`

	// TablesFound is the number of tables that contributed at least one row.
	TablesFound int `json:"tables_found" yaml:"tables_found"`
}

// RowsExtracted returns the total number of rows in the result.
func (r *ExtractionResult) RowsExtracted() int {
	return len(r.Rows)
}

// Width returns the widest row's cell count, used to size output headers.
func (r *ExtractionResult) Width() int {
	max := 0
	for _, row := range r.Rows {
		if len(row.Cells) > max {
			max = len(row.Cells)
		}
	}
	return max
}

// Empty reports whether the scan produced no rows at all.
func (r *ExtractionResult) Empty() bool {
	return len(r.Rows) == 0
}
