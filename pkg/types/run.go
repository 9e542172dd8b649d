// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus records whether an extraction run completed.
type RunStatus string

const (
	RunOK     RunStatus = "ok"
	RunFailed RunStatus = "failed"
)

// RunRecord is one entry in the local run history ledger.
type RunRecord struct {
	// ID is the ledger row identifier, assigned on insert.
	ID int64 `json:"id" yaml:"id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// PDFPath is the input document path as given on the command line.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// Profile is the detection profile the run used.
	Profile string `json:"profile" yaml:"profile"`

	// Pages is the number of pages scanned.
	Pages int `json:"pages" yaml:"pages"`

	// Tables is the number of tables found.
	Tables int `json:"tables" yaml:"tables"`

	// Rows is the number of rows extracted.
	Rows int `json:"rows" yaml:"rows"`

	// CSVPath is the CSV output path, empty if the run failed before writing.
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`

	// XLSXPath is the XLSX output path, empty if the run failed before writing.
	XLSXPath string `json:"xlsx_path,omitempty" yaml:"xlsx_path,omitempty"`

	// Status is "ok" or "failed".
	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the failure message for failed runs.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
