// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes extraction results to CSV and XLSX files that
// mirror each other row for row, and formats the end-of-run summary.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/tabledump/pkg/types"
)

// ErrWrite reports that an output file could not be written.
var ErrWrite = errors.New("write failed")

// sheetName is the single worksheet holding the rows in the XLSX output.
const sheetName = "Tables"

// XLSXPath derives the XLSX output path from the CSV path by swapping the
// extension, so both outputs share a base name.
func XLSXPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".xlsx"
}

// Records converts a result into output records: a header row naming the
// page column and synthetic column names sized to the widest row, then one
// record per extracted row. Ragged rows are right-padded with empty cells
// so every record has the same width.
func Records(result *types.ExtractionResult) [][]string {
	width := result.Width()

	header := make([]string, 0, width+1)
	header = append(header, "Page")
	for i := 1; i <= width; i++ {
		header = append(header, fmt.Sprintf("Column %d", i))
	}

	records := make([][]string, 0, len(result.Rows)+1)
	records = append(records, header)
	for _, row := range result.Rows {
		record := make([]string, width+1)
		record[0] = strconv.Itoa(row.Page)
		copy(record[1:], row.Cells)
		records = append(records, record)
	}
	return records
}

// WriteOutputs writes the CSV file at csvPath and its XLSX sibling, both
// holding the same records. Existing files are overwritten. A status line
// is printed to w for each file written.
func WriteOutputs(result *types.ExtractionResult, csvPath string, w io.Writer) error {
	records := Records(result)

	if err := writeCSV(csvPath, records); err != nil {
		return err
	}
	fmt.Fprintf(w, "csv saved: %s\n", csvPath)

	xlsxPath := XLSXPath(csvPath)
	if err := writeXLSX(xlsxPath, records); err != nil {
		return err
	}
	fmt.Fprintf(w, "xlsx saved: %s\n", xlsxPath)

	return nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func writeXLSX(path string, records [][]string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Debugf("closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("%w: naming sheet: %v", ErrWrite, err)
	}

	for r, record := range records {
		for c, value := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("%w: cell (%d,%d): %v", ErrWrite, r+1, c+1, err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("%w: cell %s: %v", ErrWrite, cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
