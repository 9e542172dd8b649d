// Package extract walks a document page by page and collects every
// detected table row tagged with the page it came from. Detection itself
// is delegated to the tabula geometric detector.
package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/tabula/model"

	"github.com/pdiddy/tabledump/pkg/types"
)

// ErrNoTables reports that a completed scan produced no rows at all.
var ErrNoTables = errors.New("no tables found")

// PageSource hands out document pages ready for detection. Implemented by
// document.Document; tests supply fakes.
type PageSource interface {
	PageCount() int
	Page(i int) (*model.Page, error)
}

// TableDetector finds tables on a single page. Satisfied by the tabula
// geometric detector.
type TableDetector interface {
	Detect(page *model.Page) ([]*model.Table, error)
}

// ExtractAll scans every page of src in order and collects all table rows.
// Row order is stable: pages in document order, tables in detection order
// within a page, rows in table order. Tables without rows are dropped and
// do not count as found. A scan that finishes with no rows returns
// ErrNoTables. Progress is drawn to w while the scan runs.
func ExtractAll(src PageSource, det TableDetector, w io.Writer) (*types.ExtractionResult, error) {
	total := src.PageCount()
	result := &types.ExtractionResult{PagesScanned: total}

	prog := newProgress(w, total)
	prog.start()

	for i := 0; i < total; i++ {
		page, err := src.Page(i)
		if err != nil {
			prog.abort()
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}

		found, err := det.Detect(page)
		if err != nil {
			prog.abort()
			return nil, fmt.Errorf("detecting tables on page %d: %w", i+1, err)
		}

		for _, table := range found {
			rows := tableRows(i+1, table)
			if len(rows) == 0 {
				continue
			}
			result.Rows = append(result.Rows, rows...)
			result.TablesFound++
		}

		prog.update(i + 1)
	}
	prog.finish()

	if result.Empty() {
		return nil, ErrNoTables
	}
	return result, nil
}

// tableRows flattens one detected table into provenance-tagged rows.
func tableRows(pageNum int, table *model.Table) []types.ExtractedRow {
	rows := make([]types.ExtractedRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.Text
		}
		rows = append(rows, types.ExtractedRow{Page: pageNum, Cells: cells})
	}
	return rows
}
