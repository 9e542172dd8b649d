// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/tabledump/pkg/types"
)

// FormatRuns writes records as a human-readable table to w, newest first,
// matching the order List returns them in.
func FormatRuns(records []types.RunRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-6s  %5s  %6s  %6s  %s\n",
		"ID", "Started", "Status", "Pages", "Tables", "Rows", "File")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, rec := range records {
		file := rec.PDFPath
		if rec.Status == types.RunFailed && rec.Error != "" {
			file = fmt.Sprintf("%s (%s)", rec.PDFPath, rec.Error)
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-6s  %5d  %6d  %6d  %s\n",
			rec.ID, rec.StartedAt.Local().Format("2006-01-02 15:04"),
			rec.Status, rec.Pages, rec.Tables, rec.Rows, file)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(records))
}
