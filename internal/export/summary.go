// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Summary collects the figures reported at the end of a successful run.
type Summary struct {
	PDFPath  string
	Profile  string
	Pages    int
	Tables   int
	Rows     int
	CSVPath  string
	XLSXPath string
}

// FormatSummary renders the end-of-run report: a green headline followed
// by the run's figures, aligned for scanning.
func FormatSummary(s Summary) string {
	green := color.New(color.FgGreen).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", green("extraction complete"))
	fmt.Fprintf(&b, "  %-8s %s\n", "file:", s.PDFPath)
	fmt.Fprintf(&b, "  %-8s %s\n", "profile:", s.Profile)
	fmt.Fprintf(&b, "  %-8s %d\n", "pages:", s.Pages)
	fmt.Fprintf(&b, "  %-8s %d\n", "tables:", s.Tables)
	fmt.Fprintf(&b, "  %-8s %d\n", "rows:", s.Rows)
	fmt.Fprintf(&b, "  %-8s %s\n", "csv:", s.CSVPath)
	fmt.Fprintf(&b, "  %-8s %s\n", "xlsx:", s.XLSXPath)
	return b.String()
}
