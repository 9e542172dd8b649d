package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tabledump/internal/document"
	"github.com/pdiddy/tabledump/internal/export"
	"github.com/pdiddy/tabledump/internal/extract"
	"github.com/pdiddy/tabledump/internal/history"
	"github.com/pdiddy/tabledump/internal/profile"
	"github.com/pdiddy/tabledump/pkg/types"
)

func init() {
	rootCmd.Flags().Bool("protected", false, "the document is password-protected")
	rootCmd.Flags().String("password", "", "password for a protected document")
	rootCmd.Flags().String("output", "tables.csv", "CSV output path; the XLSX file shares its base name")
	rootCmd.Flags().String("profile", "", "detection profile to use (default: auto-detect from first page)")
}

// runExtract drives the pipeline: open the document, pick a profile, scan
// every page, then write both output files. Outputs are only written once
// the full scan has succeeded.
func runExtract(cmd *cobra.Command, args []string) error {
	start := time.Now()

	pdfPath := args[0]
	protected, _ := cmd.Flags().GetBool("protected")
	password, _ := cmd.Flags().GetString("password")
	output, _ := cmd.Flags().GetString("output")
	profileName, _ := cmd.Flags().GetString("profile")

	if password != "" && !protected {
		logrus.Debug("--password given without --protected, ignoring password")
		password = ""
	}

	doc, err := document.Open(pdfPath, protected, password)
	if err != nil {
		recordFailure(start, pdfPath, profileName, err)
		return err
	}
	defer doc.Close()

	fmt.Printf("opened %s (%d pages)\n", pdfPath, doc.PageCount())
	if doc.Encrypted() {
		logrus.Debug("document decrypted to a temporary copy")
	}

	profiles, err := profile.LoadDir(viper.GetString("profiles_dir"))
	if err != nil {
		recordFailure(start, pdfPath, profileName, err)
		return err
	}

	firstPage := ""
	if profileName == "" {
		firstPage, err = doc.FirstPageText()
		if err != nil {
			logrus.Debugf("first page text unavailable: %v", err)
		}
	}

	prof, err := profile.Select(profiles, profileName, firstPage)
	if err != nil {
		recordFailure(start, pdfPath, profileName, err)
		return err
	}
	fmt.Printf("profile: %s\n", prof.Name)

	det, err := extract.NewDetector(prof)
	if err != nil {
		recordFailure(start, pdfPath, prof.Name, err)
		return err
	}
	logrus.WithFields(logrus.Fields{
		"profile":  prof.Name,
		"strategy": prof.Detector.Strategy,
	}).Debug("detector configured")

	result, err := extract.ExtractAll(doc, det, os.Stderr)
	if err != nil {
		recordFailure(start, pdfPath, prof.Name, err)
		return err
	}

	if err := export.WriteOutputs(result, output, os.Stdout); err != nil {
		recordFailure(start, pdfPath, prof.Name, err)
		return err
	}

	xlsxPath := export.XLSXPath(output)
	recordRun(types.RunRecord{
		StartedAt: start,
		PDFPath:   pdfPath,
		Profile:   prof.Name,
		Pages:     result.PagesScanned,
		Tables:    result.TablesFound,
		Rows:      result.RowsExtracted(),
		CSVPath:   output,
		XLSXPath:  xlsxPath,
		Status:    types.RunOK,
		Duration:  time.Since(start),
	})

	fmt.Print(export.FormatSummary(export.Summary{
		PDFPath:  pdfPath,
		Profile:  prof.Name,
		Pages:    result.PagesScanned,
		Tables:   result.TablesFound,
		Rows:     result.RowsExtracted(),
		CSVPath:  output,
		XLSXPath: xlsxPath,
	}))
	return nil
}

// --- history recording helpers ---

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Path:    viper.GetString("history_path"),
		Enabled: viper.GetBool("history_enabled"),
	}
}

// recordRun appends rec to the run ledger. Ledger problems never fail the
// run; they surface as warnings on stderr.
func recordRun(rec types.RunRecord) {
	cfg := historyConfig()
	if !cfg.Enabled {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func recordFailure(start time.Time, pdfPath, profileName string, cause error) {
	recordRun(types.RunRecord{
		StartedAt: start,
		PDFPath:   pdfPath,
		Profile:   profileName,
		Status:    types.RunFailed,
		Error:     cause.Error(),
		Duration:  time.Since(start),
	})
}
