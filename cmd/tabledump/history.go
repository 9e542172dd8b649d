// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tabledump/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the ledger of past extraction runs",
	Long: `History manages the local SQLite ledger where every extraction run is
recorded: the input document, the profile used, row counts, and output
paths. Use subcommands to list recent runs or clear the ledger.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent extraction runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	history.FormatRuns(records, os.Stdout)
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("cleared %d runs\n", n)
	return nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (0 = default 20)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
