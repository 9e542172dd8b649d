// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tabledump CLI, which pulls
// tables out of PDF documents into CSV and XLSX files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; invoked with a PDF path it runs the full
// extraction pipeline.
var rootCmd = &cobra.Command{
	Use:   "tabledump [pdf]",
	Short: "Extract tables from PDF documents into CSV and XLSX",
	Long: `tabledump scans a PDF page by page and writes every detected table row
to a CSV file and a matching XLSX workbook. Each row is tagged with the
page it came from.

Detection is tuned through profiles: YAML files describing a document
layout. A profile is picked automatically from the first page's text, or
forced with --profile. Password-protected documents are supported with
--protected and --password.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetOutput(os.Stderr)
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tabledump.yaml or ~/.config/tabledump/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tabledump")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tabledump"))
		}
	}

	viper.SetDefault("profiles_dir", "profiles")
	viper.SetDefault("history_path", filepath.Join(".tabledump", "history.db"))
	viper.SetDefault("history_enabled", true)

	viper.SetEnvPrefix("TABLEDUMP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
