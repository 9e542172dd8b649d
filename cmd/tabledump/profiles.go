package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tabledump/internal/profile"
	"github.com/pdiddy/tabledump/pkg/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available detection profiles",
	Long: `Profiles lists the built-in default profile and every profile found in
the profiles directory. A profile with a match string is auto-selected
when the string occurs in a document's first page.`,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	loaded, err := profile.LoadDir(viper.GetString("profiles_dir"))
	if err != nil {
		return err
	}

	profiles := append([]types.Profile{profile.Default()}, loaded...)

	fmt.Printf("%-16s  %-8s  %-24s  %s\n", "Name", "Strategy", "Match", "Description")
	fmt.Println(strings.Repeat("-", 80))

	for _, p := range profiles {
		strategy := p.Detector.Strategy
		if strategy == "" {
			strategy = types.StrategyAuto
		}
		fmt.Printf("%-16s  %-8s  %-24s  %s\n", p.Name, strategy, p.Match, p.Description)
	}

	fmt.Printf("\n%d profiles\n", len(profiles))
	return nil
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
