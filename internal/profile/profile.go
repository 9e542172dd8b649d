// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile loads table detection profiles from a directory of YAML
// files. Each file describes one document layout: detector tuning plus an
// optional match string used to auto-select the profile from the first
// page's text.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tabledump/pkg/types"
)

// DefaultName is the name of the built-in fallback profile.
const DefaultName = "default"

// Default returns the built-in profile used when no file-based profile
// matches. It leaves all detector settings at their defaults.
func Default() types.Profile {
	return types.Profile{
		Name:        DefaultName,
		Description: "built-in defaults, combined line and text detection",
		Detector: types.DetectorSettings{
			Strategy: types.StrategyAuto,
		},
	}
}

// LoadDir reads all .yaml and .yml files in dir and returns the profiles
// they define, in filename order. A missing directory is not an error;
// LoadDir returns no profiles. Unreadable or malformed files produce a
// warning on stderr but do not abort.
func LoadDir(dir string) ([]types.Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles directory %s: %w", dir, err)
	}

	var profiles []types.Profile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read profile %s: %v\n", name, err)
			continue
		}

		var p types.Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not parse profile %s: %v\n", name, err)
			continue
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(name, ext)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// Select picks the profile to use for a document. An explicit name wins:
// it must name a loaded profile or the built-in default, anything else is
// an error. With no name, the first profile whose match string occurs in
// firstPageText is used, and the built-in default when none match.
func Select(profiles []types.Profile, name, firstPageText string) (types.Profile, error) {
	if name != "" {
		if name == DefaultName {
			return Default(), nil
		}
		for _, p := range profiles {
			if p.Name == name {
				return p, nil
			}
		}
		return types.Profile{}, fmt.Errorf("unknown profile %q", name)
	}

	for _, p := range profiles {
		if p.Matches(firstPageText) {
			return p, nil
		}
	}
	return Default(), nil
}
