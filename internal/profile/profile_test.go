// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tabledump/pkg/types"
)

func TestLoadDir(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) string
		wantNames []string
	}{
		{
			name: "reads yaml profiles in filename order",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeProfile(t, dir, "acme-bank.yaml", "name: acme-bank\nmatch: Acme Bank\ndetector:\n  strategy: lines\n")
				writeProfile(t, dir, "zeta-credit.yaml", "name: zeta-credit\nmatch: Zeta Credit Union\ndetector:\n  strategy: text\n")
				return dir
			},
			wantNames: []string{"acme-bank", "zeta-credit"},
		},
		{
			name: "falls back to filename stem when name is missing",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeProfile(t, dir, "unnamed.yaml", "match: Unnamed Bank\n")
				return dir
			},
			wantNames: []string{"unnamed"},
		},
		{
			name: "accepts the yml extension",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeProfile(t, dir, "short.yml", "name: short\n")
				return dir
			},
			wantNames: []string{"short"},
		},
		{
			name: "skips non-yaml files, dotfiles, and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeProfile(t, dir, "real.yaml", "name: real\n")
				writeProfile(t, dir, "notes.txt", "not a profile")
				writeProfile(t, dir, ".hidden.yaml", "name: hidden\n")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			wantNames: []string{"real"},
		},
		{
			name: "skips malformed yaml with a warning",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeProfile(t, dir, "broken.yaml", "name: [unclosed\n")
				writeProfile(t, dir, "good.yaml", "name: good\n")
				return dir
			},
			wantNames: []string{"good"},
		},
		{
			name: "returns nothing for a nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := LoadDir(dir)
			require.NoError(t, err)
			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestLoadDirParsesDetectorSettings(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "tuned.yaml",
		"name: tuned\nmatch: Tuned Bank\ndetector:\n  strategy: lines\n  min_rows: 3\n  min_cols: 4\n  min_confidence: 0.7\n  max_cell_gap: 8.5\n  alignment_tolerance: 1.5\n")

	got, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "tuned", p.Name)
	assert.Equal(t, "Tuned Bank", p.Match)
	assert.Equal(t, types.StrategyLines, p.Detector.Strategy)
	assert.Equal(t, 3, p.Detector.MinRows)
	assert.Equal(t, 4, p.Detector.MinCols)
	assert.InDelta(t, 0.7, p.Detector.MinConfidence, 1e-9)
	assert.InDelta(t, 8.5, p.Detector.MaxCellGap, 1e-9)
	assert.InDelta(t, 1.5, p.Detector.AlignmentTolerance, 1e-9)
}

func TestSelect(t *testing.T) {
	profiles := []types.Profile{
		{Name: "acme-bank", Match: "Acme Bank"},
		{Name: "zeta-credit", Match: "Zeta Credit Union"},
		{Name: "no-match"},
	}

	tests := []struct {
		name     string
		explicit string
		text     string
		want     string
		errMsg   string
	}{
		{
			name:     "explicit name wins over matching text",
			explicit: "zeta-credit",
			text:     "Statement from Acme Bank",
			want:     "zeta-credit",
		},
		{
			name:     "explicit default name returns the built-in profile",
			explicit: "default",
			text:     "Statement from Acme Bank",
			want:     DefaultName,
		},
		{
			name:     "unknown explicit name is an error",
			explicit: "first-national",
			errMsg:   `unknown profile "first-national"`,
		},
		{
			name: "first page text selects the matching profile",
			text: "Monthly statement issued by ACME BANK for account 1234",
			want: "acme-bank",
		},
		{
			name: "matching is ordered, first hit wins",
			text: "Acme Bank and Zeta Credit Union joint statement",
			want: "acme-bank",
		},
		{
			name: "no match falls back to the built-in default",
			text: "Some unrelated document",
			want: DefaultName,
		},
		{
			name: "profiles without a match string are never auto-selected",
			text: "no-match",
			want: DefaultName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(profiles, tt.explicit, tt.text)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
