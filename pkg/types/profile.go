// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// DetectionStrategy selects how table boundaries are found on a page.
type DetectionStrategy string

const (
	// StrategyAuto combines ruling lines and whitespace alignment.
	StrategyAuto DetectionStrategy = "auto"

	// StrategyLines trusts drawn ruling lines only.
	StrategyLines DetectionStrategy = "lines"

	// StrategyText infers the grid from text alignment only.
	StrategyText DetectionStrategy = "text"
)

// DetectorSettings tunes the geometric table detector for one document
// layout. Zero values fall back to the detector defaults.
type DetectorSettings struct {
	// Strategy selects the boundary detection strategy: auto, lines, or text.
	Strategy DetectionStrategy `json:"strategy" yaml:"strategy"`

	// MinRows is the minimum row count for a region to count as a table.
	MinRows int `json:"min_rows" yaml:"min_rows"`

	// MinCols is the minimum column count for a region to count as a table.
	MinCols int `json:"min_cols" yaml:"min_cols"`

	// MinConfidence drops candidate tables scored below this threshold (0..1).
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`

	// MaxCellGap is the largest horizontal gap, in points, still treated
	// as part of the same cell.
	MaxCellGap float64 `json:"max_cell_gap" yaml:"max_cell_gap"`

	// AlignmentTolerance is the vertical tolerance, in points, for grouping
	// text fragments into one row.
	AlignmentTolerance float64 `json:"alignment_tolerance" yaml:"alignment_tolerance"`
}

// Profile bundles detector settings for one family of PDF layouts
// (e.g. statements from a particular bank).
type Profile struct {
	// Name identifies the profile (e.g. "acme-bank").
	Name string `json:"name" yaml:"name"`

	// Description is a short human-readable note about the layout.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Match is a case-insensitive substring searched for in the first
	// page's text to auto-select this profile. Empty disables matching.
	Match string `json:"match,omitempty" yaml:"match,omitempty"`

	// Detector holds the detector tuning for this layout.
	Detector DetectorSettings `json:"detector" yaml:"detector"`
}

// Matches reports whether the profile's match string occurs in text,
// ignoring case. Profiles without a match string never match.
func (p *Profile) Matches(text string) bool {
	if p.Match == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(p.Match))
}
