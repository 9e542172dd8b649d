// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/tsawler/tabula/tables"

	"github.com/pdiddy/tabledump/pkg/types"
)

// NewDetector builds a tabula geometric detector tuned by the profile's
// settings. Zero-valued settings keep the tabula defaults; the strategy
// narrows detection to ruling lines, text alignment, or both.
func NewDetector(p types.Profile) (*tables.GeometricDetector, error) {
	cfg := tables.DefaultConfig()

	switch p.Detector.Strategy {
	case types.StrategyAuto, "":
		// Defaults already combine lines and whitespace.
	case types.StrategyLines:
		cfg.UseWhitespace = false
	case types.StrategyText:
		cfg.UseLines = false
	default:
		return nil, fmt.Errorf("profile %s: unknown detection strategy %q", p.Name, p.Detector.Strategy)
	}

	if p.Detector.MinRows > 0 {
		cfg.MinRows = p.Detector.MinRows
	}
	if p.Detector.MinCols > 0 {
		cfg.MinCols = p.Detector.MinCols
	}
	if p.Detector.MinConfidence > 0 {
		cfg.MinConfidence = p.Detector.MinConfidence
	}
	if p.Detector.MaxCellGap > 0 {
		cfg.MaxCellGap = p.Detector.MaxCellGap
	}
	if p.Detector.AlignmentTolerance > 0 {
		cfg.AlignmentTolerance = p.Detector.AlignmentTolerance
	}

	det := tables.NewGeometricDetector()
	if err := det.Configure(cfg); err != nil {
		return nil, fmt.Errorf("configuring detector: %w", err)
	}
	return det, nil
}
