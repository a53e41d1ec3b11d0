package main

import (
	"errors"
	"fmt"
)

// Shape describes the helical channel to cut. All lengths are in mm (or
// any one consistent linear unit); NumberOfTurns may be fractional.
type Shape struct {
	Length         float64 `toml:"length"`
	StockDiameter  float64 `toml:"stock_diameter"`
	NumberOfTurns  float64 `toml:"number_of_turns"`
	TargetCutDepth float64 `toml:"target_cut_depth"`
	TargetCutWidth float64 `toml:"target_cut_width"`
}

// CuttingParameters describes how to cut: feed rates, the tool, and how
// much material may be removed per pass. LastPassCuttingDepth is the radial
// depth reserved for the finishing pass.
type CuttingParameters struct {
	CutFeedRate                float64 `toml:"cut_feed_rate"`
	FastFeedRate               float64 `toml:"fast_feed_rate"`
	FastFeedRateZ              float64 `toml:"fast_feed_rate_z"`
	MaxCutDepth                float64 `toml:"max_cut_depth"`
	InstrumentDiameter         float64 `toml:"instrument_diameter"`
	InitialZOffset             float64 `toml:"initial_z_offset"`
	EnableXYOffsetCompensation bool    `toml:"enable_xy_offset_compensation"`
	InitialYOffset             float64 `toml:"initial_y_offset"`
	InitialXOffset             float64 `toml:"initial_x_offset"`
	LastPassCuttingDepth       float64 `toml:"last_pass_cutting_depth"`
}

var (
	// ErrInstrumentTooWide means the tool cannot fit in the channel.
	ErrInstrumentTooWide = errors.New("instrument diameter exceeds target cut width")
	// ErrCutBeyondCenter means the target depth reaches past the stock centerline.
	ErrCutBeyondCenter = errors.New("target cut depth cuts through the stock centerline")
	// ErrPitchExceedsLength means the helical pitch does not fit the channel length.
	ErrPitchExceedsLength = errors.New("helical pitch exceeds channel length")
	// ErrLastPassTooDeep means the reserved finishing depth exceeds the per-pass limit.
	ErrLastPassTooDeep = errors.New("last pass cutting depth exceeds max cut depth")

	// ErrInternalInvariant reports an arithmetic state the clamping rules
	// should make unreachable, e.g. a negative or non-finite pass count.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// Validate checks the four range constraints that gate planning.
func Validate(shape Shape, params CuttingParameters) error {
	if shape.TargetCutWidth < params.InstrumentDiameter {
		return fmt.Errorf("%w: width %g, instrument %g", ErrInstrumentTooWide, shape.TargetCutWidth, params.InstrumentDiameter)
	}
	if shape.TargetCutDepth*2 > shape.StockDiameter {
		return fmt.Errorf("%w: depth %g, stock diameter %g", ErrCutBeyondCenter, shape.TargetCutDepth, shape.StockDiameter)
	}
	if shape.NumberOfTurns*shape.TargetCutWidth > shape.Length {
		return fmt.Errorf("%w: %g turns of width %g over length %g", ErrPitchExceedsLength, shape.NumberOfTurns, shape.TargetCutWidth, shape.Length)
	}
	if params.LastPassCuttingDepth > params.MaxCutDepth {
		return fmt.Errorf("%w: last pass %g, max cut depth %g", ErrLastPassTooDeep, params.LastPassCuttingDepth, params.MaxCutDepth)
	}
	return nil
}
