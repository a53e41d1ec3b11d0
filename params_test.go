package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShape() Shape {
	return Shape{
		Length:         50,
		StockDiameter:  35,
		NumberOfTurns:  3,
		TargetCutDepth: 3,
		TargetCutWidth: 6,
	}
}

func testParams() CuttingParameters {
	return CuttingParameters{
		CutFeedRate:          200,
		FastFeedRate:         1500,
		FastFeedRateZ:        500,
		MaxCutDepth:          1,
		InstrumentDiameter:   4,
		InitialZOffset:       2,
		LastPassCuttingDepth: 0.2,
	}
}

func TestValidateOk(t *testing.T) {
	assert.NoError(t, Validate(testShape(), testParams()))
}

func TestValidateInstrumentTooWide(t *testing.T) {
	shape := testShape()
	shape.TargetCutWidth = 3.9

	err := Validate(shape, testParams())
	assert.ErrorIs(t, err, ErrInstrumentTooWide)
}

func TestValidateCutBeyondCenter(t *testing.T) {
	shape := testShape()
	shape.TargetCutDepth = 18

	err := Validate(shape, testParams())
	assert.ErrorIs(t, err, ErrCutBeyondCenter)
}

func TestValidatePitchExceedsLength(t *testing.T) {
	shape := testShape()
	shape.NumberOfTurns = 9

	err := Validate(shape, testParams())
	assert.ErrorIs(t, err, ErrPitchExceedsLength)
}

func TestValidateLastPassTooDeep(t *testing.T) {
	params := testParams()
	params.LastPassCuttingDepth = 1.5

	err := Validate(testShape(), params)
	assert.ErrorIs(t, err, ErrLastPassTooDeep)
}

func TestValidationGatesPlanning(t *testing.T) {
	// each check failing in isolation produces no output at all
	bad := []func(*Shape, *CuttingParameters){
		func(s *Shape, p *CuttingParameters) { s.TargetCutWidth = p.InstrumentDiameter - 0.1 },
		func(s *Shape, p *CuttingParameters) { s.TargetCutDepth = s.StockDiameter },
		func(s *Shape, p *CuttingParameters) { s.NumberOfTurns = s.Length },
		func(s *Shape, p *CuttingParameters) { p.LastPassCuttingDepth = p.MaxCutDepth * 2 },
	}

	for _, breakOne := range bad {
		shape := testShape()
		params := testParams()
		breakOne(&shape, &params)

		path, err := PlanPath(shape, params)
		require.Error(t, err)
		assert.Nil(t, path)
	}
}
