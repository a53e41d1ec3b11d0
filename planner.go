package main

import (
	"fmt"
	"math"
)

// degreesSquared (= 360²) converts the rotary term of the resultant-speed
// calculation into the same degrees-linear basis as the 360×turns angular
// target of a full traversal.
const degreesSquared = 129600.0

// PlanPath computes the ordered waypoint sequence that roughs out and then
// finishes the channel described by shape with the given cutting
// parameters. It is a pure function: identical inputs produce identical
// sequences, and on error no sequence is returned at all.
func PlanPath(shape Shape, params CuttingParameters) (Sequence, error) {
	if err := Validate(shape, params); err != nil {
		return nil, err
	}

	plan, err := newPassPlan(shape, params)
	if err != nil {
		return nil, err
	}

	s := sequencer{shape: shape, params: params, plan: plan}
	s.approach()
	s.roughPasses()
	s.finishPass()
	s.retract()

	return s.waypoints, nil
}

// helicalFeedRate returns the feed rate to command at effective cut
// diameter d. The programmed cutting feed rate is scaled so the resultant
// of linear traverse and rotary surface speed stays at the nominal rate;
// as d shrinks the rotary term becomes feed-dominant and the commanded
// rate rises.
func helicalFeedRate(shape Shape, cutFeedRate, d float64) float64 {
	l := shape.Length
	n := shape.NumberOfTurns

	scale := math.Sqrt((l*l + degreesSquared*n*n) / (l*l + n*n*math.Pi*math.Pi*d*d))

	return cutFeedRate * scale
}

// passPlan is the derived rough-pass schedule: how many passes in each of
// the depth (Z) and width (Y) directions, and the even step each one takes.
type passPlan struct {
	zPasses int
	zStep   float64
	yPasses int
	yStep   float64
}

func newPassPlan(shape Shape, params CuttingParameters) (passPlan, error) {
	plan := passPlan{}

	// depth left for roughing once the finishing pass depth is reserved
	usableDepth := shape.TargetCutDepth - params.LastPassCuttingDepth
	if usableDepth > 0 {
		zPasses := math.Ceil(usableDepth / params.MaxCutDepth)
		if !finiteCount(zPasses) {
			return passPlan{}, fmt.Errorf("%w: z pass count %g", ErrInternalInvariant, zPasses)
		}
		plan.zPasses = int(zPasses)
		plan.zStep = usableDepth / zPasses
	}

	// width left for roughing after the finishing stock on each wall and
	// the tool's own footprint
	usableWidth := shape.TargetCutWidth - 2*params.LastPassCuttingDepth - params.InstrumentDiameter
	if usableWidth < 0 {
		usableWidth = 0
	}
	if usableWidth > 0 {
		yPasses := math.Ceil(usableWidth / params.MaxCutDepth)
		if !finiteCount(yPasses) {
			return passPlan{}, fmt.Errorf("%w: y pass count %g", ErrInternalInvariant, yPasses)
		}
		plan.yPasses = int(yPasses)
		if plan.yPasses%2 != 0 {
			// finishing works both walls symmetrically, so Y passes come in pairs
			plan.yPasses++
		}
		plan.yStep = usableWidth / float64(plan.yPasses)
	}

	return plan, nil
}

func finiteCount(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
}

// sequencer threads the planner's state through each phase: the current
// commanded Z, the traversal parity counter, and the waypoints emitted so
// far.
type sequencer struct {
	shape  Shape
	params CuttingParameters
	plan   passPlan

	z          float64
	traversals int
	waypoints  Sequence
}

func (s *sequencer) emit(wp Waypoint) {
	s.waypoints = append(s.waypoints, wp)
}

// traverse emits one full-length helical traversal at the given feed rate.
// The running parity counter alternates the target end between
// (length, 360×turns) and (0, 0) so every traversal starts exactly where
// the previous one ended, with no repositioning move in between.
func (s *sequencer) traverse(feedRate float64) {
	x := s.shape.Length
	a := 360 * s.shape.NumberOfTurns

	if s.traversals%2 == 1 {
		x = 0
		a = 0
	}
	s.traversals++

	s.emit(Waypoint{X: coord(x), A: coord(a), FeedRate: coord(feedRate)})
}

// approach rapids the tool to the start position and down to the stock
// surface datum. With XY offset compensation the start position clears the
// stock edges by the configured offsets plus the tool radius (plus the
// stock radius in Y); otherwise the tool starts on the channel centerline
// at the zero end.
func (s *sequencer) approach() {
	x := 0.0
	y := 0.0
	if s.params.EnableXYOffsetCompensation {
		x = s.params.InitialXOffset + s.params.InstrumentDiameter/2
		y = s.params.InitialYOffset + s.params.InstrumentDiameter/2 + s.shape.StockDiameter/2
	}

	s.z = -s.params.InitialZOffset

	s.emit(Waypoint{
		X:        coord(x),
		Y:        coord(y),
		Z:        coord(s.z),
		FeedRate: coord(s.params.FastFeedRateZ),
		Rapid:    true,
	})
}

// roughPasses removes the bulk of the channel. Each Z level plunges on the
// centerline, traverses the full length, then works outward in symmetric Y
// pairs. Plunges and Y steps cut at the plain cutting feed rate; traversals
// cut at the rate adjusted for the level's effective diameter.
func (s *sequencer) roughPasses() {
	for i := 0; i < s.plan.zPasses; i++ {
		s.z -= s.plan.zStep

		diameter := s.shape.StockDiameter - s.plan.zStep*float64(i+1)
		feedRate := helicalFeedRate(s.shape, s.params.CutFeedRate, diameter)

		s.emit(Waypoint{Y: coord(0), Z: coord(s.z), FeedRate: coord(s.params.CutFeedRate)})
		s.traverse(feedRate)

		for pair := 1; pair <= s.plan.yPasses/2; pair++ {
			offset := s.plan.yStep * float64(pair)

			s.emit(Waypoint{Y: coord(offset), FeedRate: coord(s.params.CutFeedRate)})
			s.traverse(feedRate)

			s.emit(Waypoint{Y: coord(-offset), FeedRate: coord(s.params.CutFeedRate)})
			s.traverse(feedRate)
		}
	}
}

// finishPass takes the reserved finishing depth. When the channel is wider
// than the tool it cuts each wall in turn at the finishing offset; when the
// tool exactly spans the width a single pass on the centerline suffices.
func (s *sequencer) finishPass() {
	s.z -= s.params.LastPassCuttingDepth

	diameter := s.shape.StockDiameter - s.shape.TargetCutDepth
	feedRate := helicalFeedRate(s.shape, s.params.CutFeedRate, diameter)

	if s.params.InstrumentDiameter < s.shape.TargetCutWidth {
		wall := (s.shape.TargetCutWidth - s.params.InstrumentDiameter) / 2

		s.emit(Waypoint{Y: coord(wall), Z: coord(s.z), FeedRate: coord(s.params.CutFeedRate)})
		s.traverse(feedRate)

		s.emit(Waypoint{Y: coord(-wall), FeedRate: coord(s.params.CutFeedRate)})
		s.traverse(feedRate)
	} else {
		s.emit(Waypoint{Z: coord(s.z), FeedRate: coord(s.params.CutFeedRate)})
		s.traverse(feedRate)
	}
}

// retract lifts the tool clear of the stock, then returns X, Y and A to
// zero. The Z-only rapid uses the Z rapid rate; the final combined rapid
// uses the plain rapid rate.
func (s *sequencer) retract() {
	s.emit(Waypoint{Z: coord(0), FeedRate: coord(s.params.FastFeedRateZ), Rapid: true})
	s.emit(Waypoint{X: coord(0), Y: coord(0), A: coord(0), FeedRate: coord(s.params.FastFeedRate), Rapid: true})
}
