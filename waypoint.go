package main

import (
	"math"
)

// Waypoint is one commanded tool move. A nil axis field is not commanded:
// the machine holds that axis where it is. A nil FeedRate means the move
// carries no feed word of its own. Rapid distinguishes non-cutting
// repositioning moves from cutting moves.
type Waypoint struct {
	X        *float64 // mm
	Y        *float64 // mm
	Z        *float64 // mm
	A        *float64 // degrees
	FeedRate *float64 // mm/min
	Rapid    bool
}

func coord(v float64) *float64 { return &v }

// Traversal reports whether the waypoint is a full-length helical
// traversal, i.e. commands both the length axis and the rotary axis.
func (wp Waypoint) Traversal() bool {
	return wp.X != nil && wp.A != nil
}

// Sequence is an ordered list of waypoints in execution order.
type Sequence []Waypoint

// CycleTime estimates the machining time of the sequence in seconds.
// Axes not commanded by a waypoint hold the previous value; rotary motion
// is folded in as arc length at the stock surface.
// TODO: use the effective diameter at the waypoint's depth instead of the
// stock surface, which overestimates rotary distance on deep passes.
func (seq Sequence) CycleTime(stockDiameter float64) float64 {
	cycleTime := 0.0

	var x, y, z, a float64

	for i := range seq {
		wp := seq[i]

		dx, dy, dz, da := 0.0, 0.0, 0.0, 0.0
		if wp.X != nil {
			dx = *wp.X - x
			x = *wp.X
		}
		if wp.Y != nil {
			dy = *wp.Y - y
			y = *wp.Y
		}
		if wp.Z != nil {
			dz = *wp.Z - z
			z = *wp.Z
		}
		if wp.A != nil {
			da = *wp.A - a
			a = *wp.A
		}

		arcLength := math.Pi * stockDiameter * da / 360.0 // circumference = pi * diameter
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz + arcLength*arcLength)

		if wp.FeedRate == nil || *wp.FeedRate <= 0 {
			continue
		}

		cycleTime += 60 * (dist / *wp.FeedRate)
	}

	return cycleTime
}
