package main

import (
	"fmt"
	"strings"
)

// Gcode renders the waypoint as one motion statement. Rapid moves select
// G0 and cutting moves G1; only the axes the waypoint commands appear, so
// an absent axis is genuinely left uncommanded rather than repeated.
func (wp Waypoint) Gcode() string {
	line := strings.Builder{}

	if wp.Rapid {
		line.WriteString("G0")
	} else {
		line.WriteString("G1")
	}

	if wp.X != nil {
		fmt.Fprintf(&line, " X%.04f", *wp.X)
	}
	if wp.Y != nil {
		fmt.Fprintf(&line, " Y%.04f", *wp.Y)
	}
	if wp.Z != nil {
		fmt.Fprintf(&line, " Z%.04f", *wp.Z)
	}
	if wp.A != nil {
		fmt.Fprintf(&line, " A%.04f", *wp.A)
	}
	if wp.FeedRate != nil {
		fmt.Fprintf(&line, " F%g", *wp.FeedRate)
	}

	line.WriteString("\n")

	return line.String()
}

// Gcode renders the whole sequence, one motion statement per waypoint.
func (seq Sequence) Gcode() string {
	gcode := strings.Builder{}

	for i := range seq {
		gcode.WriteString(seq[i].Gcode())
	}

	return gcode.String()
}
