package main

import (
	"fmt"
	"os"
	"strings"
)

type Job struct {
	options *Options
	path    Sequence
}

func NewJob(opt *Options) (*Job, error) {
	j := Job{}
	j.options = opt

	path, err := PlanPath(opt.shape, opt.params)
	if err != nil {
		return nil, err
	}
	j.path = path

	if !opt.quiet {
		unit := "mm"
		if opt.imperial {
			unit = "inches"
		}

		plan, err := newPassPlan(opt.shape, opt.params)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(os.Stderr, "%g %s channel, %g turns on %g %s stock.\n", opt.shape.Length, unit, opt.shape.NumberOfTurns, opt.shape.StockDiameter, unit)
		fmt.Fprintf(os.Stderr, "%d rough Z passes of %g %s, %d rough Y passes of %g %s, %g %s finishing pass.\n",
			plan.zPasses, plan.zStep, unit, plan.yPasses, plan.yStep, unit, opt.params.LastPassCuttingDepth, unit)

		surfaceFeed := helicalFeedRate(opt.shape, opt.params.CutFeedRate, opt.shape.StockDiameter)
		fmt.Fprintf(os.Stderr, "Traversal feed rate is %.4g %s/min at the stock surface.\n", surfaceFeed, unit)
	}

	return &j, nil
}

func (j *Job) Gcode() string {
	opt := j.options

	gcode := j.path.Gcode()
	cycleTime := j.path.CycleTime(opt.shape.StockDiameter)

	if !opt.quiet {
		fmt.Fprintf(os.Stderr, "Cycle time estimate: %g secs\n", cycleTime)
	}

	return j.Preamble() + gcode + j.Postamble()
}

func (j *Job) Preamble() string {
	opt := j.options

	gcode := strings.Builder{}

	if opt.imperial {
		gcode.WriteString("G20\n") // inches
	} else {
		gcode.WriteString("G21\n") // mm
	}
	gcode.WriteString("G90\n") // absolute coordinates

	// all axes read zero at the approach datum
	gcode.WriteString("G92 X0 Y0 Z0 A0\n")

	fmt.Fprintf(&gcode, "M3 S%g\n", opt.rpm)

	return gcode.String()
}

func (j *Job) Postamble() string {
	return "M5\nM2\n" // stop spindle, end program
}
