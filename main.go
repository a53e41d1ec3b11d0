package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
)

func main() {
	def := DefaultConfig()

	configPath := flag.String("config", "", "Read shape and cutting parameters from a TOML config file. Flags given explicitly override file values.")
	writeConfigPath := flag.String("write-config", "", "Write an example TOML config file to the given path and exit.")

	length := flag.Float64("length", def.Shape.Length, "Set the channel length along the linear axis in mm.")
	stockDiameter := flag.Float64("stock-diameter", def.Shape.StockDiameter, "Set the stock diameter in mm.")
	turns := flag.Float64("turns", def.Shape.NumberOfTurns, "Set the number of helix turns over the channel length. May be fractional.")
	cutDepth := flag.Float64("cut-depth", def.Shape.TargetCutDepth, "Set the radial depth of the channel below the stock surface in mm.")
	cutWidth := flag.Float64("cut-width", def.Shape.TargetCutWidth, "Set the channel width along the length axis in mm.")

	cutFeed := flag.Float64("cut-feed-rate", def.Cutting.CutFeedRate, "Set the cutting feed rate in mm/min. Traversals are scaled up from this to hold surface speed as the cut deepens.")
	fastFeed := flag.Float64("fast-feed-rate", def.Cutting.FastFeedRate, "Set the feed rate for rapid travel moves in mm/min.")
	fastFeedZ := flag.Float64("z-fast-feed-rate", def.Cutting.FastFeedRateZ, "Set the feed rate for rapid Z approach/retract moves in mm/min.")
	maxCutDepth := flag.Float64("max-cut-depth", def.Cutting.MaxCutDepth, "Set the maximum radial depth removed per rough pass in mm. Deeper cuts are split into multiple passes.")
	toolDiameter := flag.Float64("tool-diameter", def.Cutting.InstrumentDiameter, "Set the diameter of the end mill in mm.")
	zOffset := flag.Float64("z-offset", def.Cutting.InitialZOffset, "Set the tool-tip-to-surface standoff before cutting begins in mm.")
	xyCompensation := flag.Bool("xy-compensation", false, "Offset the approach position by the X/Y offsets plus the tool radius, to clear the stock edges.")
	yOffset := flag.Float64("y-offset", def.Cutting.InitialYOffset, "Set the initial Y offset in mm. Only used with -xy-compensation.")
	xOffset := flag.Float64("x-offset", def.Cutting.InitialXOffset, "Set the initial X offset in mm. Only used with -xy-compensation.")
	lastPassDepth := flag.Float64("last-pass-depth", def.Cutting.LastPassCuttingDepth, "Set the radial depth reserved for the finishing pass in mm.")

	rpm := flag.Float64("speed", def.Speed, "Set the spindle speed in RPM.")
	imperial := flag.Bool("imperial", false, "All units in inches instead of mm, and inches/min instead of mm/min. G-code output has G20 instead of G21.")
	quiet := flag.Bool("quiet", false, "Suppress output of pass counts and cycle time estimate.")

	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: helicam [options]\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "Helicam plans a helical channel cut on a 3-linear + 1-rotary axis machine and writes the G-code program to stdout.\n")
	}

	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *writeConfigPath != "" {
		if err := WriteExampleConfig(*writeConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := def
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// flags given on the command line win over config file values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length":
			cfg.Shape.Length = *length
		case "stock-diameter":
			cfg.Shape.StockDiameter = *stockDiameter
		case "turns":
			cfg.Shape.NumberOfTurns = *turns
		case "cut-depth":
			cfg.Shape.TargetCutDepth = *cutDepth
		case "cut-width":
			cfg.Shape.TargetCutWidth = *cutWidth
		case "cut-feed-rate":
			cfg.Cutting.CutFeedRate = *cutFeed
		case "fast-feed-rate":
			cfg.Cutting.FastFeedRate = *fastFeed
		case "z-fast-feed-rate":
			cfg.Cutting.FastFeedRateZ = *fastFeedZ
		case "max-cut-depth":
			cfg.Cutting.MaxCutDepth = *maxCutDepth
		case "tool-diameter":
			cfg.Cutting.InstrumentDiameter = *toolDiameter
		case "z-offset":
			cfg.Cutting.InitialZOffset = *zOffset
		case "xy-compensation":
			cfg.Cutting.EnableXYOffsetCompensation = *xyCompensation
		case "y-offset":
			cfg.Cutting.InitialYOffset = *yOffset
		case "x-offset":
			cfg.Cutting.InitialXOffset = *xOffset
		case "last-pass-depth":
			cfg.Cutting.LastPassCuttingDepth = *lastPassDepth
		case "speed":
			cfg.Speed = *rpm
		case "imperial":
			cfg.Imperial = *imperial
		}
	})

	opt := Options{
		shape:  cfg.Shape,
		params: cfg.Cutting,

		rpm:      cfg.Speed,
		imperial: cfg.Imperial,

		quiet: *quiet,
	}

	job, err := NewJob(&opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	os.Stdout.WriteString(job.Gcode())
}
