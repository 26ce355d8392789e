package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"flexShop/internal/flexshop"
	"flexShop/internal/report"
)

func main() {
	var (
		instancePath = flag.String("instance", "", "YAML instance file (with an embedded genome)")
		parallel     = flag.Bool("parallel", false, "decode factories concurrently")
		gantt        = flag.Bool("gantt", false, "render a terminal Gantt chart")
		width        = flag.Int("width", 72, "Gantt bar area width in cells")
		svgPath      = flag.String("svg", "", "write an SVG Gantt chart to this path")
		colorSeed    = flag.Int64("color_seed", 813, "seed for job color sampling")
	)
	flag.Parse()

	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "error: -instance is required")
		flag.Usage()
		os.Exit(2)
	}

	inst, genome, err := flexshop.LoadFile(*instancePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if genome == nil {
		fmt.Fprintln(os.Stderr, "error: instance file carries no genome to decode")
		os.Exit(2)
	}

	dec, err := flexshop.NewDecoder(inst)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	var res flexshop.Result
	if *parallel {
		res, err = dec.DecodeParallel(*genome)
	} else {
		res, err = dec.Decode(*genome)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		os.Exit(1)
	}

	fmt.Print(report.Text(res.Schedule))
	fmt.Println("makespan:", res.Makespan)

	var colors []string
	if *gantt || *svgPath != "" {
		colors = report.Palette(len(inst.Jobs), rand.New(rand.NewSource(*colorSeed)))
	}

	if *gantt {
		fmt.Println()
		fmt.Print(report.Gantt(res.Schedule, report.GanttOptions{Width: *width, Colors: colors}))
	}

	if *svgPath != "" {
		svg := report.SVG(res.Schedule, colors)
		if err := os.WriteFile(*svgPath, []byte(svg), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "error writing SVG:", err)
			os.Exit(1)
		}
		fmt.Println("Saved:", *svgPath)
	}
}
