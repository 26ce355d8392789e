package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"flexShop/internal/bench"
)

func main() {
	var (
		out          = flag.String("out", "artifacts/results.csv", "output CSV path")
		cases        = flag.String("cases", "5x3x2,20x5x3,50x10x4", "cases as jobsXmachinesXfactories (comma separated)")
		runs         = flag.Int("runs", 30, "decoded genomes per case (with different seeds)")
		baseSeed     = flag.Int64("seed", 1000, "base seed for genome generation")
		instanceSeed = flag.Int64("instance_seed", 777, "base seed for instance generation (fixed per case)")
		parallel     = flag.Bool("parallel", false, "decode factories concurrently")

		minOps  = flag.Int("min_ops", 1, "minimum operations per job")
		maxOps  = flag.Int("max_ops", 5, "maximum operations per job")
		minTime = flag.Int("min_time", 1, "minimum processing time")
		maxTime = flag.Int("max_time", 99, "maximum processing time")
		unavail = flag.Float64("unavail", 0.2, "chance a machine cannot run an operation")
	)
	flag.Parse()

	parsed, err := parseCases(*cases, *instanceSeed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	shape := bench.Shape{
		MinOps:      *minOps,
		MaxOps:      *maxOps,
		MinTime:     *minTime,
		MaxTime:     *maxTime,
		UnavailRate: *unavail,
	}
	if err := shape.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	runner := bench.Runner{
		Runs:     *runs,
		BaseSeed: *baseSeed,
		Parallel: *parallel,
		Shape:    shape,
	}

	var records []bench.Record
	for _, c := range parsed {
		fmt.Printf("Decoding %d jobs, %d machines, %d factories (runs=%d)...\n",
			c.Jobs, c.Machines, c.Factories, runner.Runs)

		rec, err := runner.RunCase(c)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		records = append(records, rec)

		fmt.Printf("  makespan: best=%d mean=%.2f std=%.2f | time: mean=%.3fms std=%.3fms\n",
			rec.MakespanBest, rec.MakespanMean, rec.MakespanStd,
			rec.TimeMeanMs, rec.TimeStdMs,
		)
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "error writing CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", *out)
}

func parseCases(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		dims := strings.Split(p, "x")
		if len(dims) != 3 {
			return nil, fmt.Errorf("case %q is not of the form 20x5x3", p)
		}
		jobs, err := atoiStrict(dims[0])
		if err != nil {
			return nil, fmt.Errorf("case %q: bad job count: %w", p, err)
		}
		machines, err := atoiStrict(dims[1])
		if err != nil {
			return nil, fmt.Errorf("case %q: bad machine count: %w", p, err)
		}
		factories, err := atoiStrict(dims[2])
		if err != nil {
			return nil, fmt.Errorf("case %q: bad factory count: %w", p, err)
		}
		if jobs <= 0 || machines <= 0 || factories <= 0 {
			return nil, fmt.Errorf("case %q: all dimensions must be > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)*10 + int64(factories)

		cases = append(cases, bench.Case{
			Jobs:         jobs,
			Machines:     machines,
			Factories:    factories,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
