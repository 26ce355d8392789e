package bench

import (
	"fmt"
	"math/rand"
	"time"

	"flexShop/internal/flexshop"
)

// Case is one benchmark configuration; the instance is generated once from
// InstanceSeed and shared by every run of the case.
type Case struct {
	Jobs         int
	Machines     int
	Factories    int
	InstanceSeed int64
}

// Shape controls the generated instances.
type Shape struct {
	MinOps      int
	MaxOps      int
	MinTime     int
	MaxTime     int
	UnavailRate float64
}

func DefaultShape() Shape {
	return Shape{MinOps: 1, MaxOps: 5, MinTime: 1, MaxTime: 99, UnavailRate: 0.2}
}

func (s Shape) Validate() error {
	if s.MinOps <= 0 || s.MaxOps < s.MinOps {
		return fmt.Errorf("operation count bounds must satisfy 0 < min <= max (got %d..%d)", s.MinOps, s.MaxOps)
	}
	if s.MinTime <= 0 || s.MaxTime < s.MinTime {
		return fmt.Errorf("time bounds must satisfy 0 < min <= max (got %d..%d)", s.MinTime, s.MaxTime)
	}
	if s.UnavailRate < 0 || s.UnavailRate >= 1 {
		return fmt.Errorf("unavailability rate must be in [0,1) (got %f)", s.UnavailRate)
	}
	return nil
}

type Record struct {
	Jobs      int
	Machines  int
	Factories int
	Runs      int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest int
	MakespanMean float64
	MakespanStd  float64
}

// Runner decodes Runs random genomes per case and aggregates makespan and
// wall-time statistics. Parallel switches to the per-factory concurrent
// decode path.
type Runner struct {
	Runs     int
	BaseSeed int64
	Parallel bool
	Shape    Shape
}

func (r Runner) RunCase(c Case) (Record, error) {
	if err := r.Shape.Validate(); err != nil {
		return Record{}, err
	}

	instRng := rand.New(rand.NewSource(c.InstanceSeed))
	inst := flexshop.RandomInstance(c.Jobs, c.Machines, c.Factories,
		r.Shape.MinOps, r.Shape.MaxOps, r.Shape.MinTime, r.Shape.MaxTime,
		r.Shape.UnavailRate, instRng)

	dec, err := flexshop.NewDecoder(inst)
	if err != nil {
		return Record{}, err
	}

	makespans := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runRng := rand.New(rand.NewSource(r.BaseSeed + int64(i)))
		g := flexshop.RandomGenome(inst, runRng)

		start := time.Now()
		var res flexshop.Result
		if r.Parallel {
			res, err = dec.DecodeParallel(g)
		} else {
			res, err = dec.Decode(g)
		}
		dur := time.Since(start)

		if err != nil {
			return Record{}, fmt.Errorf("run %d: decode error: %w", i, err)
		}
		if got := res.Schedule.Slots(); got != len(g.Ops) {
			return Record{}, fmt.Errorf("run %d: committed %d slots (want %d)", i, got, len(g.Ops))
		}

		makespans = append(makespans, res.Makespan)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	msStats := Calc(makespans)
	tStats := Calc(timesMs)

	return Record{
		Jobs:      c.Jobs,
		Machines:  c.Machines,
		Factories: c.Factories,
		Runs:      r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: int(msStats.Best),
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,
	}, nil
}
