package flexshop

import (
	"fmt"
	"sync"
)

// Result is one decoded genome: the global makespan and the full schedule,
// nested as factory, machine, slot sequence.
type Result struct {
	Makespan int
	Schedule Schedule
}

// Decoder turns genome pairs of one instance into concrete schedules.
// Decoding is deterministic and strictly forward: once a slot is committed
// it never moves.
type Decoder struct {
	inst *Instance
}

func NewDecoder(inst *Instance) (*Decoder, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{inst: inst}, nil
}

// Decode validates the genome, partitions it into per-factory sub-genomes
// by the factory-genome (relative order preserved), decodes every factory
// and aggregates the global makespan.
func (d *Decoder) Decode(g Genome) (Result, error) {
	subs, err := d.partition(g)
	if err != nil {
		return Result{}, err
	}

	sched := make(Schedule, d.inst.Factories)
	for f, sub := range subs {
		fs, err := d.decodeFactory(sub)
		if err != nil {
			return Result{}, fmt.Errorf("factory %d: %w", f, err)
		}
		sched[f] = fs
	}
	return Result{Makespan: sched.Makespan(), Schedule: sched}, nil
}

// DecodeParallel is Decode with one goroutine per factory. Factories share
// no machine schedules, so the workers need no locking; results are
// collected by factory index and the output is identical to Decode's.
func (d *Decoder) DecodeParallel(g Genome) (Result, error) {
	subs, err := d.partition(g)
	if err != nil {
		return Result{}, err
	}

	sched := make(Schedule, d.inst.Factories)
	errs := make([]error, d.inst.Factories)
	var wg sync.WaitGroup
	for f, sub := range subs {
		wg.Add(1)
		go func(f int, sub []int) {
			defer wg.Done()
			fs, err := d.decodeFactory(sub)
			if err != nil {
				errs[f] = fmt.Errorf("factory %d: %w", f, err)
				return
			}
			sched[f] = fs
		}(f, sub)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}
	return Result{Makespan: sched.Makespan(), Schedule: sched}, nil
}

func (d *Decoder) partition(g Genome) ([][]int, error) {
	if err := g.Validate(d.inst); err != nil {
		return nil, err
	}
	subs := make([][]int, d.inst.Factories)
	for i, gene := range g.Ops {
		f := g.Factories[i]
		subs[f] = append(subs[f], gene)
	}
	return subs, nil
}

// decodeFactory greedily schedules one factory's sub-genome. Per gene it
// resolves the job's next operation, trial-inserts it on every available
// machine and commits the first machine that strictly minimizes the
// factory makespan (strict < keeps the lowest machine index on ties).
func (d *Decoder) decodeFactory(sub []int) (FactorySchedule, error) {
	cursor := make([]int, len(d.inst.Jobs))
	machines := make(FactorySchedule, d.inst.Machines)

	for _, gene := range sub {
		op := d.inst.Jobs[gene][cursor[gene]]
		earliest := machines.jobFinish(gene)

		best := -1
		bestMakespan := 0
		var bestSched MachineSchedule
		for m, c := range op {
			if !c.Available {
				continue
			}
			trial := machines[m].Insert(gene, earliest, c.Time)
			ms := machines.makespanWith(m, trial)
			if best < 0 || ms < bestMakespan {
				best = m
				bestMakespan = ms
				bestSched = trial
			}
		}
		if best < 0 {
			return nil, fmt.Errorf("%w: job %d operation %d", ErrNoAvailableMachine, gene, cursor[gene])
		}

		machines[best] = bestSched
		cursor[gene]++
	}
	return machines, nil
}

// jobFinish is the latest end over the job's committed slots in this
// factory, 0 if none: the earliest start of the job's next operation here.
func (fs FactorySchedule) jobFinish(job int) int {
	end := 0
	for _, ms := range fs {
		for _, slot := range ms {
			if slot.Job == job && slot.End > end {
				end = slot.End
			}
		}
	}
	return end
}

// makespanWith evaluates the factory makespan with machine m's schedule
// substituted by trial, leaving the committed schedules untouched.
func (fs FactorySchedule) makespanWith(m int, trial MachineSchedule) int {
	ms := trial.LastEnd()
	for i, s := range fs {
		if i == m {
			continue
		}
		if end := s.LastEnd(); end > ms {
			ms = end
		}
	}
	return ms
}
