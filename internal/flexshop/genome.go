package flexshop

import (
	"errors"
	"fmt"
)

// Decoding rejects these inputs outright; a partially built schedule is
// never returned.
var (
	ErrMalformedGenome     = errors.New("malformed genome")
	ErrInvalidFactoryIndex = errors.New("invalid factory index")
	ErrNoAvailableMachine  = errors.New("no available machine")
)

// Genome is one chromosome pair: Ops orders operations across jobs (each
// value is a job index; the operation scheduled is always that job's next
// unscheduled one) and Factories assigns the positionally matching gene to
// a factory.
type Genome struct {
	Ops       []int
	Factories []int
}

// Validate checks the genome against an instance: equal genome lengths,
// every gene a valid job index referenced no more often than the job has
// operations, every factory value in range. A genome shorter than the
// instance's total operation count is legal; it simply schedules fewer
// operations (the empty genome yields an all-empty schedule).
func (g Genome) Validate(inst *Instance) error {
	if len(g.Ops) != len(g.Factories) {
		return fmt.Errorf("%w: operation-genome length %d != factory-genome length %d", ErrMalformedGenome, len(g.Ops), len(g.Factories))
	}
	counts := make([]int, len(inst.Jobs))
	for i, gene := range g.Ops {
		if gene < 0 || gene >= len(inst.Jobs) {
			return fmt.Errorf("%w: ops[%d]=%d out of range [0,%d)", ErrMalformedGenome, i, gene, len(inst.Jobs))
		}
		counts[gene]++
		if counts[gene] > len(inst.Jobs[gene]) {
			return fmt.Errorf("%w: job %d referenced more than its %d operations", ErrMalformedGenome, gene, len(inst.Jobs[gene]))
		}
	}
	for i, f := range g.Factories {
		if f < 0 || f >= inst.Factories {
			return fmt.Errorf("%w: factories[%d]=%d out of range [0,%d)", ErrInvalidFactoryIndex, i, f, inst.Factories)
		}
	}
	return nil
}
