package flexshop

import (
	"errors"
	"fmt"
)

// Cost is the processing cost of one operation on one machine.
// Machines that cannot run the operation carry Available=false instead of
// a sentinel processing time, which keeps makespan arithmetic overflow-free.
type Cost struct {
	Time      int
	Available bool
}

// Operation maps machine index to processing cost.
type Operation []Cost

// NewOperation builds an Operation from per-machine times. A negative time
// marks the machine as unavailable for the operation.
func NewOperation(times ...int) Operation {
	op := make(Operation, len(times))
	for m, t := range times {
		if t >= 0 {
			op[m] = Cost{Time: t, Available: true}
		}
	}
	return op
}

// Job is an ordered sequence of operations.
type Job []Operation

// Instance describes one distributed flexible job-shop problem: the job
// operation tables plus the machine count per factory and the factory count.
// Instances are immutable inputs; the decoder never modifies them.
type Instance struct {
	Jobs      []Job
	Machines  int
	Factories int
}

func NewInstance(jobs []Job, machines, factories int) (*Instance, error) {
	inst := &Instance{Jobs: jobs, Machines: machines, Factories: factories}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("machines must be > 0 (got %d)", inst.Machines)
	}
	if inst.Factories <= 0 {
		return fmt.Errorf("factories must be > 0 (got %d)", inst.Factories)
	}
	if len(inst.Jobs) == 0 {
		return errors.New("instance has no jobs")
	}
	for j, job := range inst.Jobs {
		if len(job) == 0 {
			return fmt.Errorf("job %d has no operations", j)
		}
		for o, op := range job {
			if len(op) != inst.Machines {
				return fmt.Errorf("job %d operation %d must list %d machine costs (got %d)", j, o, inst.Machines, len(op))
			}
			for m, c := range op {
				if c.Available && c.Time <= 0 {
					return fmt.Errorf("job %d operation %d machine %d: processing time must be > 0 (got %d)", j, o, m, c.Time)
				}
			}
		}
	}
	return nil
}

// TotalOps is the operation count summed over all jobs, i.e. the required
// operation-genome length.
func (inst *Instance) TotalOps() int {
	n := 0
	for _, job := range inst.Jobs {
		n += len(job)
	}
	return n
}
