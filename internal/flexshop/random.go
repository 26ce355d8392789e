package flexshop

import "math/rand"

// RandomInstance generates an instance with len(jobs) in jobs, operation
// counts drawn from [minOps, maxOps] and available processing times from
// [minTime, maxTime]. unavailRate is the chance a machine cannot run an
// operation; every operation keeps at least one available machine.
func RandomInstance(jobs, machines, factories, minOps, maxOps, minTime, maxTime int, unavailRate float64, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("rng is nil")
	}
	if jobs <= 0 || machines <= 0 || factories <= 0 {
		panic("jobs, machines and factories must be > 0")
	}
	if minOps <= 0 || maxOps < minOps {
		panic("invalid operation count bounds")
	}
	if minTime <= 0 || maxTime < minTime {
		panic("invalid time bounds")
	}
	if unavailRate < 0 || unavailRate >= 1 {
		panic("unavailRate must be in [0,1)")
	}

	js := make([]Job, jobs)
	for j := range js {
		nOps := minOps + rng.Intn(maxOps-minOps+1)
		job := make(Job, nOps)
		for o := range job {
			op := make(Operation, machines)
			avail := 0
			for m := range op {
				if rng.Float64() < unavailRate {
					continue
				}
				op[m] = Cost{Time: minTime + rng.Intn(maxTime-minTime+1), Available: true}
				avail++
			}
			if avail == 0 {
				m := rng.Intn(machines)
				op[m] = Cost{Time: minTime + rng.Intn(maxTime-minTime+1), Available: true}
			}
			job[o] = op
		}
		js[j] = job
	}

	inst, err := NewInstance(js, machines, factories)
	if err != nil {
		panic(err)
	}
	return inst
}

// RandomGenome draws a valid genome pair for the instance: each job index
// repeated once per operation, shuffled, with uniform factory assignments.
func RandomGenome(inst *Instance, rng *rand.Rand) Genome {
	if rng == nil {
		panic("rng is nil")
	}
	ops := make([]int, 0, inst.TotalOps())
	for j, job := range inst.Jobs {
		for range job {
			ops = append(ops, j)
		}
	}
	for i := len(ops) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ops[i], ops[j] = ops[j], ops[i]
	}

	factories := make([]int, len(ops))
	for i := range factories {
		factories[i] = rng.Intn(inst.Factories)
	}
	return Genome{Ops: ops, Factories: factories}
}
