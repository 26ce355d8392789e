package flexshop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceInstance is the 3-job, 3-machine, 2-factory scenario used
// throughout the package tests. Negative times mark unavailable machines.
func referenceInstance(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewInstance([]Job{
		{
			NewOperation(7, 10, 11),
			NewOperation(2, 8, -1),
		},
		{
			NewOperation(7, 6, 10),
			NewOperation(9, 9, 7),
			NewOperation(12, 7, 13),
		},
		{
			NewOperation(17, -1, 9),
			NewOperation(14, 10, -1),
			NewOperation(10, 6, 5),
		},
	}, 3, 2)
	require.NoError(t, err)
	return inst
}

func referenceGenome() Genome {
	return Genome{
		Ops:       []int{2, 2, 1, 0, 1, 0, 1, 2},
		Factories: []int{0, 0, 0, 1, 0, 1, 0, 0},
	}
}

func TestDecode_ReferenceScenario(t *testing.T) {
	inst := referenceInstance(t)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	res, err := dec.Decode(referenceGenome())
	require.NoError(t, err)

	assert.Equal(t, 26, res.Makespan)
	assert.Equal(t, len(referenceGenome().Ops), res.Schedule.Slots())
	require.Len(t, res.Schedule, 2)

	// Factory 1 receives only job 0, which chains both operations onto
	// machine 0.
	require.Equal(t, FactorySchedule{
		{{Job: 0, Start: 0, End: 7}, {Job: 0, Start: 7, End: 9}},
		nil,
		nil,
	}, res.Schedule[1])

	for _, fs := range res.Schedule {
		for _, ms := range fs {
			requireNonOverlapping(t, ms)
		}
	}
	requirePrecedence(t, res.Schedule)

	// Trivial upper bound: sum of every available processing time.
	upper := 0
	for _, job := range inst.Jobs {
		for _, op := range job {
			for _, c := range op {
				if c.Available {
					upper += c.Time
				}
			}
		}
	}
	assert.Positive(t, res.Makespan)
	assert.Less(t, res.Makespan, upper)
}

// requirePrecedence checks per factory that a job's slots never overlap
// each other: every operation starts at or after the previous one of the
// same job ends. Factories decode independently, so a job the genome
// splits across factories carries no cross-factory ordering guarantee.
func requirePrecedence(t *testing.T, sched Schedule) {
	t.Helper()
	type ref struct{ start, end int }
	for f, fs := range sched {
		slots := make(map[int][]ref)
		for _, ms := range fs {
			for _, s := range ms {
				slots[s.Job] = append(slots[s.Job], ref{s.Start, s.End})
			}
		}
		for j, js := range slots {
			for a := range js {
				for b := range js {
					if a == b {
						continue
					}
					require.True(t, js[a].end <= js[b].start || js[b].end <= js[a].start,
						"factory %d job %d slots overlap: %v", f, j, js)
				}
			}
		}
	}
}

func TestDecode_ParallelMatchesSequential(t *testing.T) {
	inst := referenceInstance(t)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	seq, err := dec.Decode(referenceGenome())
	require.NoError(t, err)
	par, err := dec.DecodeParallel(referenceGenome())
	require.NoError(t, err)

	require.Equal(t, seq, par)
}

func TestDecode_Deterministic(t *testing.T) {
	inst := referenceInstance(t)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	first, err := dec.Decode(referenceGenome())
	require.NoError(t, err)
	second, err := dec.Decode(referenceGenome())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecode_EmptyGenome(t *testing.T) {
	inst, err := NewInstance([]Job{{NewOperation(1, 1)}}, 2, 2)
	require.NoError(t, err)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	res, err := dec.Decode(Genome{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Makespan)
	require.Len(t, res.Schedule, 2)
	for _, fs := range res.Schedule {
		require.Len(t, fs, 2)
		for _, ms := range fs {
			require.Empty(t, ms)
		}
	}
}

func TestDecode_SingleAvailableMachineWins(t *testing.T) {
	// Operation 1 of the job runs only on machine 0, so it must land there
	// even though idle machine 1 would give a smaller trial makespan if it
	// were permitted.
	inst, err := NewInstance([]Job{
		{
			NewOperation(5, 5),
			NewOperation(50, -1),
		},
	}, 2, 1)
	require.NoError(t, err)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	res, err := dec.Decode(Genome{Ops: []int{0, 0}, Factories: []int{0, 0}})
	require.NoError(t, err)
	require.Equal(t, MachineSchedule{
		{Job: 0, Start: 0, End: 5},
		{Job: 0, Start: 5, End: 55},
	}, res.Schedule[0][0])
	require.Empty(t, res.Schedule[0][1])
	assert.Equal(t, 55, res.Makespan)
}

func TestDecode_NoAvailableMachine(t *testing.T) {
	inst, err := NewInstance([]Job{{NewOperation(-1, -1)}}, 2, 1)
	require.NoError(t, err)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	_, err = dec.Decode(Genome{Ops: []int{0}, Factories: []int{0}})
	require.ErrorIs(t, err, ErrNoAvailableMachine)
}

func TestDecode_TieBreakPrefersLowestMachine(t *testing.T) {
	// Both machines are idle and equally fast: strict < comparison keeps
	// machine 0.
	inst, err := NewInstance([]Job{{NewOperation(4, 4)}}, 2, 1)
	require.NoError(t, err)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	res, err := dec.Decode(Genome{Ops: []int{0}, Factories: []int{0}})
	require.NoError(t, err)
	require.Len(t, res.Schedule[0][0], 1)
	require.Empty(t, res.Schedule[0][1])
}

func TestDecode_RandomGenomesHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := RandomInstance(6, 4, 3, 1, 4, 1, 20, 0.25, rng)
	dec, err := NewDecoder(inst)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		g := RandomGenome(inst, rng)
		require.NoError(t, g.Validate(inst))

		res, err := dec.Decode(g)
		require.NoError(t, err)
		require.Equal(t, len(g.Ops), res.Schedule.Slots())
		for _, fs := range res.Schedule {
			for _, ms := range fs {
				requireNonOverlapping(t, ms)
			}
		}
		requirePrecedence(t, res.Schedule)
		require.Equal(t, res.Makespan, res.Schedule.Makespan())

		par, err := dec.DecodeParallel(g)
		require.NoError(t, err)
		require.Equal(t, res, par)
	}
}
