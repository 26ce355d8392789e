package flexshop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := RandomInstance(10, 5, 3, 2, 6, 1, 50, 0.4, rng)
	require.NoError(t, inst.Validate())
	require.Len(t, inst.Jobs, 10)

	for _, job := range inst.Jobs {
		require.GreaterOrEqual(t, len(job), 2)
		require.LessOrEqual(t, len(job), 6)
		for _, op := range job {
			avail := 0
			for _, c := range op {
				if c.Available {
					avail++
					require.GreaterOrEqual(t, c.Time, 1)
					require.LessOrEqual(t, c.Time, 50)
				}
			}
			require.Positive(t, avail, "operation must keep an available machine")
		}
	}
}

func TestRandomInstance_PanicsOnBadBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Panics(t, func() { RandomInstance(0, 1, 1, 1, 1, 1, 1, 0, rng) })
	require.Panics(t, func() { RandomInstance(1, 1, 1, 2, 1, 1, 1, 0, rng) })
	require.Panics(t, func() { RandomInstance(1, 1, 1, 1, 1, 5, 4, 0, rng) })
	require.Panics(t, func() { RandomInstance(1, 1, 1, 1, 1, 1, 1, 1.0, rng) })
	require.Panics(t, func() { RandomInstance(1, 1, 1, 1, 1, 1, 1, 0, nil) })
}

func TestRandomGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := RandomInstance(6, 3, 2, 1, 4, 1, 9, 0.2, rng)
	for i := 0; i < 20; i++ {
		g := RandomGenome(inst, rng)
		require.Len(t, g.Ops, inst.TotalOps())
		require.NoError(t, g.Validate(inst))
	}
}
