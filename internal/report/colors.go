package report

import (
	"fmt"
	"math/rand"
)

// Palette samples n distinct 24-bit colors for job coloring, rejecting
// candidates whose mean distance to the already chosen colors is too
// small. The threshold shrinks with n so sampling always terminates.
func Palette(n int, rng *rand.Rand) []string {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		panic("rng is nil")
	}

	const space = 1 << 24
	threshold := space / (3 * (n + 1))

	chosen := []int{rng.Intn(space)}
	for len(chosen) < n {
		c := rng.Intn(space)
		sum := 0
		for _, p := range chosen {
			d := c - p
			if d < 0 {
				d = -d
			}
			sum += d
		}
		if sum/len(chosen) < threshold {
			continue
		}
		dup := false
		for _, p := range chosen {
			if p == c {
				dup = true
				break
			}
		}
		if !dup {
			chosen = append(chosen, c)
		}
	}

	out := make([]string, n)
	for i, c := range chosen {
		out[i] = fmt.Sprintf("#%06x", c)
	}
	return out
}
