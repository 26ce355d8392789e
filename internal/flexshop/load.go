package flexshop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instance files ported from sentinel-based encodings mark unusable
// machines with a huge processing time; anything at or above this counts
// as unavailable, as does any negative time.
const unavailableSentinel = 100_000_000_000_000

type instanceFile struct {
	Machines  int         `yaml:"machines"`
	Factories int         `yaml:"factories"`
	Jobs      [][][]int   `yaml:"jobs"`
	Genome    *genomeFile `yaml:"genome"`
}

type genomeFile struct {
	Operations []int `yaml:"operations"`
	Factories  []int `yaml:"factories"`
}

// LoadFile reads a YAML instance file and, when present, its genome pair.
// The returned genome is nil if the file carries none.
func LoadFile(path string) (*Instance, *Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var f instanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	jobs := make([]Job, len(f.Jobs))
	for j, ops := range f.Jobs {
		job := make(Job, len(ops))
		for o, times := range ops {
			op := make(Operation, len(times))
			for m, t := range times {
				if t >= 0 && t < unavailableSentinel {
					op[m] = Cost{Time: t, Available: true}
				}
			}
			job[o] = op
		}
		jobs[j] = job
	}

	inst, err := NewInstance(jobs, f.Machines, f.Factories)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid instance %s: %w", path, err)
	}

	if f.Genome == nil {
		return inst, nil, nil
	}
	g := &Genome{Ops: f.Genome.Operations, Factories: f.Genome.Factories}
	if err := g.Validate(inst); err != nil {
		return nil, nil, fmt.Errorf("invalid genome %s: %w", path, err)
	}
	return inst, g, nil
}
