// Package idgen produces reproducible pseudo-random resource identifiers for test scenarios.
package idgen

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Generator is a seeded source of identifiers. Two Generators created with the same seed produce
// the same sequence. It is not safe for concurrent use.
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a Generator. A seed of zero means "pick one": the current time is used, and Seed
// reports the value chosen so that the run can be repeated.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

// IntN returns a number in the inclusive range [min, max]. If max < min the bounds are swapped.
func (g *Generator) IntN(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + g.rng.IntN(max-min+1)
}

// IDs returns n identifiers in the inclusive range [min, max], formatted as decimal strings.
// Duplicates are possible.
func (g *Generator) IDs(n, min, max int) []string {
	ret := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, strconv.Itoa(g.IntN(min, max)))
	}
	return ret
}
