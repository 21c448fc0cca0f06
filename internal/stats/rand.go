package stats

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator seeded from seed. A zero seed is
// replaced with the current time; the seed actually used is returned so the
// run can be reproduced.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
