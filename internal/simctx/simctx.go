// Package simctx carries the explicit simulation context threaded through
// game/half-inning/at-bat boundaries instead of process-wide defaults,
// so callers can instantiate isolated contexts for testing.
package simctx

import (
	"math/rand"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

// Context bundles the tuning registry, park, single seeded RNG stream,
// and workload state that every resolver needs.
type Context struct {
	Tuning   *tuning.Registry
	Park     *ratings.Park
	RNG      *rand.Rand
	Workload *workload.State
}

// New builds a Context from a fixed seed: a single seeded RNG stream
// per game. Callers derive the seed with their own per-game seeding
// scheme (see internal/season) and never consult a thread-local
// default RNG.
func New(seed int64, tune *tuning.Registry, park *ratings.Park, ws *workload.State) *Context {
	return &Context{
		Tuning:   tune,
		Park:     park,
		RNG:      rand.New(rand.NewSource(seed)),
		Workload: ws,
	}
}

// Gauss returns a sample from N(mean, std).
func (c *Context) Gauss(mean, std float64) float64 {
	return mean + c.RNG.NormFloat64()*std
}

// Bernoulli draws true with probability p, clamped to [0, 1].
func (c *Context) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return c.RNG.Float64() < p
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
