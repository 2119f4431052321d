// Package bound supplies a default time horizon when no caller-supplied
// bound exists. It never overrides an explicit bound from a description
// file comment, a CLI flag, or a direct API call — it only fills the gap
// when none of those fired.
package bound

import (
	"fmt"

	"github.com/dmoraite/ptgame/game"
)

// Config tunes TimeBoundAdvisor.Recommend. The zero value is not usable;
// call DefaultConfig.
type Config struct {
	MinBound        int64
	MaxBound        int64
	StructureFactor float64
}

// DefaultConfig returns the advisor's baseline tuning.
func DefaultConfig() Config {
	return Config{MinBound: 10, MaxBound: 1000, StructureFactor: 2.0}
}

// Advisor derives a usable time bound from graph structure alone. It is
// advisory only: it never affects solver correctness, only which T a
// solver is handed when nothing else picked one.
type Advisor struct {
	Config Config
}

// NewAdvisor builds an Advisor with the given config.
func NewAdvisor(cfg Config) *Advisor { return &Advisor{Config: cfg} }

// Recommend returns clamp(structureFactor * (|V| + |E|), minBound, maxBound).
func (a *Advisor) Recommend(g *game.Game) int64 {
	structure := a.structureBound(g)
	return clamp(structure, a.Config.MinBound, a.Config.MaxBound)
}

// Explain renders the arithmetic behind Recommend for --verbose/--debug
// output.
func (a *Advisor) Explain(g *game.Game) string {
	n, m := g.NumVertices(), g.NumEdges()
	structure := a.structureBound(g)
	clamped := clamp(structure, a.Config.MinBound, a.Config.MaxBound)
	return fmt.Sprintf(
		"time bound advisor: structure_factor=%.2f * (|V|=%d + |E|=%d) = %d, clamped to [%d, %d] -> %d",
		a.Config.StructureFactor, n, m, structure, a.Config.MinBound, a.Config.MaxBound, clamped,
	)
}

func (a *Advisor) structureBound(g *game.Game) int64 {
	size := float64(g.NumVertices() + g.NumEdges())
	return int64(a.Config.StructureFactor * size)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
