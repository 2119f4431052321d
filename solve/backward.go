package solve

import (
	"time"

	"github.com/dmoraite/ptgame/game"
)

// BackwardAttractorSolver computes the Player-0 winning region at time 0
// by iterating a time-indexed backwards fixpoint from the time bound down
// to zero. It only handles Reachability objectives — every other kind
// returns SolverPrecondition; callers needing Safety or time-bounded
// objectives should use ExpansionSolver, which generalises the same
// controllable-predecessor idea to an arbitrary target set.
//
// The fixpoint is time-sliced, not accumulating: each iteration replaces
// the attractor set rather than unioning into it. A target vertex wins at
// every time step it is standing on, but a non-target vertex only wins by
// having a move into the prior step's attractor; nothing else carries over
// between sweeps. Because targets are kept at every step, a vertex wins at
// time 0 iff Player 0 can force the play onto a target at some step in
// [0, T], not only at exactly T.
type BackwardAttractorSolver struct {
	Verbose bool
	Log     func(string, ...any)
}

// Name satisfies Solver.
func (s *BackwardAttractorSolver) Name() string { return "backward-attractor" }

// Solve runs the backwards attractor fixpoint and returns the resulting
// Solution plus timing/counter statistics.
func (s *BackwardAttractorSolver) Solve(g *game.Game, o game.Objective, timeBound int64) (*Solution, Stats, error) {
	if o.Kind != game.Reachability {
		return nil, Stats{}, &SolverPrecondition{Solver: s.Name(), Kind: o.Kind}
	}

	var stats Stats

	attractor := make(map[game.VertexID]bool)
	for _, v := range o.Targets() {
		attractor[v] = true
	}
	s.logAttractor(timeBound, attractor, g)

	vertices := g.Vertices()
	traversalStart := time.Now()
	for t := timeBound - 1; t >= 0; t-- {
		next := make(map[game.VertexID]bool)
		for _, v := range vertices {
			stats.StatesExplored++

			// A target vertex is won by simply standing on it, at any
			// time, independent of whether it has a move at all — this
			// is what makes a dead-end target still show up as a winner.
			if o.IsTarget(v) {
				next[v] = true
				continue
			}

			evalStart := time.Now()
			moves := g.AvailableSuccessors(v, t)
			stats.ConstraintEvalSeconds += time.Since(evalStart).Seconds()

			if len(moves) == 0 {
				continue
			}

			switch g.Owner(v) {
			case 0:
				if anyIn(moves, attractor) {
					next[v] = true
				}
			case 1:
				if allIn(moves, attractor) {
					next[v] = true
				}
			}
		}
		attractor = next
		s.logAttractor(t, attractor, g)
	}
	stats.GraphTraversalSeconds = time.Since(traversalStart).Seconds()

	solution := newSolution()
	for _, v := range vertices {
		if attractor[v] {
			solution.setWinner(v, 0)
			if moves := g.AvailableSuccessors(v, 0); len(moves) > 0 {
				solution.setStrategy(v, moves[0])
			}
		} else {
			solution.setWinner(v, 1)
		}
	}

	return solution, stats, nil
}

func anyIn(moves []game.VertexID, set map[game.VertexID]bool) bool {
	for _, m := range moves {
		if set[m] {
			return true
		}
	}
	return false
}

func allIn(moves []game.VertexID, set map[game.VertexID]bool) bool {
	for _, m := range moves {
		if !set[m] {
			return false
		}
	}
	return true
}

func (s *BackwardAttractorSolver) logAttractor(t int64, attractor map[game.VertexID]bool, g *game.Game) {
	if !s.Verbose || s.Log == nil {
		return
	}
	names := make([]string, 0, len(attractor))
	for v := range attractor {
		names = append(names, g.Name(v))
	}
	s.Log("time %d: attractor has %d vertices: %v", t, len(attractor), names)
}

var _ Solver = (*BackwardAttractorSolver)(nil)
