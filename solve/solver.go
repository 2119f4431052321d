package solve

import "github.com/dmoraite/ptgame/game"

// Solver is the common interface both reachability solvers satisfy. The
// expansion solver is the reference implementation: it handles every
// Objective kind. The backward attractor is an optimised specialisation
// that only handles Reachability and returns SolverPrecondition otherwise.
type Solver interface {
	// Name returns a short identifier for benchmark/CSV output, e.g.
	// "backward-attractor" or "expansion".
	Name() string
	Solve(g *game.Game, o game.Objective, timeBound int64) (*Solution, Stats, error)
}

// SolverPrecondition reports that a solver was asked to handle an
// Objective kind it does not support.
type SolverPrecondition struct {
	Solver string
	Kind   game.ObjectiveKind
}

func (e *SolverPrecondition) Error() string {
	return "solve: " + e.Solver + " does not support objective kind " + e.Kind.String()
}

// Stats collects the timing and counters a benchmark CSV row needs. All
// durations are accumulated as the solver runs; states_explored counts
// (vertex, time) pair visits, so a pair that a solver revisits in a later
// sweep is counted again.
type Stats struct {
	ConstraintEvalSeconds float64
	GraphTraversalSeconds float64
	StatesExplored        int64
}
