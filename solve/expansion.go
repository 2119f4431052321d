package solve

import (
	"time"

	"github.com/dmoraite/ptgame/game"
)

// expandedState is a node of the time-unfolded static digraph: an
// original vertex paired with a time index in [0, T].
type expandedState struct {
	v game.VertexID
	t int64
}

// ExpansionSolver builds the static time-unfolded digraph V x {0..T},
// runs an untimed controllable-predecessor fixpoint over it, and projects
// the result back onto time 0. It is the reference oracle against which
// BackwardAttractorSolver is checked for Reachability, and it additionally
// handles Safety and the two time-bounded kinds that the backward solver
// declines.
type ExpansionSolver struct {
	Verbose bool
	Log     func(string, ...any)
}

// Name satisfies Solver.
func (s *ExpansionSolver) Name() string { return "expansion" }

// Solve unfolds the game, computes the controllable-predecessor fixpoint,
// and projects winning vertices at time 0 into a Solution.
//
// Reachability and TimeBoundedReach are solved directly: reachTargetSet
// seeds every (v,t) where the objective is already satisfied, which for
// plain Reachability means every time step a target vertex is standing
// on — matching BackwardAttractorSolver's unconditional target retention
// and required by scenarios S1 and S3.
//
// Safety and TimeBoundedSafety are solved by complementation: the Safety
// winner at (v,0) is the complement of the Reachability winner on the
// same target set. This solver takes that symmetry as the definition: it
// solves the dual Reachability problem and complements the winner
// partition.
func (s *ExpansionSolver) Solve(g *game.Game, o game.Objective, timeBound int64) (*Solution, Stats, error) {
	var stats Stats

	traversalStart := time.Now()
	succ := s.unfold(g, timeBound, &stats)

	switch o.Kind {
	case game.Reachability, game.TimeBoundedReach:
		target := s.reachTargetSet(g, o, timeBound)
		w := s.controllablePredecessorFixpoint(g, succ, target, timeBound, &stats)
		stats.GraphTraversalSeconds = time.Since(traversalStart).Seconds()
		return s.project(g, succ, w), stats, nil

	case game.Safety, game.TimeBoundedSafety:
		bound := timeBound
		if o.Kind == game.TimeBoundedSafety && o.TimeBound < bound {
			bound = o.TimeBound
		}
		dual := game.NewObjective(game.Reachability, o.Targets(), 0)
		target := s.reachTargetSet(g, dual, bound)
		w := s.controllablePredecessorFixpoint(g, succ, target, timeBound, &stats)
		stats.GraphTraversalSeconds = time.Since(traversalStart).Seconds()
		return s.projectComplement(g, succ, w), stats, nil

	default:
		return nil, Stats{}, &SolverPrecondition{Solver: s.Name(), Kind: o.Kind}
	}
}

// unfold builds, for every expandedState, the list of expandedStates
// reachable by a single step: (u,t) -> (v,t+1) whenever the edge u->v's
// constraint holds at time t. Constraint evaluation cost is charged to
// stats.ConstraintEvalSeconds; this loop is O((|V|+|E|)*T).
func (s *ExpansionSolver) unfold(g *game.Game, timeBound int64, stats *Stats) map[expandedState][]expandedState {
	succ := make(map[expandedState][]expandedState)
	for t := int64(0); t < timeBound; t++ {
		for _, v := range g.Vertices() {
			evalStart := time.Now()
			moves := g.AvailableSuccessors(v, t)
			stats.ConstraintEvalSeconds += time.Since(evalStart).Seconds()
			stats.StatesExplored++

			from := expandedState{v, t}
			for _, to := range moves {
				succ[from] = append(succ[from], expandedState{to, t + 1})
			}
		}
	}
	return succ
}

// reachTargetSet builds Target' for a Reachability-kind objective: every
// (v,t) with t in [0, bound] where o.Satisfied(v,t) holds. For plain
// Reachability, Satisfied ignores t entirely, so a target vertex wins at
// every time step it can be standing on — including a dead-end target
// with no outgoing edge at all (mirrors BackwardAttractorSolver's
// unconditional target retention, and is what scenarios S1 and S3
// require). For TimeBoundedReach(B), Satisfied additionally requires
// t <= B, so the window narrows accordingly.
func (s *ExpansionSolver) reachTargetSet(g *game.Game, o game.Objective, bound int64) map[expandedState]bool {
	target := make(map[expandedState]bool)
	for t := int64(0); t <= bound; t++ {
		for _, v := range g.Vertices() {
			if o.Satisfied(v, t) {
				target[expandedState{v, t}] = true
			}
		}
	}
	return target
}

// controllablePredecessorFixpoint computes the greatest monotone set
// W ⊇ target such that every (u,t) in W\target satisfies the per-owner
// predicate: owner 0 needs some successor in W, owner 1 needs every
// successor in W and at least one successor. It iterates to a fixpoint,
// bounded by |V|*(T+1) additions.
func (s *ExpansionSolver) controllablePredecessorFixpoint(g *game.Game, succ map[expandedState][]expandedState, target map[expandedState]bool, timeBound int64, stats *Stats) map[expandedState]bool {
	w := make(map[expandedState]bool, len(target))
	for k := range target {
		w[k] = true
	}

	changed := true
	for changed {
		changed = false
		for t := timeBound; t >= 0; t-- {
			for _, v := range g.Vertices() {
				state := expandedState{v, t}
				if w[state] {
					continue
				}
				stats.StatesExplored++

				moves := succ[state]
				if len(moves) == 0 {
					continue
				}

				var include bool
				if g.Owner(v) == 0 {
					include = anyInExpanded(moves, w)
				} else {
					include = allInExpanded(moves, w)
				}
				if include {
					w[state] = true
					changed = true
				}
			}
		}
		s.logFixpoint(w)
	}
	return w
}

func anyInExpanded(moves []expandedState, w map[expandedState]bool) bool {
	for _, m := range moves {
		if w[m] {
			return true
		}
	}
	return false
}

func allInExpanded(moves []expandedState, w map[expandedState]bool) bool {
	for _, m := range moves {
		if !w[m] {
			return false
		}
	}
	return true
}

// project reads off the vertices winning for Player 0 at time 0 and
// attaches an advisory first move, preferring a successor that is itself
// in W at t=1 when one exists.
func (s *ExpansionSolver) project(g *game.Game, succ map[expandedState][]expandedState, w map[expandedState]bool) *Solution {
	solution := newSolution()
	for _, v := range g.Vertices() {
		state := expandedState{v, 0}
		if !w[state] {
			solution.setWinner(v, 1)
			continue
		}
		solution.setWinner(v, 0)
		if chosen, ok := bestMove(succ[state], w); ok {
			solution.setStrategy(v, chosen)
		}
	}
	return solution
}

// projectComplement is project's Safety-family counterpart: a vertex
// wins Safety at time 0 iff it does NOT win the dual Reachability problem
// computed into w. Its advisory strategy has no access to a "stay safe"
// fixpoint, so it falls back to any move available at t=0.
func (s *ExpansionSolver) projectComplement(g *game.Game, succ map[expandedState][]expandedState, w map[expandedState]bool) *Solution {
	solution := newSolution()
	for _, v := range g.Vertices() {
		state := expandedState{v, 0}
		if w[state] {
			solution.setWinner(v, 1)
			continue
		}
		solution.setWinner(v, 0)
		if moves := succ[state]; len(moves) > 0 {
			solution.setStrategy(v, moves[0].v)
		}
	}
	return solution
}

func bestMove(moves []expandedState, w map[expandedState]bool) (game.VertexID, bool) {
	if len(moves) == 0 {
		return 0, false
	}
	for _, m := range moves {
		if w[m] {
			return m.v, true
		}
	}
	return moves[0].v, true
}

func (s *ExpansionSolver) logFixpoint(w map[expandedState]bool) {
	if !s.Verbose || s.Log == nil {
		return
	}
	s.Log("fixpoint sweep: |W| = %d", len(w))
}

var _ Solver = (*ExpansionSolver)(nil)
