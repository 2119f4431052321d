// Package solve implements the two reachability solvers: a backwards
// time-indexed attractor (optimised, Reachability only) and a static
// time-unfolding controllable-predecessor fixpoint (the reference oracle,
// generalises to every Objective kind). Both return a Solution.
package solve

import "github.com/dmoraite/ptgame/game"

// Solution records, per vertex, which player wins from time 0 and — for a
// winning Player-0 vertex — an advisory first move. It is a plain record:
// no concurrency, no methods that mutate state after construction.
type Solution struct {
	winner   map[game.VertexID]int
	strategy map[game.VertexID]game.VertexID
}

func newSolution() *Solution {
	return &Solution{
		winner:   make(map[game.VertexID]int),
		strategy: make(map[game.VertexID]game.VertexID),
	}
}

// Winner returns the winning player (0 or 1) for v.
func (s *Solution) Winner(v game.VertexID) int {
	return s.winner[v]
}

// Strategy returns the advisory first move for a winning Player-0 vertex,
// and false if v is not winning for Player 0 or has no recorded move.
func (s *Solution) Strategy(v game.VertexID) (game.VertexID, bool) {
	w, ok := s.strategy[v]
	return w, ok
}

// WinningSet returns every vertex whose recorded winner is Player 0.
func (s *Solution) WinningSet() map[game.VertexID]bool {
	set := make(map[game.VertexID]bool)
	for v, w := range s.winner {
		if w == 0 {
			set[v] = true
		}
	}
	return set
}

func (s *Solution) setWinner(v game.VertexID, player int) {
	s.winner[v] = player
}

func (s *Solution) setStrategy(v game.VertexID, to game.VertexID) {
	s.strategy[v] = to
}
