package solve

import (
	"errors"
	"testing"

	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/presburger"
)

// buildChain builds a straight-line reacher's chain v0 -> v1 -> ... -> vn,
// each edge active whenever time >= its index, with vn the sole target.
func buildChain(n int) (*game.Game, game.Objective) {
	g := game.New()
	ids := make([]game.VertexID, n+1)
	for i := 0; i <= n; i++ {
		ids[i] = g.AddVertex("v"+string(rune('0'+i)), 0, i == n)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(ids[i], ids[i+1], "step", timeGe(int64(i)))
	}
	o := game.NewObjective(game.Reachability, []game.VertexID{ids[n]}, 0)
	return g, o
}

// Property 1: solver equivalence — BackwardAttractorSolver and
// ExpansionSolver must agree on the winning set for every Reachability
// game and time bound.
func TestPropertySolverEquivalence(t *testing.T) {
	cases := []struct {
		name string
		g    *game.Game
		o    game.Objective
		t    int64
	}{}
	g1, o1 := buildChain(3)
	cases = append(cases, struct {
		name string
		g    *game.Game
		o    game.Objective
		t    int64
	}{"chain-3-bound-5", g1, o1, 5})

	g2, o2 := buildChain(1)
	cases = append(cases, struct {
		name string
		g    *game.Game
		o    game.Objective
		t    int64
	}{"chain-1-bound-0", g2, o2, 0})

	for _, c := range cases {
		backward := &BackwardAttractorSolver{}
		expansion := &ExpansionSolver{}

		bSol, _, err := backward.Solve(c.g, c.o, c.t)
		if err != nil {
			t.Fatalf("%s: backward Solve() error = %v", c.name, err)
		}
		eSol, _, err := expansion.Solve(c.g, c.o, c.t)
		if err != nil {
			t.Fatalf("%s: expansion Solve() error = %v", c.name, err)
		}

		bSet, eSet := bSol.WinningSet(), eSol.WinningSet()
		for _, v := range c.g.Vertices() {
			if bSet[v] != eSet[v] {
				t.Errorf("%s: vertex %q: backward winner-set membership %v != expansion %v",
					c.name, c.g.Name(v), bSet[v], eSet[v])
			}
		}
	}
}

// Property 2: target membership at T=0 — the winning set equals exactly
// targets(O).
func TestPropertyTargetMembershipAtZero(t *testing.T) {
	g, o := buildChain(3)
	for _, solver := range []Solver{&BackwardAttractorSolver{}, &ExpansionSolver{}} {
		sol, _, err := solver.Solve(g, o, 0)
		if err != nil {
			t.Fatalf("%s: Solve() error = %v", solver.Name(), err)
		}
		got := sol.WinningSet()
		want := map[game.VertexID]bool{}
		for _, v := range o.Targets() {
			want[v] = true
		}
		if len(got) != len(want) {
			t.Fatalf("%s: WinningSet() at T=0 = %v, want exactly targets %v", solver.Name(), got, want)
		}
		for v := range want {
			if !got[v] {
				t.Errorf("%s: WinningSet() at T=0 missing target %q", solver.Name(), g.Name(v))
			}
		}
	}
}

// Property 3: monotonicity in T, checked here for ExpansionSolver — the
// winning set at T+1 is a superset of the winning set at T.
// BackwardAttractorSolver keeps target vertices at every time step, so it
// agrees with ExpansionSolver (Property 1) and is monotone as well.
func TestPropertyExpansionMonotoneInTimeBound(t *testing.T) {
	g, o := buildChain(3)
	solver := &ExpansionSolver{}

	var prev map[game.VertexID]bool
	for tBound := int64(0); tBound <= 4; tBound++ {
		sol, _, err := solver.Solve(g, o, tBound)
		if err != nil {
			t.Fatalf("Solve(T=%d) error = %v", tBound, err)
		}
		cur := sol.WinningSet()
		if prev != nil {
			for v := range prev {
				if !cur[v] {
					t.Errorf("T=%d winning set %v is not a superset of T=%d winning set %v",
						tBound, cur, tBound-1, prev)
				}
			}
		}
		prev = cur
	}
}

// Property 4: determinism — two invocations on equal inputs produce equal
// winner sets.
func TestPropertyDeterminism(t *testing.T) {
	g, o := buildChain(3)
	for _, solver := range []Solver{&BackwardAttractorSolver{}, &ExpansionSolver{}} {
		first, _, err := solver.Solve(g, o, 5)
		if err != nil {
			t.Fatalf("%s: Solve() error = %v", solver.Name(), err)
		}
		second, _, err := solver.Solve(g, o, 5)
		if err != nil {
			t.Fatalf("%s: Solve() error = %v", solver.Name(), err)
		}
		a, b := first.WinningSet(), second.WinningSet()
		if len(a) != len(b) {
			t.Fatalf("%s: non-deterministic winning set sizes %d vs %d", solver.Name(), len(a), len(b))
		}
		for v := range a {
			if !b[v] {
				t.Errorf("%s: non-deterministic winning set: %v vs %v", solver.Name(), a, b)
			}
		}
	}
}

func TestBackwardAttractorRejectsNonReachability(t *testing.T) {
	g, _ := buildChain(1)
	o := game.NewObjective(game.Safety, []game.VertexID{}, 0)
	_, _, err := (&BackwardAttractorSolver{}).Solve(g, o, 1)
	if err == nil {
		t.Fatalf("expected SolverPrecondition for a non-Reachability objective")
	}
	var precondition *SolverPrecondition
	if !errors.As(err, &precondition) {
		t.Errorf("expected *SolverPrecondition, got %T: %v", err, err)
	}
}

func TestExpansionSolverHandlesAllObjectiveKinds(t *testing.T) {
	g := game.New()
	v0 := g.AddVertex("v0", 0, false)
	v1 := g.AddVertex("v1", 0, true)
	g.AddEdge(v0, v1, "go", presburger.Ge(presburger.Var("time"), presburger.Const(0)))
	g.AddEdge(v1, v1, "loop", presburger.Ge(presburger.Var("time"), presburger.Const(0)))

	kinds := []game.ObjectiveKind{game.Reachability, game.Safety, game.TimeBoundedReach, game.TimeBoundedSafety}
	for _, kind := range kinds {
		o := game.NewObjective(kind, []game.VertexID{v1}, 2)
		if _, _, err := (&ExpansionSolver{}).Solve(g, o, 3); err != nil {
			t.Errorf("ExpansionSolver.Solve(%v) error = %v", kind, err)
		}
	}
}
