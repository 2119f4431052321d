package game

import (
	"testing"

	"github.com/dmoraite/ptgame/presburger"
)

func timeLe(n int64) presburger.Formula {
	return presburger.Le(presburger.Var("time"), presburger.Const(n))
}

func TestAddVertexAssignsSequentialIDs(t *testing.T) {
	g := New()
	a := g.AddVertex("a", 0, false)
	b := g.AddVertex("b", 1, true)
	if a != 0 || b != 1 {
		t.Errorf("AddVertex ids = %d, %d, want 0, 1", a, b)
	}
}

func TestAddVertexDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on duplicate vertex name")
		}
	}()
	g := New()
	g.AddVertex("a", 0, false)
	g.AddVertex("a", 1, false)
}

func TestVertexByName(t *testing.T) {
	g := New()
	a := g.AddVertex("start", 0, false)
	id, ok := g.VertexByName("start")
	if !ok || id != a {
		t.Errorf("VertexByName(%q) = %d, %v, want %d, true", "start", id, ok, a)
	}
	if _, ok := g.VertexByName("missing"); ok {
		t.Errorf("VertexByName(%q) = found, want not found", "missing")
	}
}

func TestAvailableSuccessorsFiltersByConstraint(t *testing.T) {
	g := New()
	a := g.AddVertex("a", 0, false)
	b := g.AddVertex("b", 1, true)
	g.AddEdge(a, b, "early", timeLe(2))

	if got := g.AvailableSuccessors(a, 1); len(got) != 1 || got[0] != b {
		t.Errorf("AvailableSuccessors(a, 1) = %v, want [%d]", got, b)
	}
	if got := g.AvailableSuccessors(a, 5); len(got) != 0 {
		t.Errorf("AvailableSuccessors(a, 5) = %v, want empty", got)
	}
}

func TestHasAvailableSuccessorMatchesAvailableSuccessors(t *testing.T) {
	g := New()
	a := g.AddVertex("a", 0, false)
	b := g.AddVertex("b", 1, true)
	g.AddEdge(a, b, "early", timeLe(2))

	for _, tm := range []int64{0, 1, 2, 3, 10} {
		want := len(g.AvailableSuccessors(a, tm)) > 0
		if got := g.HasAvailableSuccessor(a, tm); got != want {
			t.Errorf("HasAvailableSuccessor(a, %d) = %v, want %v", tm, got, want)
		}
	}
}

func TestTargetsReturnsFlaggedVertices(t *testing.T) {
	g := New()
	g.AddVertex("a", 0, false)
	b := g.AddVertex("b", 1, true)
	c := g.AddVertex("c", 0, true)

	got := g.Targets()
	want := map[VertexID]bool{b: true, c: true}
	if len(got) != len(want) {
		t.Fatalf("Targets() = %v, want vertices %v", got, want)
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("Targets() contains unexpected vertex %d", v)
		}
	}
}

func TestOutEdgesPreservesInsertionOrder(t *testing.T) {
	g := New()
	a := g.AddVertex("a", 0, false)
	b := g.AddVertex("b", 0, true)
	c := g.AddVertex("c", 0, true)
	e1 := g.AddEdge(a, b, "first", presburger.True)
	e2 := g.AddEdge(a, c, "second", presburger.True)

	got := g.OutEdges(a)
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Errorf("OutEdges(a) = %v, want [%d, %d]", got, e1, e2)
	}
}
