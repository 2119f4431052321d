// Package game holds the temporal game model: an arena of vertices and
// edges, each edge guarded by a Presburger constraint over the global
// clock, plus the reachability-family objectives solved against it.
package game

import (
	"fmt"

	"github.com/dmoraite/ptgame/presburger"
)

// VertexID indexes into a Game's vertex arena.
type VertexID int

// EdgeID indexes into a Game's edge arena.
type EdgeID int

// Vertex is a node of the game graph: a unique name, an owning player, and
// whether it belongs to the objective's target set.
type Vertex struct {
	Name     string
	Owner    int // 0 (reacher) or 1 (safety)
	IsTarget bool

	out []EdgeID
}

// Edge is a directed, constraint-guarded transition between two vertices.
// Label is diagnostic only; Constraint gates availability by time.
type Edge struct {
	From, To   VertexID
	Label      string
	Constraint presburger.Formula
}

// Game is an arena-indexed directed multigraph: vertices and edges live in
// contiguous slices, addressed by small integer ids, with an outgoing
// adjacency list per vertex. It is built once by an ingest adapter and
// read only for the remainder of its life — solvers borrow it for the
// duration of a single solve and never mutate it.
type Game struct {
	vertices []Vertex
	edges    []Edge
	byName   map[string]VertexID
}

// New returns an empty Game ready for AddVertex/AddEdge calls.
func New() *Game {
	return &Game{byName: make(map[string]VertexID)}
}

// AddVertex appends a new vertex and returns its id. Name must be unique;
// a duplicate name is a programmer error and panics, since the ingest
// adapter is expected to enforce uniqueness before calling this low-level
// constructor.
func (g *Game) AddVertex(name string, owner int, isTarget bool) VertexID {
	if _, exists := g.byName[name]; exists {
		panic(fmt.Sprintf("game: duplicate vertex name %q", name))
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Name: name, Owner: owner, IsTarget: isTarget})
	g.byName[name] = id
	return id
}

// AddEdge appends a new edge from -> to and returns its id.
func (g *Game) AddEdge(from, to VertexID, label string, constraint presburger.Formula) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label, Constraint: constraint})
	g.vertices[from].out = append(g.vertices[from].out, id)
	return id
}

// VertexByName looks up a vertex id by its unique name.
func (g *Game) VertexByName(name string) (VertexID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// NumVertices returns the number of vertices in the arena.
func (g *Game) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges in the arena.
func (g *Game) NumEdges() int { return len(g.edges) }

// Vertices returns the ids of every vertex, in insertion order.
func (g *Game) Vertices() []VertexID {
	ids := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		ids[i] = VertexID(i)
	}
	return ids
}

// Edges returns the ids of every edge, in insertion order.
func (g *Game) Edges() []EdgeID {
	ids := make([]EdgeID, len(g.edges))
	for i := range g.edges {
		ids[i] = EdgeID(i)
	}
	return ids
}

// Vertex returns the vertex record for id.
func (g *Game) Vertex(id VertexID) Vertex { return g.vertices[id] }

// Edge returns the edge record for id.
func (g *Game) Edge(id EdgeID) Edge { return g.edges[id] }

// Name returns the vertex's diagnostic name.
func (g *Game) Name(id VertexID) string { return g.vertices[id].Name }

// Owner returns the vertex's owning player, 0 or 1.
func (g *Game) Owner(id VertexID) int { return g.vertices[id].Owner }

// IsTarget reports whether id belongs to the target set.
func (g *Game) IsTarget(id VertexID) bool { return g.vertices[id].IsTarget }

// OutEdges returns the ids of v's outgoing edges, in insertion order.
func (g *Game) OutEdges(v VertexID) []EdgeID {
	return g.vertices[v].out
}

// AvailableSuccessors returns the targets of v's outgoing edges whose
// constraint holds at time t, in the order the edges were added. An edge
// whose constraint is unsatisfied at t simply contributes no successor —
// it is not an error.
func (g *Game) AvailableSuccessors(v VertexID, t int64) []VertexID {
	env := presburger.Env{"time": t}
	out := g.vertices[v].out
	succ := make([]VertexID, 0, len(out))
	for _, eid := range out {
		e := g.edges[eid]
		if e.Constraint.Eval(env) {
			succ = append(succ, e.To)
		}
	}
	return succ
}

// HasAvailableSuccessor reports whether v has at least one available
// successor at time t, without allocating the full successor slice.
func (g *Game) HasAvailableSuccessor(v VertexID, t int64) bool {
	env := presburger.Env{"time": t}
	for _, eid := range g.vertices[v].out {
		if g.edges[eid].Constraint.Eval(env) {
			return true
		}
	}
	return false
}

// Targets returns the ids of every target vertex.
func (g *Game) Targets() []VertexID {
	var targets []VertexID
	for i, v := range g.vertices {
		if v.IsTarget {
			targets = append(targets, VertexID(i))
		}
	}
	return targets
}
