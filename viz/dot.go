// Package viz renders a solved game as a Graphviz DOT graph, coloring
// each vertex by its winning player so a solution can be eyeballed.
package viz

import (
	"fmt"
	"strings"

	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/solve"
)

// Colors used for the two winning players; Player 0 (reacher/safety
// survivor) in green, Player 1 in red, matching the convention of marking
// the objective-holder's winning region.
const (
	player0Color = "palegreen"
	player1Color = "lightcoral"
)

// DOT renders g and its Solution as a Graphviz digraph. Target vertices are
// drawn as double circles, the rest as circles; every vertex is filled by
// its winner's color. Strategy edges (the advisory first move from a Player-0-winning
// vertex) are bolded.
func DOT(g *game.Game, solution *solve.Solution) string {
	var sb strings.Builder

	sb.WriteString("digraph Game {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [style=filled];\n\n")

	for _, v := range g.Vertices() {
		shape := "circle"
		if g.IsTarget(v) {
			shape = "doublecircle"
		}
		color := player1Color
		if solution.Winner(v) == 0 {
			color = player0Color
		}
		fmt.Fprintf(&sb, "  %q [shape=%s, fillcolor=%s, label=%q];\n",
			g.Name(v), shape, color, fmt.Sprintf("%s (p%d)", g.Name(v), g.Owner(v)))
	}
	sb.WriteString("\n")

	strategyTo := make(map[game.VertexID]game.VertexID)
	for _, v := range g.Vertices() {
		if next, ok := solution.Strategy(v); ok {
			strategyTo[v] = next
		}
	}

	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		attrs := fmt.Sprintf("label=%q", e.Constraint.String())
		if next, ok := strategyTo[e.From]; ok && next == e.To {
			attrs += ", penwidth=2"
		}
		fmt.Fprintf(&sb, "  %q -> %q [%s];\n", g.Name(e.From), g.Name(e.To), attrs)
	}

	sb.WriteString("}\n")
	return sb.String()
}
