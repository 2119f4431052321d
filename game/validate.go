package game

import "fmt"

// ValidationError reports a structural defect found by Validate: a
// missing target, a dead vertex, or a constraint that never mentions
// time. Any of these aborts solving outright.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "game: validation error: " + e.Reason
}

// Validate checks the three structural preconditions a Game must satisfy
// before it may be handed to a solver:
//  1. at least one target vertex exists;
//  2. every vertex has at least one outgoing edge;
//  3. every edge constraint references time in its support.
//
// It returns every violation found rather than stopping at the first, so
// a caller building a diagnostic report (e.g. --validate) can show the
// whole picture in one pass.
func Validate(g *Game) []error {
	var errs []error

	if len(g.Targets()) == 0 {
		errs = append(errs, &ValidationError{Reason: "no target vertex declared"})
	}

	for _, id := range g.Vertices() {
		if len(g.OutEdges(id)) == 0 {
			errs = append(errs, &ValidationError{
				Reason: fmt.Sprintf("vertex %q has no outgoing edge", g.Name(id)),
			})
		}
	}

	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		if !e.Constraint.Support()["time"] {
			errs = append(errs, &ValidationError{
				Reason: fmt.Sprintf("edge %q -> %q (%s) never references time",
					g.Name(e.From), g.Name(e.To), e.Label),
			})
		}
	}

	return errs
}
