// Package bench times a solver run and writes the result as a CSV row,
// matching the columns a benchmark harness needs to compare solvers
// across games.
package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/solve"
)

// Row is one benchmark observation: a named solver run against a named
// game, with its outcome and timing breakdown.
type Row struct {
	SolverName            string
	GameName              string
	Status                string // "ok" or "error"
	TotalSeconds          float64
	ConstraintEvalSeconds float64
	GraphTraversalSeconds float64
	StatesExplored        int64
}

// Header is the fixed CSV column order every Writer emits.
var Header = []string{
	"solver_name", "game_name", "status",
	"total_seconds", "constraint_eval_seconds", "graph_traversal_seconds", "states_explored",
}

// Run times a single solve.Solver.Solve call and returns the resulting Row.
// A solver error is recorded as Status "error" rather than propagated, so a
// batch of benchmark runs can continue past one unsupported combination.
func Run(solver solve.Solver, gameName string, g *game.Game, o game.Objective, timeBound int64) Row {
	start := time.Now()
	_, stats, err := solver.Solve(g, o, timeBound)
	total := time.Since(start).Seconds()

	row := Row{
		SolverName:            solver.Name(),
		GameName:              gameName,
		TotalSeconds:          total,
		ConstraintEvalSeconds: stats.ConstraintEvalSeconds,
		GraphTraversalSeconds: stats.GraphTraversalSeconds,
		StatesExplored:        stats.StatesExplored,
	}
	if err != nil {
		row.Status = "error"
	} else {
		row.Status = "ok"
	}
	return row
}

// Writer wraps encoding/csv so row quoting/escaping of game names is
// correct without hand-rolled string joining.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w and writes the fixed header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	return &Writer{csv: cw}, nil
}

// WriteRow appends one benchmark observation.
func (w *Writer) WriteRow(r Row) error {
	return w.csv.Write([]string{
		r.SolverName,
		r.GameName,
		r.Status,
		strconv.FormatFloat(r.TotalSeconds, 'f', 6, 64),
		strconv.FormatFloat(r.ConstraintEvalSeconds, 'f', 6, 64),
		strconv.FormatFloat(r.GraphTraversalSeconds, 'f', 6, 64),
		strconv.FormatInt(r.StatesExplored, 10),
	})
}

// Flush flushes the underlying csv.Writer and returns any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
