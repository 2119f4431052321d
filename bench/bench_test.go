package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/presburger"
	"github.com/dmoraite/ptgame/solve"
)

func sampleGame() (*game.Game, game.Objective) {
	g := game.New()
	v0 := g.AddVertex("v0", 0, false)
	v1 := g.AddVertex("v1", 0, true)
	g.AddEdge(v0, v1, "go", presburger.Equal(presburger.Var("time"), presburger.Const(0)))
	return g, game.NewObjective(game.Reachability, []game.VertexID{v1}, 0)
}

func TestRunRecordsOkStatus(t *testing.T) {
	g, o := sampleGame()
	row := Run(&solve.BackwardAttractorSolver{}, "sample", g, o, 1)
	if row.Status != "ok" {
		t.Errorf("Status = %q, want %q", row.Status, "ok")
	}
	if row.SolverName != "backward-attractor" {
		t.Errorf("SolverName = %q, want %q", row.SolverName, "backward-attractor")
	}
}

func TestRunRecordsErrorStatusOnUnsupportedObjective(t *testing.T) {
	g, _ := sampleGame()
	unsupported := game.NewObjective(game.Safety, nil, 0)
	row := Run(&solve.BackwardAttractorSolver{}, "sample", g, unsupported, 1)
	if row.Status != "error" {
		t.Errorf("Status = %q, want %q", row.Status, "error")
	}
}

func TestWriterEmitsHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.WriteRow(Row{SolverName: "expansion", GameName: "s1", Status: "ok"}); err != nil {
		t.Fatalf("WriteRow() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, strings.Join(Header, ",")) {
		t.Errorf("output %q does not start with the expected header", out)
	}
	if !strings.Contains(out, "expansion,s1,ok") {
		t.Errorf("output %q missing the written row", out)
	}
}
