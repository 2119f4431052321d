// Command ptg solves a temporal reachability/safety game described in the
// DOT-flavoured ingest format and reports the winning region at time 0.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmoraite/ptgame/bench"
	"github.com/dmoraite/ptgame/bound"
	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/ingest"
	"github.com/dmoraite/ptgame/solve"
	"github.com/dmoraite/ptgame/viz"
)

func main() {
	app := &cli.App{
		Name:  "ptg",
		Usage: "solve a Presburger-temporal reachability game",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print solver summary lines"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "print per-iteration attractor/fixpoint traces"},
			&cli.Int64Flag{Name: "time-bound", Aliases: []string{"t"}, Usage: "override the solving time bound"},
			&cli.BoolFlag{Name: "validate", Usage: "report structural validation issues and exit"},
			&cli.BoolFlag{Name: "csv", Usage: "emit a single benchmark CSV row instead of the human-readable report"},
			&cli.BoolFlag{Name: "time-only", Usage: "with --csv, run the timing harness without printing the winning set"},
			&cli.StringFlag{Name: "solver", Aliases: []string{"s"}, Value: "expansion", Usage: "reachability | expansion"},
			&cli.BoolFlag{Name: "dot", Usage: "print a Graphviz DOT rendering of the solution instead of the text report"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	logger := log.New(os.Stderr, "", 0)

	input, gameName, err := openInput(ctx)
	if err != nil {
		return err
	}
	defer input.Close()

	result, err := ingest.Parse(input)
	if err != nil {
		return fmt.Errorf("ptg: %w", err)
	}
	for _, w := range result.Warnings {
		logger.Printf("warning: %s", w.String())
	}

	if errs := game.Validate(result.Game); len(errs) != 0 {
		for _, e := range errs {
			logger.Printf("validation: %v", e)
		}
		if ctx.Bool("validate") {
			return cli.Exit("validation failed", 1)
		}
		return cli.Exit("ptg: game failed validation, see above", 1)
	}
	if ctx.Bool("validate") {
		fmt.Println("ok: no validation issues found")
		return nil
	}

	timeBound := resolveTimeBound(ctx, result, logger)

	solver, err := selectSolver(ctx, logger)
	if err != nil {
		return err
	}

	if ctx.Bool("csv") {
		row := bench.Run(solver, gameName, result.Game, result.Objective, timeBound)
		writer, err := bench.NewWriter(os.Stdout)
		if err != nil {
			return fmt.Errorf("ptg: %w", err)
		}
		if err := writer.WriteRow(row); err != nil {
			return fmt.Errorf("ptg: %w", err)
		}
		return writer.Flush()
	}

	solution, stats, err := solver.Solve(result.Game, result.Objective, timeBound)
	if err != nil {
		return fmt.Errorf("ptg: %w", err)
	}

	if ctx.Bool("verbose") {
		logger.Printf("%s: %d states explored, constraint eval %.6fs, graph traversal %.6fs",
			solver.Name(), stats.StatesExplored, stats.ConstraintEvalSeconds, stats.GraphTraversalSeconds)
	}

	if ctx.Bool("dot") {
		fmt.Print(viz.DOT(result.Game, solution))
		return nil
	}

	printSolution(result.Game, solution)
	return nil
}

func openInput(ctx *cli.Context) (*os.File, string, error) {
	if ctx.Args().Len() == 0 {
		return os.Stdin, "stdin", nil
	}
	path := ctx.Args().Get(0)
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("ptg: opening %s: %w", path, err)
	}
	return f, path, nil
}

func resolveTimeBound(ctx *cli.Context, result *ingest.Result, logger *log.Logger) int64 {
	if ctx.IsSet("time-bound") {
		return ctx.Int64("time-bound")
	}
	if result.TimeBound > 0 {
		return result.TimeBound
	}
	advisor := bound.NewAdvisor(bound.DefaultConfig())
	recommended := advisor.Recommend(result.Game)
	if ctx.Bool("verbose") || ctx.Bool("debug") {
		logger.Println(advisor.Explain(result.Game))
	}
	return recommended
}

func selectSolver(ctx *cli.Context, logger *log.Logger) (solve.Solver, error) {
	debug := ctx.Bool("debug")
	logFn := func(format string, args ...any) { logger.Printf(format, args...) }

	switch ctx.String("solver") {
	case "reachability", "backward-attractor":
		return &solve.BackwardAttractorSolver{Verbose: debug, Log: logFn}, nil
	case "expansion":
		return &solve.ExpansionSolver{Verbose: debug, Log: logFn}, nil
	default:
		return nil, cli.Exit(fmt.Sprintf("ptg: unknown solver %q", ctx.String("solver")), 1)
	}
}

func printSolution(g *game.Game, solution *solve.Solution) {
	for _, v := range g.Vertices() {
		winner := solution.Winner(v)
		line := fmt.Sprintf("%s: player %d wins", g.Name(v), winner)
		if next, ok := solution.Strategy(v); ok {
			line += fmt.Sprintf(" (move to %s)", g.Name(next))
		}
		fmt.Println(line)
	}
}
