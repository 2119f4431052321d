// Package ingest tokenizes the DOT-flavoured graph description format into
// a ready-to-solve (game.Game, game.Objective, time bound) triple. The
// tokenizer is a line-oriented regex scanner rather than a general
// grammar — the description format has no nesting beyond the fixed
// vertex/edge line shapes.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmoraite/ptgame/game"
	"github.com/dmoraite/ptgame/ingest/constraint"
	"github.com/dmoraite/ptgame/presburger"
)

var (
	vertexPattern = regexp.MustCompile(
		`^\s*(\w+)\s*\[\s*name\s*=\s*"([^"]+)"\s*,\s*player\s*=\s*(\d+)(?:\s*,\s*target\s*=\s*(\d+))?\s*\]\s*;?\s*$`)
	edgePattern = regexp.MustCompile(
		`^\s*(\w+)\s*->\s*(\w+)\s*\[\s*label\s*=\s*"([^"]*)"(?:\s*,\s*constraint\s*=\s*"([^"]*)")?\s*\]\s*;?\s*$`)
	timeBoundPattern = regexp.MustCompile(`^\s*//\s*time_bound:\s*(\d+)\s*$`)
	objectivePattern = regexp.MustCompile(`^\s*//\s*objective:\s*(\w+)(?:\s+(\d+))?\s*$`)
)

// Result bundles everything ingest produces from one description.
type Result struct {
	Game      *game.Game
	Objective game.Objective
	TimeBound int64 // 0 if the description gave no time_bound comment
	Warnings  []Warning
}

// Parse reads a description from r line by line, building a Game, an
// Objective derived from target-flagged vertices (and an optional
// `// objective: <kind> [B]` comment), and the file-level time bound if one
// was given.
func Parse(r io.Reader) (*Result, error) {
	g := game.New()
	vertexByID := make(map[string]game.VertexID)

	var (
		timeBound    int64
		objectiveRaw string
		objectiveArg int64
		warnings     []Warning
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "//"):
			if m := timeBoundPattern.FindStringSubmatch(line); m != nil {
				n, _ := strconv.ParseInt(m[1], 10, 64)
				timeBound = n
				continue
			}
			if m := objectivePattern.FindStringSubmatch(line); m != nil {
				objectiveRaw = m[1]
				if m[2] != "" {
					n, _ := strconv.ParseInt(m[2], 10, 64)
					objectiveArg = n
				}
				continue
			}
			continue
		case strings.Contains(trimmed, "digraph"), trimmed == "{", trimmed == "}":
			continue
		}

		if m := vertexPattern.FindStringSubmatch(line); m != nil {
			localID, name := m[1], m[2]
			player, _ := strconv.ParseInt(m[3], 10, 64)
			isTarget := m[4] == "1"

			vid := g.AddVertex(name, int(player), isTarget)
			vertexByID[localID] = vid
			continue
		}

		if m := edgePattern.FindStringSubmatch(line); m != nil {
			fromID, toID, label, constraintStr := m[1], m[2], m[3], m[4]

			from, ok := vertexByID[fromID]
			if !ok {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("edge references unknown vertex id %q", fromID)}
			}
			to, ok := vertexByID[toID]
			if !ok {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("edge references unknown vertex id %q", toID)}
			}

			f := presburger.True
			if constraintStr != "" {
				parsed, err := constraint.ParseFormula(constraintStr)
				if err != nil {
					warnings = append(warnings, Warning{Line: lineNo, Reason: fmt.Sprintf("unrecognised constraint %q, treated as trivially true: %v", constraintStr, err)})
				} else {
					f = parsed
				}
			}
			g.AddEdge(from, to, label, f)
			continue
		}

		return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("unrecognised line %q", line)}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading description: %w", err)
	}

	objective := buildObjective(g, objectiveRaw, objectiveArg)

	return &Result{
		Game:      g,
		Objective: objective,
		TimeBound: timeBound,
		Warnings:  warnings,
	}, nil
}

func buildObjective(g *game.Game, kindRaw string, bound int64) game.Objective {
	targets := g.Targets()
	switch kindRaw {
	case "safety":
		return game.NewObjective(game.Safety, targets, 0)
	case "time_bounded_reach":
		return game.NewObjective(game.TimeBoundedReach, targets, bound)
	case "time_bounded_safety":
		return game.NewObjective(game.TimeBoundedSafety, targets, bound)
	default:
		return game.NewObjective(game.Reachability, targets, 0)
	}
}
