package solver

import (
	"strings"

	"github.com/KikaPereira03/cakesort/internal/board"
)

// Heuristic selects the cost-estimation strategy used by A*.
//
// Neither strategy is proven admissible — both may overestimate the remaining
// move count, so A* is not guaranteed to return a minimal solution. That is a
// documented tradeoff, not a bug; BFS is the optimal-length search.
type Heuristic int

const (
	// HeuristicNone always estimates 0, degrading A* to uniform-cost ordering.
	HeuristicNone Heuristic = iota

	// HeuristicBasic counts tubes that are neither empty nor complete.
	HeuristicBasic

	// HeuristicAdvanced penalizes color diversity and blocked layers per tube.
	HeuristicAdvanced
)

// ParseHeuristic maps a strategy name to a Heuristic. Unrecognized names map
// to HeuristicNone rather than failing.
func ParseHeuristic(name string) Heuristic {
	switch strings.ToLower(name) {
	case "basic":
		return HeuristicBasic
	case "advanced":
		return HeuristicAdvanced
	default:
		return HeuristicNone
	}
}

// String returns the heuristic's configuration name.
func (h Heuristic) String() string {
	switch h {
	case HeuristicBasic:
		return "basic"
	case HeuristicAdvanced:
		return "advanced"
	default:
		return "none"
	}
}

// Estimate returns the heuristic's cost estimate for b.
func (h Heuristic) Estimate(b *board.Board) int {
	switch h {
	case HeuristicBasic:
		return basicEstimate(b)
	case HeuristicAdvanced:
		return advancedEstimate(b)
	default:
		return 0
	}
}

// basicEstimate counts tubes that are neither empty nor complete — a rough
// proxy for remaining work.
func basicEstimate(b *board.Board) int {
	score := 0
	for idx := range b.Geometry().Tubes() {
		t := b.Tube(idx)
		if !t.IsEmpty() && !t.IsComplete() {
			score++
		}
	}
	return score
}

// advancedEstimate adds, per incomplete tube, twice the number of distinct
// kinds present plus one for every layer whose kind differs from the top
// layer's kind. The blocking scan covers the whole stack top-to-bottom, not
// just the contiguous run under the top.
func advancedEstimate(b *board.Board) int {
	score := 0
	for idx := range b.Geometry().Tubes() {
		t := b.Tube(idx)
		if t.IsComplete() {
			continue
		}

		score += 2 * t.KindCount()

		top, ok := t.Top()
		if !ok {
			continue
		}
		for i := t.Len() - 1; i >= 0; i-- {
			if t.Layer(i).Kind != top.Kind {
				score++
			}
		}
	}
	return score
}
