package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"lukechampine.com/frand"

	"github.com/KikaPereira03/cakesort/internal/board"
	"github.com/KikaPereira03/cakesort/internal/level"
	"github.com/KikaPereira03/cakesort/internal/solver"
)

var (
	ErrGenerationFailed = errors.New("failed to generate solvable level within timeout")
	ErrTooFewTubes      = errors.New("grid too small for requested colors")
)

// rng is the subset of math/rand behavior generation needs. Both *rand.Rand
// (seeded, reproducible) and *frand.RNG (system entropy) satisfy it.
type rng interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Generator creates random cake-sort levels: one capacity-worth of layers per
// color, shuffled and dealt into the non-reserved tubes.
type Generator struct {
	options *Options
	rng     rng
}

// New creates a level generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(level.DifficultyMedium)
	}

	var r rng
	if options.Seed != 0 {
		r = rand.New(rand.NewSource(options.Seed))
	} else {
		r = frand.New()
	}

	return &Generator{
		options: options,
		rng:     r,
	}
}

// Generate creates a new level. When EnsureSolvable is set, each dealt board
// is checked with an A* search and redealt until one passes; otherwise the
// first deal is returned with an estimated par.
func (g *Generator) Generate() (*level.Level, error) {
	opts := g.options
	tubes := opts.Width * opts.Height

	colors := opts.Colors
	if colors > tubes-2 {
		colors = tubes - 2
	}
	if colors < 2 {
		return nil, fmt.Errorf("%w: %dx%d grid supports at most %d colors",
			ErrTooFewTubes, opts.Width, opts.Height, tubes-2)
	}
	if _, err := board.NewGeometry(opts.Width, opts.Height, opts.Capacity); err != nil {
		return nil, err
	}

	start := time.Now()
	for {
		if opts.EnsureSolvable && time.Since(start) >= opts.Timeout {
			return nil, ErrGenerationFailed
		}

		lvl := g.deal(colors)
		if !opts.EnsureSolvable {
			// Rough estimate: half the total layer count.
			lvl.ParMoves = colors * opts.Capacity / 2
			return lvl, nil
		}

		par, err := g.verify(lvl)
		if err != nil {
			if errors.Is(err, solver.ErrNoSolution) || errors.Is(err, solver.ErrBudgetExceeded) {
				continue
			}
			return nil, err
		}
		lvl.ParMoves = par
		return lvl, nil
	}
}

// deal builds one candidate level: pick colors, mint a capacity-worth of
// same-kind layers per color with a constant cosmetic size, shuffle, and fill
// the non-reserved tubes in order.
func (g *Generator) deal(colors int) *level.Level {
	opts := g.options

	kinds := []byte(board.Alphabet)
	g.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	kinds = kinds[:colors]

	all := make([]board.Layer, 0, colors*opts.Capacity)
	for _, k := range kinds {
		size := g.rng.Intn(5) + 1
		for range opts.Capacity {
			all = append(all, board.Layer{Kind: k, Size: size})
		}
	}
	g.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	// One tube per color receives exactly capacity layers; the rest stay
	// empty as working room.
	stacks := make(map[int][]board.Layer, colors)
	for i, l := range all {
		idx := i / opts.Capacity
		stacks[idx] = append(stacks[idx], l)
	}

	return &level.Level{
		Difficulty: opts.Difficulty,
		Width:      opts.Width,
		Height:     opts.Height,
		Capacity:   opts.Capacity,
		Stacks:     stacks,
	}
}

// verify solves the candidate under the node budget and returns the found
// solution's length as the level's par.
func (g *Generator) verify(lvl *level.Level) (int, error) {
	b, err := lvl.Board()
	if err != nil {
		return 0, err
	}

	s := solver.New(b, &solver.Options{
		Algorithm: solver.AlgorithmAStar,
		Heuristic: solver.HeuristicAdvanced,
		MaxNodes:  g.options.MaxNodes,
	})
	res, err := s.Solve()
	if err != nil {
		return 0, err
	}
	return len(res.Moves), nil
}
