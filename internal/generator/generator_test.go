package generator

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/KikaPereira03/cakesort/internal/level"
	"github.com/KikaPereira03/cakesort/internal/solver"
)

func TestGenerateSeededIsReproducible(t *testing.T) {
	opts := func() *Options {
		o := DefaultOptions(level.DifficultyEasy)
		o.Seed = 42
		o.EnsureSolvable = false
		return o
	}

	a, err := New(opts()).Generate()
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, err := New(opts()).Generate()
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different levels (-first +second):\n%s", diff)
	}
}

func TestGenerateDealShape(t *testing.T) {
	opts := DefaultOptions(level.DifficultyMedium) // 4 colors
	opts.Seed = 7
	opts.EnsureSolvable = false

	lvl, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if lvl.Width != opts.Width || lvl.Height != opts.Height || lvl.Capacity != opts.Capacity {
		t.Fatalf("level shape %dx%d cap %d does not match options", lvl.Width, lvl.Height, lvl.Capacity)
	}
	if len(lvl.Stacks) != opts.Colors {
		t.Fatalf("%d tubes dealt, want one per color (%d)", len(lvl.Stacks), opts.Colors)
	}

	perKind := make(map[byte]int)
	for idx, stack := range lvl.Stacks {
		if len(stack) != opts.Capacity {
			t.Fatalf("tube %d holds %d layers, want exactly capacity %d", idx, len(stack), opts.Capacity)
		}
		for _, l := range stack {
			perKind[l.Kind]++
		}
	}
	if len(perKind) != opts.Colors {
		t.Fatalf("dealt %d distinct kinds, want %d", len(perKind), opts.Colors)
	}
	for k, n := range perKind {
		if n != opts.Capacity {
			t.Fatalf("kind %c dealt %d layers, want capacity %d", k, n, opts.Capacity)
		}
	}

	if want := opts.Colors * opts.Capacity / 2; lvl.ParMoves != want {
		t.Fatalf("estimated par = %d, want %d", lvl.ParMoves, want)
	}

	if _, err := lvl.Board(); err != nil {
		t.Fatalf("generated level does not build a board: %v", err)
	}
}

func TestGenerateCapsColorsAtTubeCount(t *testing.T) {
	opts := DefaultOptions(level.DifficultyExpert) // asks for 8 colors
	opts.Width = 2
	opts.Height = 2 // 4 tubes: room for at most 2 colors
	opts.Seed = 3
	opts.EnsureSolvable = false

	lvl, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(lvl.Stacks) != 2 {
		t.Fatalf("%d tubes dealt on a 2x2 grid, want 2", len(lvl.Stacks))
	}
}

func TestGenerateRejectsTinyGrid(t *testing.T) {
	opts := DefaultOptions(level.DifficultyEasy)
	opts.Width = 2
	opts.Height = 1 // 2 tubes: no room for colors plus working space
	opts.EnsureSolvable = false

	if _, err := New(opts).Generate(); err == nil {
		t.Fatalf("Generate should reject a grid with no working room")
	}
}

func TestGenerateEnsureSolvable(t *testing.T) {
	opts := DefaultOptions(level.DifficultyEasy)
	opts.Width = 2
	opts.Height = 2
	opts.Capacity = 2
	opts.Colors = 2
	opts.Seed = 11
	opts.EnsureSolvable = true
	opts.Timeout = 30 * time.Second
	opts.MaxNodes = 100_000

	lvl, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	b, err := lvl.Board()
	if err != nil {
		t.Fatalf("Board failed: %v", err)
	}
	res, err := solver.New(b, &solver.Options{
		Algorithm: solver.AlgorithmAStar,
		Heuristic: solver.HeuristicAdvanced,
		MaxNodes:  opts.MaxNodes,
	}).Solve()
	if err != nil {
		t.Fatalf("verified level did not re-solve: %v", err)
	}
	if lvl.ParMoves != len(res.Moves) {
		// The same deterministic search produced the par, so it must agree.
		t.Fatalf("par = %d, re-solve found %d moves", lvl.ParMoves, len(res.Moves))
	}

	sim := b.Clone()
	for i, m := range res.Moves {
		if err := sim.Apply(m); err != nil {
			t.Fatalf("replaying move %d (%s) failed: %v", i+1, m, err)
		}
	}
	if !sim.Solved() {
		t.Fatalf("replay did not solve the generated level")
	}
}
