package board

import (
	"errors"
	"strings"
	"testing"
)

func mustGeometry(t *testing.T, width, height, capacity int) *Geometry {
	t.Helper()
	g, err := NewGeometry(width, height, capacity)
	if err != nil {
		t.Fatalf("NewGeometry(%d, %d, %d) failed: %v", width, height, capacity, err)
	}
	return g
}

func mustLayers(t *testing.T, s string) []Layer {
	t.Helper()
	var out []Layer
	for _, tok := range strings.Fields(s) {
		l, err := ParseLayer(tok)
		if err != nil {
			t.Fatalf("ParseLayer(%q) failed: %v", tok, err)
		}
		out = append(out, l)
	}
	return out
}

func mustBoard(t *testing.T, geo *Geometry, stacks map[int]string) *Board {
	t.Helper()
	parsed := make(map[int][]Layer, len(stacks))
	for idx, s := range stacks {
		parsed[idx] = mustLayers(t, s)
	}
	b, err := NewFromStacks(geo, parsed)
	if err != nil {
		t.Fatalf("NewFromStacks failed: %v", err)
	}
	return b
}

func TestSolvedAlreadySolved(t *testing.T) {
	// 2x1 board, capacity 2: one complete tube, one empty tube.
	b := mustBoard(t, mustGeometry(t, 2, 1, 2), map[int]string{0: "R2 R2"})
	if !b.Solved() {
		t.Fatalf("board with one complete and one empty tube should be solved")
	}
}

func TestSolvedCompleteTubeSatisfiesWithoutEmptiness(t *testing.T) {
	b := mustBoard(t, mustGeometry(t, 2, 1, 3), map[int]string{
		0: "G3 G3 G3",
		1: "R2 R2 R2",
	})
	if !b.Solved() {
		t.Fatalf("full single-kind tubes must count as complete")
	}
}

func TestSolvedPartialProgressIsNotSolved(t *testing.T) {
	// Lifting the green layer out of a mixed tube makes progress but cannot
	// finish: neither resulting tube is full.
	b := mustBoard(t, mustGeometry(t, 2, 1, 2), map[int]string{0: "R2 G3"})

	if err := b.Apply(Move{From: 0, Pos: 1, To: 1}); err != nil {
		t.Fatalf("lifting position 1 onto the empty tube should succeed: %v", err)
	}
	if got, want := b.Key(), "R2|G3"; got != want {
		t.Fatalf("board after move = %q, want %q", got, want)
	}
	if b.Solved() {
		t.Fatalf("two half-filled tubes must not count as solved")
	}
	if b.Moves() != 1 {
		t.Fatalf("move counter = %d, want 1", b.Moves())
	}
}

func TestApplySameTubeAlwaysRejected(t *testing.T) {
	cases := []struct {
		name   string
		stacks map[int]string
		move   Move
	}{
		{"empty board", nil, Move{From: 0, Pos: 0, To: 0}},
		{"occupied tube", map[int]string{0: "R2 R2"}, Move{From: 0, Pos: 0, To: 0}},
		{"out of range position ignored", map[int]string{0: "R2"}, Move{From: 0, Pos: 99, To: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, mustGeometry(t, 2, 1, 2), tc.stacks)
			if err := b.Apply(tc.move); !errors.Is(err, ErrSameTube) {
				t.Fatalf("Apply(%v) = %v, want ErrSameTube", tc.move, err)
			}
		})
	}
}

func TestApplyValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		move Move
		want error
	}{
		{"negative from", Move{From: -1, Pos: 0, To: 0}, ErrTubeIndex},
		{"from past end", Move{From: 4, Pos: 0, To: 0}, ErrTubeIndex},
		{"to past end", Move{From: 0, Pos: 0, To: 4}, ErrTubeIndex},
		{"negative position", Move{From: 0, Pos: -1, To: 1}, ErrLayerIndex},
		{"position past stack", Move{From: 0, Pos: 2, To: 1}, ErrLayerIndex},
		{"empty source", Move{From: 2, Pos: 0, To: 3}, ErrLayerIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, mustGeometry(t, 2, 2, 3), map[int]string{0: "R2 R2"})
			before := b.Key()
			if err := b.Apply(tc.move); !errors.Is(err, tc.want) {
				t.Fatalf("Apply(%v) = %v, want %v", tc.move, err, tc.want)
			}
			if got := b.Key(); got != before {
				t.Fatalf("rejected move mutated the board: %q -> %q", before, got)
			}
		})
	}
}

func TestApplyRejectedPlacementIsAtomic(t *testing.T) {
	cases := []struct {
		name   string
		stacks map[int]string
		move   Move
	}{
		{
			name:   "kind mismatch on destination top",
			stacks: map[int]string{0: "R2 G3 R2", 1: "B1"},
			move:   Move{From: 0, Pos: 1, To: 1},
		},
		{
			name:   "destination full",
			stacks: map[int]string{0: "R2 R2", 1: "R2 R2 R2"},
			move:   Move{From: 0, Pos: 0, To: 1},
		},
		{
			name:   "middle lift reinserted at original position",
			stacks: map[int]string{0: "R2 B1 G3", 1: "Y4"},
			move:   Move{From: 0, Pos: 1, To: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, mustGeometry(t, 2, 1, 3), tc.stacks)
			before := b.Key()
			beforeMoves := b.Moves()

			if err := b.Apply(tc.move); !errors.Is(err, ErrCannotPlace) {
				t.Fatalf("Apply(%v) = %v, want ErrCannotPlace", tc.move, err)
			}
			if got := b.Key(); got != before {
				t.Fatalf("rejected move left the board changed:\n before %q\n after  %q", before, got)
			}
			if b.Moves() != beforeMoves {
				t.Fatalf("rejected move changed the move counter")
			}
		})
	}
}

func TestApplyLiftFromAnyPosition(t *testing.T) {
	// Lifting the bottom layer shifts the rest down and places it on top of
	// the destination.
	b := mustBoard(t, mustGeometry(t, 2, 1, 3), map[int]string{
		0: "R2 G3 G3",
		1: "R2",
	})
	if err := b.Apply(Move{From: 0, Pos: 0, To: 1}); err != nil {
		t.Fatalf("bottom lift failed: %v", err)
	}
	if got, want := b.Key(), "G3 G3|R2 R2"; got != want {
		t.Fatalf("board = %q, want %q", got, want)
	}
}

func TestNewFromStacksValidation(t *testing.T) {
	geo := mustGeometry(t, 2, 1, 2)
	cases := []struct {
		name   string
		stacks map[int][]Layer
		want   error
	}{
		{"index out of range", map[int][]Layer{5: {{Kind: 'R', Size: 1}}}, ErrTubeIndex},
		{"over capacity", map[int][]Layer{0: {{Kind: 'R', Size: 1}, {Kind: 'R', Size: 1}, {Kind: 'R', Size: 1}}}, ErrTubeFull},
		{"unknown kind", map[int][]Layer{0: {{Kind: 'Z', Size: 1}}}, ErrInvalidKind},
		{"bad size", map[int][]Layer{0: {{Kind: 'R', Size: 0}}}, ErrInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromStacks(geo, tc.stacks); !errors.Is(err, tc.want) {
				t.Fatalf("NewFromStacks = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewFromStacksPlacesMixedStacksVerbatim(t *testing.T) {
	// The same-kind rule binds moves, not setup: levels start mixed.
	b := mustBoard(t, mustGeometry(t, 2, 1, 3), map[int]string{0: "R2 G3 B1"})
	if got, want := b.Key(), "R2 G3 B1|"; got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, mustGeometry(t, 2, 1, 2), map[int]string{0: "R2 G3"})
	before := b.Key()

	clone := b.Clone()
	if err := clone.Apply(Move{From: 0, Pos: 1, To: 1}); err != nil {
		t.Fatalf("Apply on clone failed: %v", err)
	}

	if b.Key() != before {
		t.Fatalf("mutating a clone changed the original: %q", b.Key())
	}
	if clone.Key() == before {
		t.Fatalf("clone did not change after Apply")
	}
	if clone.Geometry() != b.Geometry() {
		t.Fatalf("clone should share the geometry pointer")
	}
}
