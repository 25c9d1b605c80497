package solver

import "github.com/KikaPereira03/cakesort/internal/board"

// candidates enumerates every (from, pos, to) triple worth attempting from b.
// A candidate is a proposal; the board's Apply is authoritative on legality.
//
// Enumeration order is fixed and load-bearing for deterministic tie-breaking:
// source tubes ascending, stack positions ascending from the bottom, then
// adjacent destinations in geometry order (up, down, left, right).
func candidates(b *board.Board, topOnly bool) []board.Move {
	geo := b.Geometry()
	var moves []board.Move
	for from := range geo.Tubes() {
		t := b.Tube(from)
		if t.IsEmpty() {
			continue
		}

		lo := 0
		if topOnly {
			lo = t.Len() - 1
		}
		for pos := lo; pos < t.Len(); pos++ {
			for _, to := range geo.Adjacent(from) {
				moves = append(moves, board.Move{From: from, Pos: pos, To: to})
			}
		}
	}
	return moves
}
