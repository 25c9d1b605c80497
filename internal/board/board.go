package board

import (
	"fmt"
	"slices"
	"strings"
)

// Board represents the state of one cake-sort puzzle: a grid of tubes plus a
// move counter. The only mutation path is Apply; a rejected move leaves the
// board byte-for-byte identical to before the attempt.
type Board struct {
	// geo describes the grid shape and tube capacity.
	// It is set at construction time and never mutated; clones share the pointer.
	geo *Geometry

	// tubes is the flat grid, addressed by row*width + col.
	tubes []Tube

	moves int
}

// Move identifies one transition: lift the layer at absolute position Pos in
// tube From and place it on top of tube To.
type Move struct {
	From int
	Pos  int
	To   int
}

// String renders the move as "from[pos]->to".
func (m Move) String() string {
	return fmt.Sprintf("%d[%d]->%d", m.From, m.Pos, m.To)
}

// New creates an empty Board with the given geometry.
func New(geo *Geometry) *Board {
	b := &Board{
		geo:   geo,
		tubes: make([]Tube, geo.Tubes()),
	}
	for i := range b.tubes {
		b.tubes[i].capacity = geo.Capacity
	}
	return b
}

// NewFromStacks creates a Board from a sparse initial assignment of layer
// stacks to tube indices; unlisted tubes start empty. Stacks are given
// bottom-to-top.
//
// Construction places layers verbatim, subject only to index bounds, capacity,
// and the layer alphabet. The same-kind stacking rule constrains moves, not
// setup — levels legitimately start with mixed stacks.
func NewFromStacks(geo *Geometry, stacks map[int][]Layer) (*Board, error) {
	b := New(geo)
	for idx, layers := range stacks {
		if err := b.validateTube(idx); err != nil {
			return nil, err
		}
		if len(layers) > geo.Capacity {
			return nil, fmt.Errorf("%w: tube %d assigned %d layers, capacity %d",
				ErrTubeFull, idx, len(layers), geo.Capacity)
		}
		for _, l := range layers {
			if err := validateLayer(l); err != nil {
				return nil, fmt.Errorf("tube %d: %w", idx, err)
			}
		}
		b.tubes[idx].layers = slices.Clone(layers)
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
// The geometry pointer is shared — Geometry is immutable after construction.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := &Board{
		geo:   b.geo,
		tubes: make([]Tube, len(b.tubes)),
		moves: b.moves,
	}
	for i := range b.tubes {
		clone.tubes[i] = Tube{
			layers:   slices.Clone(b.tubes[i].layers),
			capacity: b.tubes[i].capacity,
		}
	}
	return clone
}

// Geometry returns the board's Geometry.
func (b *Board) Geometry() *Geometry {
	return b.geo
}

// Tube returns the tube at idx for inspection. Callers must treat the
// returned tube as read-only; all mutation goes through Apply.
// Returns nil for an out-of-range index.
func (b *Board) Tube(idx int) *Tube {
	if idx < 0 || idx >= len(b.tubes) {
		return nil
	}
	return &b.tubes[idx]
}

// Moves returns the number of successful moves applied so far.
func (b *Board) Moves() int {
	return b.moves
}

// Apply attempts the given move. On success both tubes are mutated and the
// move counter increments. On failure the board is restored exactly and a
// typed error is returned; no partial mutation is observable.
func (b *Board) Apply(m Move) error {
	if m.From == m.To {
		return fmt.Errorf("%w: tube %d", ErrSameTube, m.From)
	}
	if err := b.validateTube(m.From); err != nil {
		return err
	}
	if err := b.validateTube(m.To); err != nil {
		return err
	}

	src := &b.tubes[m.From]
	if m.Pos < 0 || m.Pos >= src.Len() {
		return fmt.Errorf("%w: position %d in tube %d holding %d layers",
			ErrLayerIndex, m.Pos, m.From, src.Len())
	}

	dst := &b.tubes[m.To]
	layer := src.removeAt(m.Pos)
	if !dst.CanAdd(layer) {
		// Reinsert at the original absolute position so the board is
		// byte-identical to before the attempt.
		src.insertAt(m.Pos, layer)
		return fmt.Errorf("%w: %s onto tube %d", ErrCannotPlace, layer, m.To)
	}

	dst.push(layer)
	b.moves++
	return nil
}

// Solved reports whether every tube is either empty or complete.
func (b *Board) Solved() bool {
	for i := range b.tubes {
		if !b.tubes[i].IsEmpty() && !b.tubes[i].IsComplete() {
			return false
		}
	}
	return true
}

// String returns the board's canonical key.
func (b *Board) String() string {
	return b.Key()
}

// Format returns a human-readable listing, one tube per line.
func (b *Board) Format() string {
	var sb strings.Builder
	for idx := range b.tubes {
		fmt.Fprintf(&sb, "%3d: %s\n", idx, b.tubes[idx].String())
	}
	return sb.String()
}
