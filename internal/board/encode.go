package board

import (
	"fmt"
	"strings"
)

// Canonical key separators. Both are reserved: neither appears inside a layer
// token, so the encoding is injective over the alphabet.
const (
	tubeSep  = '|'
	layerSep = ' '
)

// Key returns the canonical encoding of the board: each tube rendered
// bottom-to-top as space-joined layer tokens, tubes joined by '|'. Two boards
// have equal keys iff their tube contents are identical in identical order —
// this is the sole mechanism for visited-state deduplication.
//
// The move counter is not part of the key; it is path bookkeeping, not state.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(b.geo.Tubes() * (b.geo.Capacity*3 + 1))
	for i := range b.tubes {
		if i > 0 {
			sb.WriteByte(tubeSep)
		}
		for j, l := range b.tubes[i].layers {
			if j > 0 {
				sb.WriteByte(layerSep)
			}
			sb.WriteString(l.String())
		}
	}
	return sb.String()
}

// Decode reconstructs a Board from a canonical key, the inverse of Key for
// every reachable state. Layers are placed verbatim; only the tube count,
// capacity, and layer alphabet are enforced.
func Decode(geo *Geometry, key string) (*Board, error) {
	parts := strings.Split(key, string(tubeSep))
	if len(parts) != geo.Tubes() {
		return nil, fmt.Errorf("key encodes %d tubes, geometry has %d", len(parts), geo.Tubes())
	}

	b := New(geo)
	for i, part := range parts {
		for _, tok := range strings.Fields(part) {
			l, err := ParseLayer(tok)
			if err != nil {
				return nil, fmt.Errorf("tube %d: %w", i, err)
			}
			if b.tubes[i].IsFull() {
				return nil, fmt.Errorf("%w: tube %d exceeds capacity %d", ErrTubeFull, i, geo.Capacity)
			}
			b.tubes[i].push(l)
		}
	}
	return b, nil
}
