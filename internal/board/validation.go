package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTubeIndex   = errors.New("tube index out of bounds")
	ErrLayerIndex  = errors.New("layer position out of bounds")
	ErrSameTube    = errors.New("source and destination are the same tube")
	ErrCannotPlace = errors.New("layer cannot be placed on destination tube")
	ErrTubeFull    = errors.New("tube is at capacity")
	ErrInvalidKind = errors.New("unknown layer kind")
	ErrInvalidSize = errors.New("layer size must be positive")
)

// isValidKind reports whether k is a member of the layer alphabet.
func isValidKind(k byte) bool {
	return strings.IndexByte(Alphabet, k) >= 0
}

// validateTube checks that idx addresses a tube on this board.
func (b *Board) validateTube(idx int) error {
	if idx < 0 || idx >= len(b.tubes) {
		return fmt.Errorf("%w: tube %d must be in range [0, %d)", ErrTubeIndex, idx, len(b.tubes))
	}
	return nil
}

// validateLayer checks that a layer has a known kind and a positive size.
func validateLayer(l Layer) error {
	if !isValidKind(l.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, l.Kind)
	}
	if l.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, l.Size)
	}
	return nil
}
