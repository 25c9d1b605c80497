package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Alphabet lists every valid layer kind, one letter per color.
const Alphabet = "RGBYPOCM"

// Layer is a single cake layer: a color kind and a cosmetic size.
// Size carries no weight in solving logic; valid levels keep it constant
// within a stack of one kind. Layer is an immutable value.
type Layer struct {
	Kind byte
	Size int
}

// String renders the layer as its canonical token, e.g. "R2".
func (l Layer) String() string {
	return string(l.Kind) + strconv.Itoa(l.Size)
}

// ParseLayer parses a canonical token like "R2" back into a Layer.
func ParseLayer(tok string) (Layer, error) {
	if len(tok) < 2 {
		return Layer{}, fmt.Errorf("layer token %q too short", tok)
	}
	kind := tok[0]
	if !isValidKind(kind) {
		return Layer{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	size, err := strconv.Atoi(tok[1:])
	if err != nil {
		return Layer{}, fmt.Errorf("layer token %q: %w", tok, err)
	}
	if size < 1 {
		return Layer{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return Layer{Kind: kind, Size: size}, nil
}

// Tube is an ordered stack of layers bounded by a fixed capacity.
// Index 0 is the bottom; the last element is the top. Moves may lift a layer
// from any position, but placement always lands on the top.
type Tube struct {
	layers   []Layer
	capacity int
}

// Len returns the number of layers in the tube.
func (t *Tube) Len() int {
	return len(t.layers)
}

// IsEmpty reports whether the tube holds no layers.
func (t *Tube) IsEmpty() bool {
	return len(t.layers) == 0
}

// IsFull reports whether the tube is at capacity.
func (t *Tube) IsFull() bool {
	return len(t.layers) == t.capacity
}

// IsComplete reports whether the tube is full and single-kind — a
// goal-satisfying tube.
func (t *Tube) IsComplete() bool {
	if !t.IsFull() {
		return false
	}
	for _, l := range t.layers[1:] {
		if l.Kind != t.layers[0].Kind {
			return false
		}
	}
	return true
}

// Top returns the top layer without removing it.
// The second return is false for an empty tube.
func (t *Tube) Top() (Layer, bool) {
	if len(t.layers) == 0 {
		return Layer{}, false
	}
	return t.layers[len(t.layers)-1], true
}

// Layer returns the layer at absolute position i, bottom = 0.
func (t *Tube) Layer(i int) Layer {
	return t.layers[i]
}

// CanAdd reports whether l may be placed on top of the tube: the tube must
// have spare capacity and be empty or topped by the same kind.
func (t *Tube) CanAdd(l Layer) bool {
	if t.IsFull() {
		return false
	}
	top, ok := t.Top()
	return !ok || top.Kind == l.Kind
}

// KindCount returns the number of distinct kinds present in the tube.
func (t *Tube) KindCount() int {
	var seen [256]bool
	n := 0
	for _, l := range t.layers {
		if !seen[l.Kind] {
			seen[l.Kind] = true
			n++
		}
	}
	return n
}

// String renders the stack bottom-to-top as space-joined tokens, e.g. "R2 G3".
// An empty tube renders as the empty string.
func (t *Tube) String() string {
	var sb strings.Builder
	sb.Grow(len(t.layers) * 3)
	for i, l := range t.layers {
		if i > 0 {
			sb.WriteByte(layerSep)
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// push places a layer on top. Callers must have checked CanAdd.
func (t *Tube) push(l Layer) {
	t.layers = append(t.layers, l)
}

// removeAt removes and returns the layer at absolute position pos,
// shifting the layers above it down. Callers must have checked bounds.
func (t *Tube) removeAt(pos int) Layer {
	l := t.layers[pos]
	t.layers = append(t.layers[:pos], t.layers[pos+1:]...)
	return l
}

// insertAt restores a layer at absolute position pos, the exact inverse of
// removeAt. Used to revert a rejected move.
func (t *Tube) insertAt(pos int, l Layer) {
	t.layers = append(t.layers, Layer{})
	copy(t.layers[pos+1:], t.layers[pos:])
	t.layers[pos] = l
}
