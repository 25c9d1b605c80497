package board

import "fmt"

// Geometry describes the shape of one puzzle instance: a Width×Height grid of
// tubes, each with the same Capacity.
//
// Geometry is immutable after construction — it is safe to share the same
// pointer across Board clones.
type Geometry struct {
	Width    int
	Height   int
	Capacity int

	// adjacent[idx] lists the orthogonal neighbors of tube idx in a fixed
	// order: up, down, left, right. Neighbors outside the grid are omitted.
	adjacent [][]int
}

// NewGeometry builds and validates a Geometry.
func NewGeometry(width, height, capacity int) (*Geometry, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("geometry: grid %dx%d must have positive dimensions", width, height)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("geometry: capacity %d must be positive", capacity)
	}
	g := &Geometry{
		Width:    width,
		Height:   height,
		Capacity: capacity,
	}
	g.buildAdjacency()
	return g, nil
}

// Tubes returns the number of tubes on the board.
func (g *Geometry) Tubes() int {
	return g.Width * g.Height
}

// Adjacent returns the neighbors of tube idx in up, down, left, right order.
// The returned slice is shared and must not be modified.
// Returns nil for an out-of-range index.
func (g *Geometry) Adjacent(idx int) []int {
	if idx < 0 || idx >= g.Tubes() {
		return nil
	}
	return g.adjacent[idx]
}

// MakeIndex transforms a row and column into a flat tube index.
// Returns -1 if row and/or col are out of range.
func (g *Geometry) MakeIndex(row, col int) int {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return -1
	}
	return row*g.Width + col
}

// buildAdjacency precomputes the neighbor table. Rows and columns derive from
// the flat index: row = idx / width, col = idx % width. The grid is
// 4-connected with no wraparound.
func (g *Geometry) buildAdjacency() {
	n := g.Tubes()
	g.adjacent = make([][]int, n)
	for idx := range n {
		row, col := idx/g.Width, idx%g.Width
		nbs := make([]int, 0, 4)
		if row > 0 {
			nbs = append(nbs, idx-g.Width) // up
		}
		if row < g.Height-1 {
			nbs = append(nbs, idx+g.Width) // down
		}
		if col > 0 {
			nbs = append(nbs, idx-1) // left
		}
		if col < g.Width-1 {
			nbs = append(nbs, idx+1) // right
		}
		g.adjacent[idx] = nbs
	}
}
