package solver

import (
	"fmt"
	"strings"
)

// Algorithm selects the search driver.
type Algorithm int

const (
	// AlgorithmBFS explores by increasing depth and returns a shortest
	// solution when one exists.
	AlgorithmBFS Algorithm = iota

	// AlgorithmAStar orders expansion by g+h using the configured Heuristic.
	AlgorithmAStar
)

// ParseAlgorithm maps a name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return AlgorithmBFS, nil
	case "astar", "a*":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want bfs or astar)", name)
	}
}

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "astar"
	default:
		return "bfs"
	}
}

// Options configures solver behavior.
type Options struct {
	Algorithm Algorithm
	Heuristic Heuristic // used by AlgorithmAStar only

	// TopOnly restricts candidate moves to each tube's top layer. The default
	// considers every stack position liftable, which is the behavior solutions
	// are defined against; TopOnly is a performance escape hatch that shrinks
	// the branching factor but can miss solutions.
	TopOnly bool

	// MaxNodes caps the number of expanded nodes. 0 means unlimited; the
	// search space is otherwise unbounded and large boards can exhaust memory.
	MaxNodes int
}

// DefaultOptions returns standard solver options: exhaustive BFS over every
// liftable position, no node budget.
func DefaultOptions() *Options {
	return &Options{
		Algorithm: AlgorithmBFS,
		Heuristic: HeuristicNone,
	}
}
