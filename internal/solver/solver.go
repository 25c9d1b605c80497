package solver

import (
	"container/heap"
	"errors"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KikaPereira03/cakesort/internal/board"
)

var (
	// ErrNoSolution reports search exhaustion: the frontier emptied without
	// reaching a solved state. A normal terminal outcome, not a failure of
	// the input.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrBudgetExceeded reports that MaxNodes was hit before the search could
	// conclude either way. Distinct from ErrNoSolution.
	ErrBudgetExceeded = errors.New("node budget exceeded before search concluded")
)

// Result carries the outcome of one solve call. Moves is nil unless a
// solution was found; Nodes and Duration are populated either way.
type Result struct {
	Moves    []board.Move
	Nodes    int
	Duration time.Duration
}

// Solver runs a single-threaded, run-to-completion search over puzzle states.
// Each Solve call owns all of its bookkeeping; nothing escapes except the
// returned move list.
type Solver struct {
	Board   *board.Board
	options *Options
}

// New creates a solver for the given board. The board is cloned at
// construction — the caller's board is never touched by the search.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		Board:   b.Clone(),
		options: options,
	}
}

// Solve runs the configured search and blocks until it returns a move
// sequence, exhausts the state space, or hits the node budget. The Result is
// non-nil even on error so callers can report search statistics.
//
// Replaying Result.Moves in order via Apply transforms the starting board
// into a solved state in exactly len(Moves) moves.
func (s *Solver) Solve() (*Result, error) {
	start := time.Now()

	var (
		moves []board.Move
		nodes int
		err   error
	)
	switch s.options.Algorithm {
	case AlgorithmAStar:
		moves, nodes, err = s.aStar()
	default:
		moves, nodes, err = s.bfs()
	}

	res := &Result{
		Moves:    moves,
		Nodes:    nodes,
		Duration: time.Since(start),
	}
	log.Debug().
		Str("algorithm", s.options.Algorithm.String()).
		Str("heuristic", s.options.Heuristic.String()).
		Int("nodes", res.Nodes).
		Int("moves", len(res.Moves)).
		Dur("duration", res.Duration).
		Msg("search-complete")

	return res, err
}

// bfs explores states in FIFO order, guaranteeing a minimal-length solution.
// The frontier and all bookkeeping maps are keyed by canonical board keys.
func (s *Solver) bfs() ([]board.Move, int, error) {
	geo := s.Board.Geometry()
	startKey := s.Board.Key()

	queue := []string{startKey}
	visited := map[string]bool{startKey: true}
	parent := make(map[string]string)
	moveTo := make(map[string]board.Move)

	nodes := 0
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		nodes++
		if s.options.MaxNodes > 0 && nodes > s.options.MaxNodes {
			return nil, nodes, ErrBudgetExceeded
		}

		cur, err := board.Decode(geo, key)
		if err != nil {
			// Keys only ever come from Key(); a decode failure is a bug.
			return nil, nodes, err
		}
		if cur.Solved() {
			return reconstructPath(parent, moveTo, startKey, key), nodes, nil
		}

		for _, m := range candidates(cur, s.options.TopOnly) {
			// Every candidate is probed on an isolated clone so the board
			// being iterated is never mutated mid-expansion.
			next := cur.Clone()
			if next.Apply(m) != nil {
				continue
			}
			nk := next.Key()
			if visited[nk] {
				continue
			}
			visited[nk] = true
			parent[nk] = key
			moveTo[nk] = m
			queue = append(queue, nk)
		}
	}

	return nil, nodes, ErrNoSolution
}

// aStar explores states in ascending f = g + h order, where g is the path
// length and h is the configured heuristic. Ties break by insertion order,
// keeping expansion deterministic.
func (s *Solver) aStar() ([]board.Move, int, error) {
	geo := s.Board.Geometry()
	startKey := s.Board.Key()
	h := s.options.Heuristic

	open := &openQueue{}
	heap.Init(open)

	seq := 0
	push := func(key string, g, f int) {
		heap.Push(open, &openItem{key: key, g: g, f: f, seq: seq})
		seq++
	}
	push(startKey, 0, h.Estimate(s.Board))

	gScore := map[string]int{startKey: 0}
	parent := make(map[string]string)
	moveTo := make(map[string]board.Move)

	nodes := 0
	for open.Len() > 0 {
		item := heap.Pop(open).(*openItem)
		if best, ok := gScore[item.key]; ok && item.g > best {
			// Stale entry superseded by a relaxation; skip.
			continue
		}

		nodes++
		if s.options.MaxNodes > 0 && nodes > s.options.MaxNodes {
			return nil, nodes, ErrBudgetExceeded
		}

		cur, err := board.Decode(geo, item.key)
		if err != nil {
			return nil, nodes, err
		}
		if cur.Solved() {
			return reconstructPath(parent, moveTo, startKey, item.key), nodes, nil
		}

		for _, m := range candidates(cur, s.options.TopOnly) {
			next := cur.Clone()
			if next.Apply(m) != nil {
				continue
			}
			nk := next.Key()
			tentative := item.g + 1
			if best, ok := gScore[nk]; ok && tentative >= best {
				continue
			}
			gScore[nk] = tentative
			parent[nk] = item.key
			moveTo[nk] = m
			push(nk, tentative, tentative+h.Estimate(next))
		}
	}

	return nil, nodes, ErrNoSolution
}

// reconstructPath walks the predecessor chain from goal back to start and
// returns the moves in application order.
func reconstructPath(parent map[string]string, moveTo map[string]board.Move, start, goal string) []board.Move {
	path := []board.Move{}
	for key := goal; key != start; key = parent[key] {
		path = append(path, moveTo[key])
	}
	slices.Reverse(path)
	return path
}

// openItem is one priority-queue entry. The same key may appear more than
// once after relaxation; stale entries are filtered at pop time.
type openItem struct {
	key   string
	f, g  int
	seq   int // insertion order, breaks f ties deterministically
	index int
}

type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
