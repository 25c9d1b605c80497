package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KikaPereira03/cakesort/internal/board"
	"github.com/KikaPereira03/cakesort/internal/level"
	"github.com/KikaPereira03/cakesort/internal/progress"
	"github.com/KikaPereira03/cakesort/internal/solver"
)

var (
	solveAlgo      string
	solveHeuristic string
	solveTopOnly   bool
	solveMaxNodes  int
	solveQuiet     bool
	solveRecord    bool
	solveProgress  string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <level file> [level files...]",
		Short: "Solve one or more level files",
		Long: `Solve one or more level files and print the move sequences.

Each file is solved independently; multiple files are solved concurrently.
"No solution" is a search outcome, not an error — only invalid input fails
the command.

Examples:
  cakesort solve levels/level1.txt
  cakesort solve --algo astar --heuristic advanced levels/*.txt
  cakesort solve --max-nodes 500000 --record levels/level2.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVar(&solveAlgo, "algo", "bfs", "Search algorithm: bfs or astar")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "basic", "A* heuristic: basic, advanced, or none")
	solveCmd.Flags().BoolVar(&solveTopOnly, "top-only", false, "Only consider lifting each tube's top layer")
	solveCmd.Flags().IntVar(&solveMaxNodes, "max-nodes", 0, "Node budget per search, 0 = unlimited")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false, "Print summaries only, no boards or move lists")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record solved levels in the progress file")
	solveCmd.Flags().StringVar(&solveProgress, "progress", "progress.json", "Progress file path")

	rootCmd.AddCommand(solveCmd)
}

// solveOutcome is the per-file result. searchErr holds ErrNoSolution or
// ErrBudgetExceeded; hard failures abort the whole command instead.
type solveOutcome struct {
	path      string
	lvl       *level.Level
	initial   *board.Board
	res       *solver.Result
	searchErr error
}

func runSolve(cmd *cobra.Command, args []string) error {
	algo, err := solver.ParseAlgorithm(solveAlgo)
	if err != nil {
		return err
	}
	heuristic := solver.ParseHeuristic(solveHeuristic)

	// Fan out across files; each individual search stays single-threaded.
	outcomes := make([]*solveOutcome, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			out, err := solveFile(path, algo, heuristic)
			outcomes[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outcomes {
		reportOutcome(out)
	}

	if solveRecord {
		return recordOutcomes(outcomes)
	}
	return nil
}

// solveFile parses and solves a single level file, replaying the returned
// moves as a self-check before reporting them.
func solveFile(path string, algo solver.Algorithm, heuristic solver.Heuristic) (*solveOutcome, error) {
	lvl, err := level.ParseFile(path)
	if err != nil {
		return nil, err
	}
	b, err := lvl.Board()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s := solver.New(b, &solver.Options{
		Algorithm: algo,
		Heuristic: heuristic,
		TopOnly:   solveTopOnly,
		MaxNodes:  solveMaxNodes,
	})
	res, err := s.Solve()
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) || errors.Is(err, solver.ErrBudgetExceeded) {
			return &solveOutcome{path: path, lvl: lvl, initial: b, res: res, searchErr: err}, nil
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := replay(b, res.Moves); err != nil {
		return nil, fmt.Errorf("%s: solution failed replay: %w", path, err)
	}
	return &solveOutcome{path: path, lvl: lvl, initial: b, res: res}, nil
}

// replay applies the move sequence to a copy of the initial board and checks
// it ends solved.
func replay(initial *board.Board, moves []board.Move) error {
	b := initial.Clone()
	for i, m := range moves {
		if err := b.Apply(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	if !b.Solved() {
		return errors.New("board not solved after final move")
	}
	return nil
}

func reportOutcome(out *solveOutcome) {
	if !solveQuiet {
		fmt.Printf("%s (%s, %dx%d, capacity %d):\n",
			out.path, out.lvl.Difficulty, out.lvl.Width, out.lvl.Height, out.lvl.Capacity)
		fmt.Print(renderBoard(out.initial))
	}

	switch {
	case errors.Is(out.searchErr, solver.ErrNoSolution):
		fmt.Printf("%s: no solution (%d nodes, %v)\n", out.path, out.res.Nodes, out.res.Duration)
	case errors.Is(out.searchErr, solver.ErrBudgetExceeded):
		fmt.Printf("%s: gave up after %d nodes (%v)\n", out.path, out.res.Nodes, out.res.Duration)
	default:
		if !solveQuiet {
			for i, m := range out.res.Moves {
				fmt.Printf("%3d. %s\n", i+1, m)
			}
		}
		fmt.Printf("%s: solved in %d moves, par %d (%d nodes, %v)\n",
			out.path, len(out.res.Moves), out.lvl.ParMoves, out.res.Nodes, out.res.Duration)
	}
}

// recordOutcomes updates the progress file with every solved level that
// carries a level number.
func recordOutcomes(outcomes []*solveOutcome) error {
	store := progress.NewStore(solveProgress)
	p, err := store.Load()
	if err != nil {
		return err
	}

	updated := false
	for _, out := range outcomes {
		if out.searchErr != nil || out.lvl.Number < 1 {
			continue
		}
		stars := p.Complete(out.lvl.Number, len(out.res.Moves), out.lvl.ParMoves)
		fmt.Printf("level %d: %d star(s) recorded\n", out.lvl.Number, stars)
		updated = true
	}
	if !updated {
		return nil
	}
	return store.Save(p)
}
