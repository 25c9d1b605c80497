package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KikaPereira03/cakesort/internal/level"
	"github.com/KikaPereira03/cakesort/internal/solver"
)

var hintMaxNodes int

func init() {
	hintCmd := &cobra.Command{
		Use:   "hint <level file>",
		Short: "Suggest the next move for a level",
		Long: `Suggest the next move for a level: the first move of an A* solve with the
advanced heuristic.`,
		Args: cobra.ExactArgs(1),
		RunE: runHint,
	}

	hintCmd.Flags().IntVar(&hintMaxNodes, "max-nodes", 500_000, "Node budget for the hint search, 0 = unlimited")

	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	lvl, err := level.ParseFile(args[0])
	if err != nil {
		return err
	}
	b, err := lvl.Board()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if b.Solved() {
		fmt.Println("already solved")
		return nil
	}

	s := solver.New(b, &solver.Options{
		Algorithm: solver.AlgorithmAStar,
		Heuristic: solver.HeuristicAdvanced,
		MaxNodes:  hintMaxNodes,
	})
	res, err := s.Solve()
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Println("no solution from this position")
		return nil
	case errors.Is(err, solver.ErrBudgetExceeded):
		fmt.Printf("no hint found within %d nodes\n", hintMaxNodes)
		return nil
	case err != nil:
		return err
	}

	m := res.Moves[0]
	fmt.Printf("hint: lift layer at position %d of tube %d and place it on tube %d (%s)\n",
		m.Pos, m.From, m.To, m)
	return nil
}
