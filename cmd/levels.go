package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KikaPereira03/cakesort/internal/level"
	"github.com/KikaPereira03/cakesort/internal/progress"
)

var (
	levelsDir      string
	levelsProgress string
)

func init() {
	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "List available levels",
		Long: `List the levels in a directory with their metadata and earned stars.

If the directory holds no level files, the built-in default levels are
created first.`,
		RunE: runLevels,
	}

	levelsCmd.Flags().StringVar(&levelsDir, "dir", "levels", "Levels directory")
	levelsCmd.Flags().StringVar(&levelsProgress, "progress", "progress.json", "Progress file path")

	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) error {
	mgr, err := level.NewManager(levelsDir)
	if err != nil {
		return err
	}
	p, err := progress.NewStore(levelsProgress).Load()
	if err != nil {
		return err
	}

	fmt.Printf("%d level(s) in %s, %d star(s) earned, %d coin(s)\n\n",
		mgr.Count(), levelsDir, p.TotalStars(), p.Coins)
	for _, num := range mgr.Numbers() {
		lvl, _ := mgr.Level(num)
		stars := strings.Repeat("*", p.LevelStars(num))
		fmt.Printf("%3d  %-7s %dx%d capacity %d  par %3d  %s\n",
			num, lvl.Difficulty, lvl.Width, lvl.Height, lvl.Capacity, lvl.ParMoves, stars)
	}
	return nil
}
