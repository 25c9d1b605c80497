package generator

import (
	"time"

	"github.com/KikaPereira03/cakesort/internal/level"
)

// Options configures level generation behavior.
type Options struct {
	Difficulty level.Difficulty

	// Colors is the number of distinct layer kinds dealt onto the board.
	// It is capped at Tubes-2 so the board keeps at least two empty tubes
	// to shuffle through.
	Colors int

	Width    int
	Height   int
	Capacity int

	// Seed makes generation reproducible; 0 draws from system entropy.
	Seed int64

	// EnsureSolvable verifies each dealt board with the solver and redeals
	// until one passes or the timeout expires. Verified levels get their par
	// from the found solution's length.
	EnsureSolvable bool

	// Timeout limits total generation time across redeals.
	Timeout time.Duration

	// MaxNodes bounds each verification search. 0 means unlimited.
	MaxNodes int
}

// colorCount maps a difficulty tier to its color count.
func colorCount(d level.Difficulty) int {
	switch d {
	case level.DifficultyEasy:
		return 3
	case level.DifficultyHard:
		return 6
	case level.DifficultyExpert:
		return 8
	default:
		return 4
	}
}

// DefaultOptions returns standard generator options for a difficulty tier.
func DefaultOptions(d level.Difficulty) *Options {
	return &Options{
		Difficulty:     d,
		Colors:         colorCount(d),
		Width:          4,
		Height:         3,
		Capacity:       4,
		Seed:           0,
		EnsureSolvable: true,
		Timeout:        10 * time.Second,
		MaxNodes:       200_000,
	}
}
