package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KikaPereira03/cakesort/internal/board"
)

// Manager discovers level files in a directory and exposes their metadata.
// Files are named levelN.txt; when the directory holds none, the three
// built-in default levels are written out so a fresh install is playable.
type Manager struct {
	dir    string
	levels map[int]*Level
}

// NewManager scans dir for level files, creating the directory and the
// default levels as needed. Files that fail to parse are skipped, not fatal.
func NewManager(dir string) (*Manager, error) {
	m := &Manager{
		dir:    dir,
		levels: make(map[int]*Level),
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err := m.scan(); err != nil {
		return nil, err
	}
	if len(m.levels) == 0 {
		if err := m.createDefaults(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// scan loads every levelN.txt in the managed directory.
func (m *Manager) scan() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		num, ok := levelNumber(e.Name())
		if !ok {
			continue
		}
		lvl, err := ParseFile(filepath.Join(m.dir, e.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name()).Msg("skipping unparsable level file")
			continue
		}
		// The filename is authoritative for the level number.
		lvl.Number = num
		m.levels[num] = lvl
	}
	return nil
}

// levelNumber extracts N from a "levelN.txt" filename.
func levelNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "level")
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, ".txt")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Count returns the number of discovered levels.
func (m *Manager) Count() int {
	return len(m.levels)
}

// Numbers returns the discovered level numbers in ascending order.
func (m *Manager) Numbers() []int {
	nums := make([]int, 0, len(m.levels))
	for n := range m.levels {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Level returns the level with the given number.
func (m *Manager) Level(num int) (*Level, bool) {
	lvl, ok := m.levels[num]
	return lvl, ok
}

// Path returns the file path for a level number.
func (m *Manager) Path(num int) string {
	return filepath.Join(m.dir, fmt.Sprintf("level%d.txt", num))
}

// createDefaults writes the built-in levels to the managed directory.
func (m *Manager) createDefaults() error {
	for _, lvl := range defaultLevels() {
		if err := lvl.WriteFile(m.Path(lvl.Number)); err != nil {
			return err
		}
		m.levels[lvl.Number] = lvl
	}
	return nil
}

// defaultLevels returns the three built-in levels. Each pairs scrambled
// two-color tubes with empty tubes below them; par is the minimal move count.
func defaultLevels() []*Level {
	return []*Level{
		{
			Number:     1,
			Difficulty: DifficultyEasy,
			ParMoves:   8,
			Width:      4,
			Height:     3,
			Capacity:   3,
			Stacks: map[int][]board.Layer{
				0: mustStack("R2 R2 G3"),
				1: mustStack("G3 G3 R2"),
				2: mustStack("B1 B1 Y4"),
				3: mustStack("Y4 Y4 B1"),
			},
		},
		{
			Number:     2,
			Difficulty: DifficultyMedium,
			ParMoves:   16,
			Width:      4,
			Height:     3,
			Capacity:   4,
			Stacks: map[int][]board.Layer{
				0: mustStack("R2 R2 G3 G3"),
				1: mustStack("G3 G3 R2 R2"),
				2: mustStack("B1 B1 Y4 Y4"),
				3: mustStack("Y4 Y4 B1 B1"),
			},
		},
		{
			Number:     3,
			Difficulty: DifficultyHard,
			ParMoves:   24,
			Width:      5,
			Height:     4,
			Capacity:   4,
			Stacks: map[int][]board.Layer{
				0: mustStack("R2 R2 G3 G3"),
				1: mustStack("G3 G3 R2 R2"),
				2: mustStack("B1 B1 Y4 Y4"),
				3: mustStack("Y4 Y4 B1 B1"),
				5: mustStack("P5 P5 O1 O1"),
				6: mustStack("O1 O1 P5 P5"),
			},
		},
	}
}

// mustStack parses a hard-coded stack string; defaults are fixed at compile
// time, so panic on bugs.
func mustStack(s string) []board.Layer {
	stack, err := parseStack(s)
	if err != nil {
		panic("default level stack failed to parse: " + err.Error())
	}
	return stack
}
