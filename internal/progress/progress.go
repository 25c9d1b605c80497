// Package progress persists player progression: furthest level reached,
// per-level star grades, and coins.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Progress is the persisted player state. Stars is keyed by the decimal level
// number to keep the JSON shape stable.
type Progress struct {
	CurrentLevel int            `json:"current_level"`
	MaxLevel     int            `json:"max_level"`
	Stars        map[string]int `json:"stars"`
	Coins        int            `json:"coins"`
}

// NewProgress returns a fresh progression: level 1, nothing earned.
func NewProgress() *Progress {
	return &Progress{
		CurrentLevel: 1,
		MaxLevel:     1,
		Stars:        make(map[string]int),
	}
}

// StarsFor grades a completed run against par: 3 stars at or under par,
// 2 within 1.5x par, 1 otherwise.
func StarsFor(moves, par int) int {
	switch {
	case moves <= par:
		return 3
	case float64(moves) <= float64(par)*1.5:
		return 2
	default:
		return 1
	}
}

// Complete records a finished level: grades the run, keeps the best star
// count, awards 10 coins per star, and advances MaxLevel when the frontier
// level was the one completed. Returns the stars earned by this run.
func (p *Progress) Complete(levelNum, moves, par int) int {
	stars := StarsFor(moves, par)

	key := strconv.Itoa(levelNum)
	if stars > p.Stars[key] {
		p.Stars[key] = stars
	}
	if levelNum == p.MaxLevel {
		p.MaxLevel++
	}
	p.Coins += stars * 10
	return stars
}

// TotalStars sums the best star counts across all levels.
func (p *Progress) TotalStars() int {
	total := 0
	for _, s := range p.Stars {
		total += s
	}
	return total
}

// LevelStars returns the best star count recorded for a level.
func (p *Progress) LevelStars(levelNum int) int {
	return p.Stars[strconv.Itoa(levelNum)]
}

// Store reads and writes Progress at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a store backed by the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored progress. A missing file yields fresh defaults, not
// an error; a corrupt file is an error.
func (s *Store) Load() (*Progress, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewProgress(), nil
	}
	if err != nil {
		return nil, err
	}

	p := NewProgress()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	if p.Stars == nil {
		p.Stars = make(map[string]int)
	}
	return p, nil
}

// Save writes the progress as indented JSON, creating parent directories as
// needed.
func (s *Store) Save(p *Progress) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return err
	}
	return f.Close()
}
