package progress

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "progress.json"))
	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.CurrentLevel != 1 || p.MaxLevel != 1 || p.Coins != 0 || len(p.Stars) != 0 {
		t.Fatalf("defaults = %+v, want fresh progression", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "progress.json"))

	p := NewProgress()
	p.Complete(1, 8, 8)
	p.Complete(2, 20, 10)
	p.CurrentLevel = 3

	if err := store.Save(p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(p, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestStarsFor(t *testing.T) {
	cases := []struct {
		moves, par, want int
	}{
		{8, 10, 3},  // under par
		{10, 10, 3}, // exactly par
		{15, 10, 2}, // exactly 1.5x par
		{16, 10, 1}, // over 1.5x par
		{100, 10, 1},
	}
	for _, tc := range cases {
		if got := StarsFor(tc.moves, tc.par); got != tc.want {
			t.Errorf("StarsFor(%d, %d) = %d, want %d", tc.moves, tc.par, got, tc.want)
		}
	}
}

func TestCompleteAwardsAndAdvances(t *testing.T) {
	p := NewProgress()

	if stars := p.Complete(1, 8, 10); stars != 3 {
		t.Fatalf("Complete = %d stars, want 3", stars)
	}
	if p.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, want 2 after completing the frontier level", p.MaxLevel)
	}
	if p.Coins != 30 {
		t.Errorf("Coins = %d, want 30", p.Coins)
	}

	// Re-completing a cleared level awards coins but does not advance the
	// frontier.
	if stars := p.Complete(1, 20, 10); stars != 1 {
		t.Fatalf("second Complete = %d stars, want 1", stars)
	}
	if p.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, want 2 after replaying level 1", p.MaxLevel)
	}
	if p.Coins != 40 {
		t.Errorf("Coins = %d, want 40", p.Coins)
	}

	// The best star count is retained.
	if got := p.LevelStars(1); got != 3 {
		t.Errorf("LevelStars(1) = %d, want the best of 3", got)
	}
	if got := p.TotalStars(); got != 3 {
		t.Errorf("TotalStars = %d, want 3", got)
	}
}
