package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdjacentOrder(t *testing.T) {
	// 3x3 grid:
	//   0 1 2
	//   3 4 5
	//   6 7 8
	geo := mustGeometry(t, 3, 3, 1)
	cases := []struct {
		idx  int
		want []int
	}{
		{0, []int{3, 1}},       // top-left: down, right
		{2, []int{5, 1}},       // top-right: down, left
		{4, []int{1, 7, 3, 5}}, // center: up, down, left, right
		{6, []int{3, 7}},       // bottom-left: up, right
		{8, []int{5, 7}},       // bottom-right: up, left
		{1, []int{4, 0, 2}},    // top edge: down, left, right
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, geo.Adjacent(tc.idx)); diff != "" {
			t.Errorf("Adjacent(%d) mismatch (-want +got):\n%s", tc.idx, diff)
		}
	}

	if got := geo.Adjacent(-1); got != nil {
		t.Errorf("Adjacent(-1) = %v, want nil", got)
	}
	if got := geo.Adjacent(9); got != nil {
		t.Errorf("Adjacent(9) = %v, want nil", got)
	}
}

func TestAdjacentSingleRow(t *testing.T) {
	geo := mustGeometry(t, 2, 1, 1)
	if diff := cmp.Diff([]int{1}, geo.Adjacent(0)); diff != "" {
		t.Errorf("Adjacent(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, geo.Adjacent(1)); diff != "" {
		t.Errorf("Adjacent(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGeometryValidation(t *testing.T) {
	cases := []struct {
		name                    string
		width, height, capacity int
	}{
		{"zero width", 0, 3, 4},
		{"zero height", 3, 0, 4},
		{"zero capacity", 3, 3, 0},
		{"negative width", -1, 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGeometry(tc.width, tc.height, tc.capacity); err == nil {
				t.Fatalf("NewGeometry(%d, %d, %d) should have failed", tc.width, tc.height, tc.capacity)
			}
		})
	}
}

func TestMakeIndex(t *testing.T) {
	geo := mustGeometry(t, 4, 3, 1)
	if got := geo.MakeIndex(2, 3); got != 11 {
		t.Errorf("MakeIndex(2, 3) = %d, want 11", got)
	}
	if got := geo.MakeIndex(3, 0); got != -1 {
		t.Errorf("MakeIndex(3, 0) = %d, want -1", got)
	}
	if got := geo.MakeIndex(0, 4); got != -1 {
		t.Errorf("MakeIndex(0, 4) = %d, want -1", got)
	}
}
