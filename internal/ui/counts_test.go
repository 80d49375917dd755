package ui

import (
	"slices"
	"testing"
)

func TestCountValues(t *testing.T) {
	counts := []int{7, 7, 7}
	total := countValues([]uint8{0, 1, 2, 2, 0, 5}, counts)
	if total != 4 {
		t.Fatalf("expected 4 live cells, got %d", total)
	}
	if !slices.Equal(counts, []int{0, 1, 2}) {
		t.Fatalf("unexpected counts %v", counts)
	}
}
