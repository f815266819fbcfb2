package randutil

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Shuffle(rng, in)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	sorted := make([]int, len(got))
	copy(sorted, got)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle result is not a permutation: %v", got)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := []string{"a", "b", "c", "d", "e"}

	// Run several times; any mutation of in would stick.
	for i := 0; i < 20; i++ {
		Shuffle(rng, in)
	}

	want := []string{"a", "b", "c", "d", "e"}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := Shuffle(rng, []int{}); len(got) != 0 {
		t.Errorf("empty shuffle: %v", got)
	}
	if got := Shuffle(rng, []int{9}); len(got) != 1 || got[0] != 9 {
		t.Errorf("single shuffle: %v", got)
	}
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	in := []int{10, 20, 30, 40, 50, 60}

	got := Sample(rng, in, 4)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Fatalf("sample repeated element %d: %v", v, got)
		}
		seen[v] = true
	}
}

func TestSampleCapsAtLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := []int{1, 2, 3}

	got := Sample(rng, in, 10)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all distinct input elements, got %v", got)
	}
}

func TestSampleNonPositiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	if got := Sample(rng, []int{1, 2, 3}, 0); len(got) != 0 {
		t.Errorf("Sample n=0: %v", got)
	}
	if got := Sample(rng, []int{1, 2, 3}, -2); len(got) != 0 {
		t.Errorf("Sample n=-2: %v", got)
	}
}
