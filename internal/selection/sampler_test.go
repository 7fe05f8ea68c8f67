package selection

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/medquiz/internal/catalog"
)

func makeItems(n int) ([]catalog.Item, []float64) {
	items := make([]catalog.Item, n)
	weights := make([]float64, n)
	for i := range items {
		items[i] = catalog.Item{ID: fmt.Sprintf("item-%02d", i), Category: catalog.CategoryCardiology}
		weights[i] = 1.0
	}
	return items, weights
}

func TestWeightedSample_UniqueAcrossTrials(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items, weights := makeItems(10)

	for trial := 0; trial < 100; trial++ {
		got, err := WeightedSample(rng, items, weights, 5)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		if len(got) != 5 {
			t.Fatalf("trial %d: got %d items, want 5", trial, len(got))
		}
		seen := make(map[string]bool)
		for _, it := range got {
			if seen[it.ID] {
				t.Fatalf("trial %d: duplicate item %s", trial, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestWeightedSample_KExceedsPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items, weights := makeItems(4)

	got, err := WeightedSample(rng, items, weights, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("got %d items, want all 4", len(got))
	}
}

func TestWeightedSample_ZeroK(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items, weights := makeItems(4)

	got, err := WeightedSample(rng, items, weights, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d items, want none", len(got))
	}
}

func TestWeightedSample_ProportionalToWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []catalog.Item{
		{ID: "heavy", Category: catalog.CategoryCardiology},
		{ID: "light", Category: catalog.CategoryRenal},
	}
	weights := []float64{100, 1}

	heavy := 0
	for trial := 0; trial < 100; trial++ {
		got, err := WeightedSample(rng, items, weights, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got[0].ID == "heavy" {
			heavy++
		}
	}

	// Expected ~99%; anything above 80 rules out a uniform draw.
	if heavy <= 80 {
		t.Errorf("100x-weighted item drawn %d/100 times, want > 80", heavy)
	}
}

func TestWeightedSample_InputValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items, weights := makeItems(3)

	if _, err := WeightedSample(rng, items, weights[:2], 1); err == nil {
		t.Error("expected error for mismatched lengths")
	}

	weights[1] = 0
	if _, err := WeightedSample(rng, items, weights, 1); err == nil {
		t.Error("expected error for non-positive weight")
	}

	weights[1] = -2
	if _, err := WeightedSample(rng, items, weights, 1); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestWeightedSample_DoesNotMutateInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	items, weights := makeItems(6)

	if _, err := WeightedSample(rng, items, weights, 6); err != nil {
		t.Fatal(err)
	}

	for i, it := range items {
		if it.ID != fmt.Sprintf("item-%02d", i) {
			t.Fatalf("input items mutated at %d: %s", i, it.ID)
		}
		if weights[i] != 1.0 {
			t.Fatalf("input weights mutated at %d: %v", i, weights[i])
		}
	}
}
