package selection

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/abhisek/medquiz/internal/catalog"
)

// WeightedSample draws k unique items without replacement, each round
// proportional to the remaining items' weights (roulette wheel). The
// cumulative array is rebuilt per draw; at catalog sizes in the low
// hundreds this beats maintaining a tree.
//
// Returns min(k, len(items)) items. Weights must parallel items and be
// positive and finite.
func WeightedSample(rng *rand.Rand, items []catalog.Item, weights []float64, k int) ([]catalog.Item, error) {
	if len(items) != len(weights) {
		return nil, fmt.Errorf("weighted sample: %d items but %d weights", len(items), len(weights))
	}
	for i, w := range weights {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weighted sample: invalid weight %v for item %s", w, items[i].ID)
		}
	}

	if k <= 0 {
		return nil, nil
	}
	if k > len(items) {
		k = len(items)
	}

	pool := make([]catalog.Item, len(items))
	copy(pool, items)
	poolWeights := make([]float64, len(weights))
	copy(poolWeights, weights)

	selected := make([]catalog.Item, 0, k)
	cumulative := make([]float64, 0, len(pool))

	for len(selected) < k {
		cumulative = cumulative[:0]
		total := 0.0
		for _, w := range poolWeights {
			total += w
			cumulative = append(cumulative, total)
		}

		draw := rng.Float64() * total
		idx := len(pool) - 1
		for i, c := range cumulative {
			if c >= draw {
				idx = i
				break
			}
		}

		selected = append(selected, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
		poolWeights = append(poolWeights[:idx], poolWeights[idx+1:]...)
	}

	return selected, nil
}
