package catalog

import (
	"fmt"
	"math/rand"
)

// Category classifies an item into one of the ten fixed specialty areas.
type Category string

const (
	CategoryCardiology       Category = "cardiology"
	CategoryDermatology      Category = "dermatology"
	CategoryEndocrinology    Category = "endocrinology"
	CategoryGastroenterology Category = "gastroenterology"
	CategoryHematology       Category = "hematology"
	CategoryInfectious       Category = "infectious"
	CategoryNeurology        Category = "neurology"
	CategoryPulmonology      Category = "pulmonology"
	CategoryRenal            Category = "renal"
	CategoryRheumatology     Category = "rheumatology"
)

// AllCategories returns the ten categories in stable order.
func AllCategories() []Category {
	return []Category{
		CategoryCardiology,
		CategoryDermatology,
		CategoryEndocrinology,
		CategoryGastroenterology,
		CategoryHematology,
		CategoryInfectious,
		CategoryNeurology,
		CategoryPulmonology,
		CategoryRenal,
		CategoryRheumatology,
	}
}

// Valid reports whether c is one of the ten known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCardiology, CategoryDermatology, CategoryEndocrinology,
		CategoryGastroenterology, CategoryHematology, CategoryInfectious,
		CategoryNeurology, CategoryPulmonology, CategoryRenal,
		CategoryRheumatology:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCardiology:
		return "Cardiology"
	case CategoryDermatology:
		return "Dermatology"
	case CategoryEndocrinology:
		return "Endocrinology"
	case CategoryGastroenterology:
		return "Gastroenterology"
	case CategoryHematology:
		return "Hematology"
	case CategoryInfectious:
		return "Infectious Disease"
	case CategoryNeurology:
		return "Neurology"
	case CategoryPulmonology:
		return "Pulmonology"
	case CategoryRenal:
		return "Renal"
	case CategoryRheumatology:
		return "Rheumatology"
	default:
		return string(c)
	}
}

// Item is one immutable catalog entry: a condition, the three findings
// shown as prompts, and its category. Built once from seed data.
type Item struct {
	ID        string    `json:"id"`
	Condition string    `json:"condition"`
	Findings  [3]string `json:"findings"`
	Category  Category  `json:"category"`
}

// Catalog is the immutable item set the engine selects from.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// New builds a Catalog from items, rejecting duplicates and bad categories.
func New(items []Item) (*Catalog, error) {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q: empty ID", it.Condition)
		}
		if !it.Category.Valid() {
			return nil, fmt.Errorf("item %s: unknown category %q", it.ID, it.Category)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("item %s: duplicate ID", it.ID)
		}
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}, nil
}

// All returns every item in catalog order. The returned slice is a copy.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByID returns the item with the given ID.
func (c *Catalog) ByID(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ByCategory returns items in the given category, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// Shuffled returns all items in an order drawn from rng (Fisher-Yates).
func (c *Catalog) Shuffled(rng *rand.Rand) []Item {
	out := c.All()
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
