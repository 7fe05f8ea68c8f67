package catalog

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 30 {
		t.Errorf("catalog size = %d, want 30", c.Len())
	}

	// Every category is represented, three items each.
	counts := make(map[Category]int)
	for _, it := range c.All() {
		counts[it.Category]++
		for _, f := range it.Findings {
			if f == "" {
				t.Errorf("item %s has an empty finding", it.ID)
			}
		}
		if it.Condition == "" {
			t.Errorf("item %s has no condition", it.ID)
		}
	}
	for _, cat := range AllCategories() {
		if counts[cat] != 3 {
			t.Errorf("category %s has %d items, want 3", cat, counts[cat])
		}
	}
}

func TestLoad_Cached(t *testing.T) {
	a, _ := Load()
	b, _ := Load()
	if a != b {
		t.Error("Load should return the cached catalog")
	}
}

func TestByID(t *testing.T) {
	c := MustLoad()
	first := c.All()[0]

	got, ok := c.ByID(first.ID)
	if !ok || got.ID != first.ID {
		t.Errorf("ByID(%s) = %+v, %v", first.ID, got, ok)
	}
	if _, ok := c.ByID("no-such-item"); ok {
		t.Error("ByID found a nonexistent item")
	}
}

func TestByCategory(t *testing.T) {
	c := MustLoad()
	for _, it := range c.ByCategory(CategoryCardiology) {
		if it.Category != CategoryCardiology {
			t.Errorf("item %s is %s", it.ID, it.Category)
		}
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	valid := Item{ID: "a", Condition: "x", Findings: [3]string{"1", "2", "3"}, Category: CategoryRenal}

	dup := valid
	if _, err := New([]Item{valid, dup}); err == nil {
		t.Error("expected error for duplicate ID")
	}

	noID := valid
	noID.ID = ""
	if _, err := New([]Item{noID}); err == nil {
		t.Error("expected error for empty ID")
	}

	badCat := valid
	badCat.Category = Category("astrology")
	if _, err := New([]Item{badCat}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := MustLoad()
	a := c.All()
	a[0].ID = "mutated"
	if c.All()[0].ID == "mutated" {
		t.Error("All must not expose internal state")
	}
}

func TestShuffled_DeterministicPerSeed(t *testing.T) {
	c := MustLoad()
	a := c.Shuffled(rand.New(rand.NewSource(9)))
	b := c.Shuffled(rand.New(rand.NewSource(9)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same order")
	}
	other := c.Shuffled(rand.New(rand.NewSource(10)))
	if reflect.DeepEqual(a, other) {
		t.Error("different seeds produced the same order")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, cat := range AllCategories() {
		if !cat.Valid() {
			t.Errorf("%s should be valid", cat)
		}
		if cat.DisplayName() == string(cat) {
			t.Errorf("%s has no display name", cat)
		}
	}
	if Category("astrology").Valid() {
		t.Error("unknown category reported valid")
	}
}

func TestParseSeed_RejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"empty array", `[]`},
		{"two findings", `[{"id":"a","condition":"x","findings":["1","2"],"category":"renal"}]`},
		{"four findings", `[{"id":"a","condition":"x","findings":["1","2","3","4"],"category":"renal"}]`},
		{"bad category", `[{"id":"a","condition":"x","findings":["1","2","3"],"category":"astrology"}]`},
		{"missing condition", `[{"id":"a","findings":["1","2","3"],"category":"renal"}]`},
	}
	for _, tc := range cases {
		if _, err := parseSeed([]byte(tc.raw)); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
