package daily

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC)
	if got := DayKey(ts); got != "2026-03-07" {
		t.Errorf("DayKey = %q, want 2026-03-07", got)
	}
	// Any instant within the same local day maps to the same key.
	if DayKey(ts) != DayKey(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)) {
		t.Error("instants within one day must share a key")
	}
}

func TestConfigForDate_Deterministic(t *testing.T) {
	a := ConfigForDate("2026-03-07")
	b := ConfigForDate("2026-03-07")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("configs for the same date differ: %+v vs %+v", a, b)
	}
}

func TestConfigForDate_Consistency(t *testing.T) {
	// Scan a range of dates: every config must be internally consistent
	// regardless of which type the date draws.
	day := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		cfg := ConfigForDate(DayKey(day.AddDate(0, 0, i)))

		if cfg.ItemCount != cfg.Type.ItemCount() {
			t.Errorf("%s: ItemCount = %d, want %d", cfg.Date, cfg.ItemCount, cfg.Type.ItemCount())
		}
		if cfg.TimeLimit != cfg.Type.TimeLimit() {
			t.Errorf("%s: TimeLimit = %v, want %v", cfg.Date, cfg.TimeLimit, cfg.Type.TimeLimit())
		}
		switch cfg.Type {
		case ChallengeCategory:
			if cfg.Category == nil || !cfg.Category.Valid() {
				t.Errorf("%s: category challenge needs a valid category, got %v", cfg.Date, cfg.Category)
			}
		case ChallengeSpeed, ChallengeFull:
			if cfg.Category != nil {
				t.Errorf("%s: %s challenge must not set a category", cfg.Date, cfg.Type)
			}
		default:
			t.Errorf("%s: unknown challenge type %q", cfg.Date, cfg.Type)
		}
	}
}

func TestChallengeTypeParameters(t *testing.T) {
	if n := ChallengeSpeed.ItemCount(); n != 5 {
		t.Errorf("speed item count = %d, want 5", n)
	}
	if d := ChallengeSpeed.TimeLimit(); d != 7*time.Second {
		t.Errorf("speed time limit = %v, want 7s", d)
	}
	for _, ct := range []ChallengeType{ChallengeCategory, ChallengeFull} {
		if n := ct.ItemCount(); n != 10 {
			t.Errorf("%s item count = %d, want 10", ct, n)
		}
		if d := ct.TimeLimit(); d != 15*time.Second {
			t.Errorf("%s time limit = %v, want 15s", ct, d)
		}
	}
}

func TestQuestions_Deterministic(t *testing.T) {
	cat := catalog.MustLoad()
	cfg := Config{Date: "2026-03-07", Type: ChallengeFull, ItemCount: 10, TimeLimit: 15 * time.Second}

	a := Questions(cfg, cat)
	b := Questions(cfg, cat)
	if !reflect.DeepEqual(a, b) {
		t.Error("question sets for the same config differ")
	}
	if len(a) != 10 {
		t.Errorf("got %d questions, want 10", len(a))
	}
}

func TestQuestions_CategoryFilter(t *testing.T) {
	cat := catalog.MustLoad()
	focus := catalog.CategoryCardiology
	cfg := Config{Date: "2026-03-07", Type: ChallengeCategory, ItemCount: 10, TimeLimit: 15 * time.Second, Category: &focus}

	qs := Questions(cfg, cat)
	if len(qs) == 0 {
		t.Fatal("no questions for category challenge")
	}
	// The pool may be smaller than the item count; never larger.
	if len(qs) > cfg.ItemCount {
		t.Errorf("got %d questions, want at most %d", len(qs), cfg.ItemCount)
	}
	for _, q := range qs {
		if q.Category != focus {
			t.Errorf("item %s is %s, want %s", q.ID, q.Category, focus)
		}
	}
}

func TestQuestions_DifferentDatesDiffer(t *testing.T) {
	cat := catalog.MustLoad()
	base := Config{Type: ChallengeFull, ItemCount: 10, TimeLimit: 15 * time.Second}

	cfgA, cfgB := base, base
	cfgA.Date = "2026-03-07"
	cfgB.Date = "2026-03-08"

	if reflect.DeepEqual(Questions(cfgA, cat), Questions(cfgB, cat)) {
		t.Error("adjacent dates produced identical question orders")
	}
}
