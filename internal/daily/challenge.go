package daily

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/abhisek/medquiz/internal/catalog"
)

// ChallengeType selects the daily challenge format.
type ChallengeType string

const (
	ChallengeSpeed    ChallengeType = "speed"    // few items, short timer
	ChallengeCategory ChallengeType = "category" // one focus category
	ChallengeFull     ChallengeType = "full"     // whole catalog
)

// ItemCount returns the number of questions for the challenge type.
func (t ChallengeType) ItemCount() int {
	switch t {
	case ChallengeSpeed:
		return 5
	case ChallengeCategory, ChallengeFull:
		return 10
	}
	return 10
}

// TimeLimit returns the per-question timer for the challenge type.
func (t ChallengeType) TimeLimit() time.Duration {
	switch t {
	case ChallengeSpeed:
		return 7 * time.Second
	case ChallengeCategory, ChallengeFull:
		return 15 * time.Second
	}
	return 15 * time.Second
}

// Config is one calendar day's challenge configuration. The same date key
// always produces the same config.
type Config struct {
	Date      string
	Type      ChallengeType
	ItemCount int
	TimeLimit time.Duration
	Category  *catalog.Category // set only for ChallengeCategory
}

// DayKey formats a timestamp as its local calendar day (YYYY-MM-DD).
// This is the single day-boundary definition: both challenge completion
// and streak arithmetic truncate to local midnight through it.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// seedFor derives a deterministic RNG seed from the date key and a label.
// Independent labels give independent draws, so adding a new draw never
// perturbs existing ones.
func seedFor(dateKey, label string) int64 {
	h := fnv.New64a()
	h.Write([]byte(dateKey))
	h.Write([]byte{':'})
	h.Write([]byte(label))
	return int64(h.Sum64())
}

func rngFor(dateKey, label string) *rand.Rand {
	return rand.New(rand.NewSource(seedFor(dateKey, label)))
}

// ConfigForDate builds the deterministic challenge configuration for a
// date key produced by DayKey.
func ConfigForDate(dateKey string) Config {
	types := []ChallengeType{ChallengeSpeed, ChallengeCategory, ChallengeFull}
	ct := types[rngFor(dateKey, "type").Intn(len(types))]

	cfg := Config{
		Date:      dateKey,
		Type:      ct,
		ItemCount: ct.ItemCount(),
		TimeLimit: ct.TimeLimit(),
	}

	if ct == ChallengeCategory {
		cats := catalog.AllCategories()
		c := cats[rngFor(dateKey, "category").Intn(len(cats))]
		cfg.Category = &c
	}
	return cfg
}

// Questions returns the ordered item set for a challenge config:
// a seeded shuffle of the (optionally category-filtered) catalog, first N.
// Bit-identical for the same config across invocations and learners.
func Questions(cfg Config, cat *catalog.Catalog) []catalog.Item {
	pool := cat.All()
	if cfg.Category != nil {
		pool = cat.ByCategory(*cfg.Category)
	}

	rng := rngFor(cfg.Date, "shuffle")
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := cfg.ItemCount
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
