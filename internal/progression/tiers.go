package progression

import "time"

// Tier is the learner's discrete progression rank, 1 through 6.
type Tier int

const (
	TierStudent   Tier = 1
	TierIntern    Tier = 2
	TierResident  Tier = 3
	TierRegistrar Tier = 4
	TierFellow    Tier = 5
	TierAttending Tier = 6
)

// MinTier and MaxTier bound the valid tier range.
const (
	MinTier = TierStudent
	MaxTier = TierAttending
)

// Thresholds holds the cumulative points required to reach each tier,
// indexed by tier-1. Strictly ascending.
var Thresholds = [6]int{0, 300, 800, 1600, 2800, 4500}

// Definition describes one tier for display and events.
type Definition struct {
	Tier      Tier
	Name      string
	Threshold int
}

// Clamp forces t into the valid [MinTier, MaxTier] range.
func (t Tier) Clamp() Tier {
	if t < MinTier {
		return MinTier
	}
	if t > MaxTier {
		return MaxTier
	}
	return t
}

// DefinitionFor returns the definition of a tier.
func DefinitionFor(t Tier) Definition {
	switch t.Clamp() {
	case TierStudent:
		return Definition{Tier: TierStudent, Name: "Student", Threshold: Thresholds[0]}
	case TierIntern:
		return Definition{Tier: TierIntern, Name: "Intern", Threshold: Thresholds[1]}
	case TierResident:
		return Definition{Tier: TierResident, Name: "Resident", Threshold: Thresholds[2]}
	case TierRegistrar:
		return Definition{Tier: TierRegistrar, Name: "Registrar", Threshold: Thresholds[3]}
	case TierFellow:
		return Definition{Tier: TierFellow, Name: "Fellow", Threshold: Thresholds[4]}
	case TierAttending:
		return Definition{Tier: TierAttending, Name: "Attending", Threshold: Thresholds[5]}
	}
	// Unreachable after Clamp.
	return Definition{Tier: TierStudent, Name: "Student", Threshold: 0}
}

// TierForPoints returns the highest tier whose threshold is at or below
// the given cumulative points. Negative points map to the first tier.
func TierForPoints(points int) Tier {
	tier := TierStudent
	for i, threshold := range Thresholds {
		if points >= threshold {
			tier = Tier(i + 1)
		}
	}
	return tier
}

// TimerForTier maps a tier to the per-question time budget. Higher tiers
// get shorter timers.
func TimerForTier(t Tier) time.Duration {
	switch t.Clamp() {
	case TierStudent, TierIntern:
		return 15 * time.Second
	case TierResident, TierRegistrar:
		return 12 * time.Second
	case TierFellow:
		return 10 * time.Second
	case TierAttending:
		return 8 * time.Second
	}
	// Unreachable after Clamp.
	return 15 * time.Second
}

// TierUp records a tier boundary crossing.
type TierUp struct {
	From Tier       `json:"from"`
	To   Tier       `json:"to"`
	Def  Definition `json:"def"`
}

// CheckTierUp compares the tier before and after a session's points are
// added. It must be evaluated against the pre-update total so a boundary
// crossed mid-session is never erased by the update itself.
func CheckTierUp(priorPoints, delta int) *TierUp {
	before := TierForPoints(priorPoints)
	after := TierForPoints(priorPoints + delta)
	if after <= before {
		return nil
	}
	return &TierUp{
		From: before,
		To:   after,
		Def:  DefinitionFor(after),
	}
}
