package scoring

import (
	"math"
	"time"
)

// BasePoints is awarded for any correct answer before modifiers.
const BasePoints = 100

// MaxSpeedBonus is the speed bonus at a full timer.
const MaxSpeedBonus = 50

// PerfectRoundBonus is added once when every item in a round is correct.
const PerfectRoundBonus = 250

// Combo tier thresholds over the consecutive-correct count.
const (
	ComboTier2Streak = 3
	ComboTier3Streak = 6
	MaxComboTier     = 3
)

// SpeedBonus returns the time bonus for a correct answer: quadratic in the
// fraction of time remaining, so fast answers are rewarded front-loaded.
// Zero at timeout, MaxSpeedBonus at full time. Invalid inputs clamp to a
// zero bonus rather than propagating.
func SpeedBonus(timeRemaining, totalTime time.Duration) int {
	if totalTime <= 0 {
		return 0
	}
	frac := float64(timeRemaining) / float64(totalTime)
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Floor(MaxSpeedBonus * frac * frac))
}

// ComboTier maps a consecutive-correct count to the combo multiplier tier.
func ComboTier(consecutive int) int {
	switch {
	case consecutive >= ComboTier3Streak:
		return 3
	case consecutive >= ComboTier2Streak:
		return 2
	default:
		return 1
	}
}

// AnswerPoints returns the points for one correct answer:
// (base + speed bonus) x combo tier. Incorrect answers and timeouts score
// zero; that short-circuit lives with the caller, which also resets the
// consecutive-correct counter.
func AnswerPoints(timeRemaining, totalTime time.Duration, comboTier int) int {
	if comboTier < 1 {
		comboTier = 1
	}
	if comboTier > MaxComboTier {
		comboTier = MaxComboTier
	}
	return (BasePoints + SpeedBonus(timeRemaining, totalTime)) * comboTier
}

// PerfectBonus returns the one-time bonus for a flawless round, applied
// after the last question. Empty rounds earn nothing.
func PerfectBonus(correct, total int) int {
	if total > 0 && correct == total {
		return PerfectRoundBonus
	}
	return 0
}
