package scoring

import (
	"testing"
	"time"
)

func TestSpeedBonus_FullTime(t *testing.T) {
	if got := SpeedBonus(12*time.Second, 12*time.Second); got != MaxSpeedBonus {
		t.Errorf("SpeedBonus(full) = %d, want %d", got, MaxSpeedBonus)
	}
}

func TestSpeedBonus_Timeout(t *testing.T) {
	if got := SpeedBonus(0, 12*time.Second); got != 0 {
		t.Errorf("SpeedBonus(0) = %d, want 0", got)
	}
}

func TestSpeedBonus_Quadratic(t *testing.T) {
	// Half the time remaining earns a quarter of the max bonus.
	if got := SpeedBonus(6*time.Second, 12*time.Second); got != 12 {
		t.Errorf("SpeedBonus(half) = %d, want 12 (floor of 50 x 0.25)", got)
	}
}

func TestSpeedBonus_InvalidInputsClampToZero(t *testing.T) {
	cases := []struct {
		name      string
		remaining time.Duration
		total     time.Duration
	}{
		{"zero total", 5 * time.Second, 0},
		{"negative total", 5 * time.Second, -time.Second},
		{"negative remaining", -time.Second, 12 * time.Second},
	}
	for _, tc := range cases {
		if got := SpeedBonus(tc.remaining, tc.total); got != 0 {
			t.Errorf("%s: SpeedBonus = %d, want 0", tc.name, got)
		}
	}
}

func TestSpeedBonus_OverfullClampsToMax(t *testing.T) {
	if got := SpeedBonus(20*time.Second, 12*time.Second); got != MaxSpeedBonus {
		t.Errorf("SpeedBonus(over) = %d, want %d", got, MaxSpeedBonus)
	}
}

func TestComboTier(t *testing.T) {
	cases := []struct {
		consecutive int
		want        int
	}{
		{0, 1}, {1, 1}, {2, 1},
		{3, 2}, {4, 2}, {5, 2},
		{6, 3}, {10, 3}, {100, 3},
	}
	for _, tc := range cases {
		if got := ComboTier(tc.consecutive); got != tc.want {
			t.Errorf("ComboTier(%d) = %d, want %d", tc.consecutive, got, tc.want)
		}
	}
}

func TestAnswerPoints_FullTime(t *testing.T) {
	if got := AnswerPoints(12*time.Second, 12*time.Second, 1); got != 150 {
		t.Errorf("AnswerPoints(full, tier 1) = %d, want 150", got)
	}
}

func TestAnswerPoints_Timeout(t *testing.T) {
	if got := AnswerPoints(0, 12*time.Second, 1); got != 100 {
		t.Errorf("AnswerPoints(timeout, tier 1) = %d, want 100", got)
	}
}

func TestAnswerPoints_ComboTripling(t *testing.T) {
	base := AnswerPoints(12*time.Second, 12*time.Second, 1)
	tripled := AnswerPoints(12*time.Second, 12*time.Second, 3)
	if tripled != 3*base {
		t.Errorf("tier 3 = %d, want triple of tier 1 (%d)", tripled, 3*base)
	}
}

func TestAnswerPoints_TierClamped(t *testing.T) {
	if got := AnswerPoints(0, 12*time.Second, 0); got != 100 {
		t.Errorf("tier 0 clamps to 1: got %d, want 100", got)
	}
	if got := AnswerPoints(0, 12*time.Second, 9); got != 300 {
		t.Errorf("tier 9 clamps to %d: got %d, want 300", MaxComboTier, got)
	}
}

func TestPerfectBonus(t *testing.T) {
	if got := PerfectBonus(10, 10); got != PerfectRoundBonus {
		t.Errorf("PerfectBonus(10, 10) = %d, want %d", got, PerfectRoundBonus)
	}
	if got := PerfectBonus(9, 10); got != 0 {
		t.Errorf("PerfectBonus(9, 10) = %d, want 0", got)
	}
	if got := PerfectBonus(0, 0); got != 0 {
		t.Errorf("PerfectBonus(0, 0) = %d, want 0 for an empty round", got)
	}
}
