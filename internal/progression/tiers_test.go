package progression

import (
	"testing"
	"time"
)

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   Tier
	}{
		{-50, TierStudent},
		{0, TierStudent},
		{299, TierStudent},
		{300, TierIntern},
		{799, TierIntern},
		{800, TierResident},
		{1599, TierResident},
		{1600, TierRegistrar},
		{2800, TierFellow},
		{4500, TierAttending},
		{1_000_000, TierAttending},
	}
	for _, tc := range cases {
		if got := TierForPoints(tc.points); got != tc.want {
			t.Errorf("TierForPoints(%d) = %d, want %d", tc.points, got, tc.want)
		}
	}
}

func TestTierForPoints_Monotonic(t *testing.T) {
	prev := TierForPoints(0)
	for points := 0; points <= 5000; points += 10 {
		cur := TierForPoints(points)
		if cur < prev {
			t.Fatalf("tier decreased from %d to %d at %d points", prev, cur, points)
		}
		prev = cur
	}
}

func TestTimerForTier(t *testing.T) {
	cases := []struct {
		tier Tier
		want time.Duration
	}{
		{TierStudent, 15 * time.Second},
		{TierIntern, 15 * time.Second},
		{TierResident, 12 * time.Second},
		{TierRegistrar, 12 * time.Second},
		{TierFellow, 10 * time.Second},
		{TierAttending, 8 * time.Second},
	}
	for _, tc := range cases {
		if got := TimerForTier(tc.tier); got != tc.want {
			t.Errorf("TimerForTier(%d) = %v, want %v", tc.tier, got, tc.want)
		}
	}
}

func TestTimerForTier_ClampsOutOfRange(t *testing.T) {
	if got := TimerForTier(0); got != 15*time.Second {
		t.Errorf("TimerForTier(0) = %v, want 15s", got)
	}
	if got := TimerForTier(99); got != 8*time.Second {
		t.Errorf("TimerForTier(99) = %v, want 8s", got)
	}
}

func TestCheckTierUp_CrossesBoundary(t *testing.T) {
	up := CheckTierUp(290, 50)
	if up == nil {
		t.Fatal("expected tier-up crossing the 300 threshold")
	}
	if up.From != TierStudent || up.To != TierIntern {
		t.Errorf("tier-up = %d -> %d, want 1 -> 2", up.From, up.To)
	}
	if up.Def.Name != "Intern" || up.Def.Threshold != 300 {
		t.Errorf("definition = %+v, want Intern at 300", up.Def)
	}
}

func TestCheckTierUp_AlreadyPastThreshold(t *testing.T) {
	if up := CheckTierUp(320, 50); up != nil {
		t.Errorf("expected no tier-up, got %+v", up)
	}
}

func TestCheckTierUp_UsesPriorPoints(t *testing.T) {
	// The comparison must run against the pre-update total: starting at
	// 290 and adding 600 crosses two boundaries in one session.
	up := CheckTierUp(290, 600)
	if up == nil {
		t.Fatal("expected tier-up")
	}
	if up.To != TierResident {
		t.Errorf("To = %d, want %d", up.To, TierResident)
	}
}

func TestDefinitionFor_Exhaustive(t *testing.T) {
	seen := make(map[string]bool)
	for tier := MinTier; tier <= MaxTier; tier++ {
		def := DefinitionFor(tier)
		if def.Tier != tier {
			t.Errorf("DefinitionFor(%d).Tier = %d", tier, def.Tier)
		}
		if def.Name == "" {
			t.Errorf("DefinitionFor(%d) has empty name", tier)
		}
		if seen[def.Name] {
			t.Errorf("duplicate tier name %q", def.Name)
		}
		seen[def.Name] = true
		if def.Threshold != Thresholds[tier-1] {
			t.Errorf("DefinitionFor(%d).Threshold = %d, want %d", tier, def.Threshold, Thresholds[tier-1])
		}
	}
}
