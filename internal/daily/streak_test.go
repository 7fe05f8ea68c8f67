package daily

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func completedDays(offsets ...int) map[string]bool {
	m := make(map[string]bool)
	for _, o := range offsets {
		m[DayKey(day(o))] = true
	}
	return m
}

func TestStreakAfterCompletion_Consecutive(t *testing.T) {
	completed := completedDays(0, -1, -2, -3)
	length, used := StreakAfterCompletion(completed, 0, day(0))
	if length != 4 || used != 0 {
		t.Errorf("streak = %d (used %d), want 4 (used 0)", length, used)
	}
}

func TestStreakAfterCompletion_TodayOnly(t *testing.T) {
	completed := completedDays(0)
	length, used := StreakAfterCompletion(completed, 1, day(0))
	if length != 1 || used != 0 {
		t.Errorf("streak = %d (used %d), want 1 (used 0)", length, used)
	}
}

func TestStreakAfterCompletion_FreezeBridgesOneGap(t *testing.T) {
	// Today and two days ago completed, yesterday missed. The frozen day
	// counts toward the streak length.
	completed := completedDays(0, -2, -3)
	length, used := StreakAfterCompletion(completed, 1, day(0))
	if length != 4 || used != 1 {
		t.Errorf("streak = %d (used %d), want 4 (used 1)", length, used)
	}
}

func TestStreakAfterCompletion_NoFreezeNoBridge(t *testing.T) {
	completed := completedDays(0, -2, -3)
	length, used := StreakAfterCompletion(completed, 0, day(0))
	if length != 1 || used != 0 {
		t.Errorf("streak = %d (used %d), want 1 (used 0)", length, used)
	}
}

func TestStreakAfterCompletion_FreezeNeverPadsDeadStreak(t *testing.T) {
	// Nothing sits beyond the gap, so the freeze must not be spent.
	completed := completedDays(0)
	length, used := StreakAfterCompletion(completed, 1, day(0))
	if length != 1 || used != 0 {
		t.Errorf("streak = %d (used %d), want 1 (used 0)", length, used)
	}
}

func TestStreakAfterCompletion_TwoDayGapEndsStreak(t *testing.T) {
	completed := completedDays(0, -3, -4)
	length, used := StreakAfterCompletion(completed, 1, day(0))
	if length != 1 || used != 0 {
		t.Errorf("streak = %d (used %d), want 1 (used 0): a freeze covers one day only", length, used)
	}
}

func TestStreakAfterCompletion_OneFreezePerRun(t *testing.T) {
	// Two separate single-day gaps but a single credit: the walk stops at
	// the second gap.
	completed := completedDays(0, -2, -4)
	length, used := StreakAfterCompletion(completed, 1, day(0))
	if length != 3 || used != 1 {
		t.Errorf("streak = %d (used %d), want 3 (used 1)", length, used)
	}
}

func TestMilestoneReached(t *testing.T) {
	cases := []struct {
		prev, current, want int
	}{
		{6, 7, 7},
		{7, 8, 0},
		{29, 30, 30},
		{0, 35, 7}, // first milestone crossed wins
		{99, 100, 100},
		{100, 101, 0},
		{5, 6, 0},
	}
	for _, tc := range cases {
		if got := MilestoneReached(tc.prev, tc.current); got != tc.want {
			t.Errorf("MilestoneReached(%d, %d) = %d, want %d", tc.prev, tc.current, got, tc.want)
		}
	}
}

func TestWeekKey(t *testing.T) {
	// 2026-01-01 is a Thursday, ISO week 1 of 2026.
	if got := weekKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2026-W01" {
		t.Errorf("weekKey = %q, want 2026-W01", got)
	}
	// Sunday 2026-01-04 still belongs to week 1; Monday the 5th starts week 2.
	if got := weekKey(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)); got != "2026-W01" {
		t.Errorf("weekKey = %q, want 2026-W01", got)
	}
	if got := weekKey(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)); got != "2026-W02" {
		t.Errorf("weekKey = %q, want 2026-W02", got)
	}
}

func TestCompletionsInWeek(t *testing.T) {
	completed := map[string]bool{
		"2026-01-05": true, // Monday, week 2
		"2026-01-06": true,
		"2026-01-11": true,  // Sunday, still week 2
		"2026-01-12": true,  // Monday, week 3
		"2026-01-04": true,  // Sunday, week 1
		"garbage":    true,  // unparseable keys are skipped
		"2026-01-07": false, // explicit false does not count
	}
	got := completionsInWeek(completed, time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC))
	if got != 3 {
		t.Errorf("completionsInWeek = %d, want 3", got)
	}
}
