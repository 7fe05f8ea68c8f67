package daily

import "time"

// Streak milestones reported on completion.
var Milestones = []int{7, 30, 100}

// MaxFreezeCredits caps banked streak freezes.
const MaxFreezeCredits = 1

// WeeklyGoal is the number of completions within one ISO week that earns
// a streak-freeze credit.
const WeeklyGoal = 7

// StreakAfterCompletion walks backwards from today (which must already be
// marked completed) counting consecutive completed days. A single missed
// day is bridged by consuming an available freeze credit, but only when a
// completed day sits on the far side of the gap; a freeze never pads the
// end of a dead streak. Frozen days count toward the streak length.
func StreakAfterCompletion(completed map[string]bool, freezes int, today time.Time) (length, freezesUsed int) {
	day := today
	for {
		if completed[DayKey(day)] {
			length++
			day = day.AddDate(0, 0, -1)
			continue
		}
		if freezesUsed < freezes && completed[DayKey(day.AddDate(0, 0, -1))] {
			freezesUsed++
			length++
			day = day.AddDate(0, 0, -1)
			continue
		}
		return length, freezesUsed
	}
}

// MilestoneReached returns the milestone hit by moving from a shorter
// streak to the given one, or 0 if none was crossed.
func MilestoneReached(prev, current int) int {
	for _, m := range Milestones {
		if prev < m && current >= m {
			return m
		}
	}
	return 0
}

// weekKey identifies an ISO week, e.g. "2026-W35".
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return isoWeekString(year, week)
}

func isoWeekString(year, week int) string {
	// Manual formatting keeps the key stable and sortable.
	b := []byte{0, 0, 0, 0, '-', 'W', 0, 0}
	for i := 3; i >= 0; i-- {
		b[i] = byte('0' + year%10)
		year /= 10
	}
	b[7] = byte('0' + week%10)
	b[6] = byte('0' + (week/10)%10)
	return string(b)
}

// completionsInWeek counts completed dates falling in the ISO week of t.
func completionsInWeek(completed map[string]bool, t time.Time) int {
	wantYear, wantWeek := t.ISOWeek()
	n := 0
	for key, done := range completed {
		if !done {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", key, t.Location())
		if err != nil {
			continue
		}
		year, week := day.ISOWeek()
		if year == wantYear && week == wantWeek {
			n++
		}
	}
	return n
}
