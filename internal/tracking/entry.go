package tracking

import "time"

// Entry is a single line of the tracking file.
type Entry struct {
	Raw  string
	Time time.Time // zero when the line is not a recognized timestamp
}

// Last returns the newest entry, or false if there are none.
func Last(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[len(entries)-1], true
}

// Streak returns the number of consecutive days with at least one entry,
// counting back from now. A day with no entry yet does not break the streak
// until it is over, so a run yesterday keeps a streak alive today.
func Streak(entries []Entry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Time.IsZero() {
			continue
		}
		days[dayKey(e.Time)] = true
	}
	if len(days) == 0 {
		return 0
	}

	day := now
	if !days[dayKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for days[dayKey(day)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
