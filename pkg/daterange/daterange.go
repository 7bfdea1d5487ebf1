package daterange

import "time"

// lastInstant is the offset from a period's exclusive upper bound to its
// inclusive last instant.
const lastInstant = -1 * time.Nanosecond

// Today returns the inclusive [start, end] range covering now's calendar day.
func Today(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(lastInstant)
	return start, end
}

// Week returns the inclusive [start, end] range of the week containing now.
// The week begins at 00:00:00 on startDay and ends at the last instant of the
// seventh day.
func Week(now time.Time, startDay time.Weekday) (time.Time, time.Time) {
	delta := (int(now.Weekday()) - int(startDay) + 7) % 7
	dayStart, _ := Today(now)
	start := dayStart.AddDate(0, 0, -delta)
	end := start.AddDate(0, 0, 7).Add(lastInstant)
	return start, end
}

// Month returns the inclusive [start, end] range of now's calendar month.
func Month(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(lastInstant)
	return start, end
}

// Contains reports whether instant falls within [start, end], inclusive on
// both bounds.
func Contains(instant, start, end time.Time) bool {
	return !instant.Before(start) && !instant.After(end)
}

// DayKey formats t's calendar day as a sortable "2006-01-02" string.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RelativeLabel renders t as "Today", "This Week", "This Month", or a plain
// formatted date, matching how the expense list presents section headers.
func RelativeLabel(t time.Time, now time.Time, weekStart time.Weekday) string {
	if start, end := Today(now); Contains(t, start, end) {
		return "Today"
	}
	if start, end := Week(now, weekStart); Contains(t, start, end) {
		return "This Week"
	}
	if start, end := Month(now); Contains(t, start, end) {
		return "This Month"
	}
	return t.Format("Jan 02, 2006")
}
