package streak

import "time"

// DayStart returns local midnight of t's calendar date in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// CalendarDayDifference returns the number of calendar dates between then and
// now as observed in loc. Clock time is ignored, so two instants on the same
// local date always yield 0 and 23:59 -> 00:01 yields 1. The result is
// negative when now falls on an earlier date than then.
func CalendarDayDifference(now, then time.Time, loc *time.Location) int {
	a := now.In(loc)
	b := then.In(loc)
	// Dates are re-anchored in UTC so DST transitions never shorten a day.
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db) / (24 * time.Hour))
}

// WeekStart returns local midnight of the first day of t's week, where weeks
// begin on firstDay.
func WeekStart(t time.Time, loc *time.Location, firstDay time.Weekday) time.Time {
	day := DayStart(t, loc)
	offset := (int(day.Weekday()) - int(firstDay) + 7) % 7
	// AddDate handles DST correctly, Add(-24h) does not
	return day.AddDate(0, 0, -offset)
}

// SameWeek reports whether a and b fall into the same week in loc.
func SameWeek(a, b time.Time, loc *time.Location, firstDay time.Weekday) bool {
	return WeekStart(a, loc, firstDay).Equal(WeekStart(b, loc, firstDay))
}
