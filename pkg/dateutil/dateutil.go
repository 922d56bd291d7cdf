package dateutil

import "time"

// TruncateToDate drops the clock part of t, keeping its location. Two
// timestamps on the same local calendar day truncate to the same value.
func TruncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfTrailingWindow returns midnight of the first day of the trailing
// window of `days` calendar days ending at now (now's day inclusive). For
// days=7 it is midnight six days ago.
func StartOfTrailingWindow(now time.Time, days int) time.Time {
	return TruncateToDate(now).AddDate(0, 0, -(days - 1))
}

// CountDistinctDates buckets the given timestamps by local calendar date
// and returns the number of distinct dates.
func CountDistinctDates(times []time.Time) int {
	dates := make(map[time.Time]struct{}, len(times))
	for _, t := range times {
		dates[TruncateToDate(t)] = struct{}{}
	}

	return len(dates)
}

// Anniversary returns the moment the given creation time turns the given
// number of years old. Calendar arithmetic applies, so a Feb 29 creation
// date normalizes to Mar 1 on non-leap years.
func Anniversary(createdAt time.Time, years int) time.Time {
	return createdAt.AddDate(years, 0, 0)
}
