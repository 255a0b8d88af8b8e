package decode

import "time"

// fixDate resolves a day/hour/minute tuple against wall-clock time the way
// a METAR issue time (day-of-month + UTC time only, no month or year) is
// normally disambiguated: assume the current month, then nudge a month
// either direction if the result lands implausibly far from now.
//
// Grounded on original_source/usMetarDecoder.py Decoder.fix_date.
func fixDate(now time.Time, day, hour, minute int) (time.Time, bool) {
	if day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return now, false
	}
	y, m, _ := now.Date()

	// time.Date silently rolls an out-of-range day into the next month
	// (April 31 becomes May 1); t is only good for the threshold check
	// below, never for reading the year/month back - the month actually
	// in effect is tracked explicitly in y/m instead.
	t := time.Date(y, m, day, hour, minute, 0, 0, time.UTC)

	if t.After(now.Add(24 * time.Hour)) {
		y, m = rollMonth(y, m, -1)
	} else if t.Before(now.Add(-25 * 24 * time.Hour)) {
		y, m = rollMonth(y, m, 1)
	}

	if !validDay(y, int(m), day) {
		return now, false
	}
	return time.Date(y, m, day, hour, minute, 0, 0, time.UTC), true
}

func rollMonth(y int, m time.Month, delta int) (int, time.Month) {
	mi := int(m) - 1 + delta
	y += mi / 12
	mi = mi % 12
	if mi < 0 {
		mi += 12
		y--
	}
	return y, time.Month(mi + 1)
}

func validDay(year, month, day int) bool {
	daysInMonth := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	max := daysInMonth[month-1]
	if month == 2 && year%4 == 0 {
		max = 29
	}
	return day >= 1 && day <= max
}

// eventTimestamp reconstructs a full timestamp for an HHMM (or MM-only)
// embedded event time relative to the report's own issue time, moving it
// to the previous day when the embedded hour is more than one hour later
// than the issue hour (an observation at 0003 referring to an event at
// 2358 belongs to the previous day).
func eventTimestamp(issue time.Time, hour, minute int) time.Time {
	t := time.Date(issue.Year(), issue.Month(), issue.Day(), hour, minute, 0, 0, time.UTC)
	if hour > issue.Hour()+1 {
		t = t.AddDate(0, 0, -1)
	}
	return t
}
