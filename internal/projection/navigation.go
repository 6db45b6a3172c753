package projection

import "time"

// ShiftWeek moves anchor by n weeks.
func ShiftWeek(anchor time.Time, n int) time.Time {
	return Day(anchor).AddDate(0, 0, 7*n)
}

// ShiftMonth moves anchor by n calendar months. The result is the 1st of the
// target month so that short months never overflow into the next one.
func ShiftMonth(anchor time.Time, n int) time.Time {
	d := Day(anchor)
	return time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// Today resets an anchor to the current date read from now.
func Today(now func() time.Time) time.Time {
	return Day(now())
}
