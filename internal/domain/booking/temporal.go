package booking

import "time"

// IsPast reports whether the requested (date, time_slot) moment is
// strictly before now, evaluated in now's location. A pair that does
// not parse is never considered past. Applied on the public submission
// path only; owners may backfill historical bookings.
func IsPast(date, timeSlot string, now time.Time) bool {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeSlot, now.Location())
	if err != nil {
		return false
	}
	return t.Before(now)
}
