package timezone

import "time"

// The availability cutoff and the reconciliation sweep compare
// appointments against shop wall-clock time, never UTC.

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the server's local zone. The
// original deployment ran in the shop's own timezone, so Local is the
// faithful default.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
