package digest

import (
	"fmt"
	"math"
	"time"
)

// Zone returns a fixed-offset location for a signed hour offset; fractional hours are allowed.
func Zone(hours float64) *time.Location {
	seconds := int(math.Round(hours * 3600))
	return time.FixedZone(zoneName(seconds), seconds)
}

// ToLocal converts t to the wall clock of the given offset. The instant is unchanged.
func ToLocal(t time.Time, hours float64) time.Time {
	return t.In(Zone(hours))
}

// ToUTC is the inverse of ToLocal.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

func zoneName(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
