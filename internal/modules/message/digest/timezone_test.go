package digest

import (
	"testing"
	"time"
)

func TestToLocal_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 23, 59, 59, 999, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
	}
	offsets := []float64{-12, -5, -3.5, 0, 5.5, 9, 14}

	for _, utc := range instants {
		for _, h := range offsets {
			local := ToLocal(utc, h)
			_, off := local.Zone()
			if want := int(h * 3600); off != want {
				t.Errorf("offset for %v = %d, want %d", h, off, want)
			}

			back := ToUTC(local)
			if !back.Equal(utc) || back.Location() != time.UTC {
				t.Errorf("round trip %v with %v hours = %v", utc, h, back)
			}

			shifted := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
			if got := shifted.Add(-time.Duration(h * float64(time.Hour))); !got.Equal(utc) {
				t.Errorf("wall clock minus offset = %v, want %v", got, utc)
			}
		}
	}
}

func TestZone_Name(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{9, "UTC+09:00"},
		{0, "UTC+00:00"},
		{-3.5, "UTC-03:30"},
		{5.75, "UTC+05:45"},
	}
	for _, tt := range tests {
		if got := Zone(tt.hours).String(); got != tt.want {
			t.Errorf("Zone(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
