package digest

import (
	"fmt"
	"time"
)

// Labels are weekday names indexed Monday-first.
type Labels [7]string

var (
	LabelsJA = Labels{"月", "火", "水", "木", "金", "土", "日"}
	LabelsEN = Labels{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// LabelsFor looks up a label set by name ("ja" or "en").
func LabelsFor(name string) (Labels, error) {
	switch name {
	case "ja", "":
		return LabelsJA, nil
	case "en":
		return LabelsEN, nil
	}
	return Labels{}, fmt.Errorf("unknown weekday labels %q", name)
}

// WeekdayIndex maps t's calendar weekday to 0 (Monday) .. 6 (Sunday).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Label returns the label for t's weekday in t's own location.
func (l Labels) Label(t time.Time) string {
	return l[WeekdayIndex(t)]
}
