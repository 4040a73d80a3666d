package valueobjects

import "fmt"

// Duration is the fixed set of visit durations offered to requesters.
type Duration string

const (
	DurationOneHour      Duration = "1 hour"
	DurationTwoHours     Duration = "2 hours"
	DurationHalfDay      Duration = "Half day"
	DurationFullDay      Duration = "Full day"
	DurationMultipleDays Duration = "Multiple days"
)

var validDurations = map[Duration]bool{
	DurationOneHour:      true,
	DurationTwoHours:     true,
	DurationHalfDay:      true,
	DurationFullDay:      true,
	DurationMultipleDays: true,
}

func (d Duration) String() string {
	return string(d)
}

func (d Duration) IsValid() bool {
	return validDurations[d]
}

func NewDuration(s string) (Duration, error) {
	d := Duration(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid visit duration: %s", s)
	}
	return d, nil
}
