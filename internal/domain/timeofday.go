package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time as minutes since midnight. Routes carry
// clock times rather than absolute timestamps because an itinerary is
// presented as "10:00 AM", not as a date.
type TimeOfDay int

// ParseTimeOfDay parses a 12-hour clock string such as "10:00 AM" or
// "1:05 pm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("parse time of day: %q is not in \"h:mm AM/PM\" form", s)
	}

	var pmOffset int
	switch strings.ToUpper(fields[1]) {
	case "AM":
	case "PM":
		pmOffset = 12 * 60
	default:
		return 0, fmt.Errorf("parse time of day: %q has unknown period %q", s, fields[1])
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("parse time of day: %q is not in \"h:mm AM/PM\" form", s)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return 0, fmt.Errorf("parse time of day: %q has invalid hour", s)
	}
	mins, err := strconv.Atoi(hm[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("parse time of day: %q has invalid minutes", s)
	}

	return TimeOfDay((hours%12)*60 + mins + pmOffset), nil
}

// Add advances the clock by the given number of minutes, wrapping past
// midnight.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	m := (int(t) + minutes) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay(m)
}

// String formats the time on a 12-hour clock, e.g. "10:00 AM".
func (t TimeOfDay) String() string {
	m := (int(t)%minutesPerDay + minutesPerDay) % minutesPerDay

	hours := m / 60
	mins := m % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	hours %= 12
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours, mins, period)
}
