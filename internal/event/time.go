package event

import "fmt"

// MinutesPerDay is the number of minutes in a single day.
const MinutesPerDay = 24 * 60

// Clock is a time of day stored as minutes since midnight.
type Clock int

// ParseClock converts a 24-hour "HH:MM" string to a Clock.
// The string must be exactly five characters with a valid hour and minute.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	if !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, ErrInvalidTimeFormat
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return Clock(hours*60 + mins), nil
}

// MustParseClock is like ParseClock but panics on invalid input.
// Intended for constants and tests.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("event: invalid clock %q", s))
	}
	return c
}

// String formats the clock as "HH:MM".
// Values past the end of the day are rendered with hours above 23.
func (c Clock) String() string {
	m := int(c)
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Valid reports whether the clock falls within a single day.
func (c Clock) Valid() bool {
	return c >= 0 && c < MinutesPerDay
}

// Add returns the clock shifted by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// Sub returns the number of minutes between c and other.
func (c Clock) Sub(other Clock) int {
	return int(c - other)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
