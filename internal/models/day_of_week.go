package models

import (
	"fmt"
	"time"
)

// DayOfWeek follows the source data convention: 0 = Monday .. 6 = Sunday.
// This differs from time.Weekday, where Sunday is 0.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NewDayOfWeek validates a raw day value from a source record.
func NewDayOfWeek(d int) (DayOfWeek, error) {
	if d < 0 || d > 6 {
		return 0, fmt.Errorf("invalid day of week: %d", d)
	}
	return DayOfWeek(d), nil
}

// Weekday converts to the Go weekday convention (Sunday = 0).
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}
