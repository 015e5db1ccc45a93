package models

import "time"

// PollSample is one timestamped active/inactive observation for a store.
// Samples are immutable once recorded.
type PollSample struct {
	StoreID      string
	TimestampUTC time.Time
	Status       StoreStatus
}

// BusinessHoursEntry is one store-declared local open interval for one weekday.
// A store may have zero, one, or multiple entries per weekday.
type BusinessHoursEntry struct {
	StoreID        string
	DayOfWeek      DayOfWeek
	StartTimeLocal TimeOfDay
	EndTimeLocal   TimeOfDay
}

// StoreTimezone maps a store to its IANA timezone name. At most one per store;
// stores without a record fall back to the configured default zone.
type StoreTimezone struct {
	StoreID     string
	TimezoneStr string
}
