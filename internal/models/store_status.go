package models

import "fmt"

// StoreStatus is the observed state of a store in one poll sample.
type StoreStatus string

const (
	StatusActive   StoreStatus = "active"
	StatusInactive StoreStatus = "inactive"
)

// ParseStoreStatus parses a raw status string from a source record.
func ParseStoreStatus(s string) (StoreStatus, error) {
	switch StoreStatus(s) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", fmt.Errorf("invalid store status: %q", s)
	}
}
