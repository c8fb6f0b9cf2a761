package domain

import "time"

// SlotAvailability is the per-slot answer to an availability query for a
// specific date and party size.
type SlotAvailability struct {
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	Date  time.Time          `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}
