package booking

import "time"

type AvailabilityInput struct {
	TrainerID string
	Date      time.Time
	TimeSlot  string
}

type AvailabilityResult struct {
	// Set for single-slot queries: true means the slot is free.
	Free bool `json:"success"`

	// Set for SlotAll queries: the occupied slots on that day.
	BookedSlots []string `json:"booked_slots,omitempty"`
}
