package booking

import "github.com/ironfit-labs/gym-platform/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses are the statuses that occupy a slot. A cancelled booking
// frees its slot but keeps its row for history.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// ===============================
// Validations
// ===============================

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanEdit gates detail updates: only pending bookings may be modified.
func CanEdit(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("not_pending")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
