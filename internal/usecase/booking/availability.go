package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

type AvailabilityQuery struct {
	TrainerID string
	Date      string // YYYY-MM-DD
	TimeSlot  string // slot value or "all"
}

// Execute is read-only: it answers "which slots are taken" (SlotAll) or
// "is this exact slot free". Cancelled bookings never count.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	q AvailabilityQuery,
) (*domain.AvailabilityResult, error) {

	if strings.TrimSpace(q.TrainerID) == "" {
		return nil, httperr.ErrValidation("Trainer is required.", nil)
	}

	// A malformed date is an error, never "no bookings found".
	date, err := time.ParseInLocation("2006-01-02", q.Date, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrValidation("Invalid date.", map[string]any{
			"date": q.Date,
		})
	}

	dayStart, dayEnd := domain.DayBounds(date)

	if q.TimeSlot == domain.SlotAll {
		slots, err := uc.repo.ListActiveSlots(ctx, q.TrainerID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		if slots == nil {
			slots = []string{}
		}
		return &domain.AvailabilityResult{BookedSlots: slots}, nil
	}

	if !domain.IsValidSlot(q.TimeSlot) {
		return nil, httperr.ErrValidation("Invalid time slot.", map[string]any{
			"time_slot": q.TimeSlot,
		})
	}

	taken, err := uc.repo.IsSlotTaken(ctx, q.TrainerID, dayStart, dayEnd, q.TimeSlot, 0)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityResult{Free: !taken}, nil
}
