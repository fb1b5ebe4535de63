package booking

import (
	"context"
	"strings"
	"time"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Detail updates are full replacements: every field is required.
type UpdateBookingInput struct {
	TrainerID string
	Name      string
	Email     string
	Age       *int
	Date      string // YYYY-MM-DD
	TimeSlot  string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	missing := missingFields(CreateBookingInput{
		TrainerID: in.TrainerID,
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		Date:      in.Date,
		TimeSlot:  in.TimeSlot,
	})
	if len(missing) > 0 {
		return nil, httperr.ErrValidation("Missing required fields.", map[string]any{
			"missing_fields": missing,
		})
	}

	if *in.Age < 0 {
		return nil, httperr.ErrValidation("Age must be a non-negative number.", map[string]any{
			"age": *in.Age,
		})
	}

	if !domain.IsValidSlot(in.TimeSlot) {
		return nil, httperr.ErrValidation("Invalid time slot.", map[string]any{
			"time_slot": in.TimeSlot,
		})
	}

	b, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanEdit(domain.Status(b.Status)); err != nil {
		return nil, httperr.BusinessError{
			Code:    httperr.CodeNotPending,
			Message: "Only pending appointments can be modified.",
		}
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrValidation("Invalid date.", map[string]any{
			"date": in.Date,
		})
	}
	date = domain.NormalizeToNoon(date)

	// Re-check availability only when the slot actually moves, comparing
	// calendar days, not date strings. The edited record itself is skipped.
	moved := in.TrainerID != b.TrainerID ||
		in.TimeSlot != b.TimeSlot ||
		!domain.SameDay(date, b.Date)

	if moved {
		dayStart, dayEnd := domain.DayBounds(date)

		taken, err := uc.repo.IsSlotTaken(ctx, in.TrainerID, dayStart, dayEnd, in.TimeSlot, b.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrConflict("Slot is already booked.", map[string]any{
				"date":      date.Format("2006-01-02"),
				"time_slot": in.TimeSlot,
			})
		}
	}

	b.TrainerID = in.TrainerID
	b.Name = strings.TrimSpace(in.Name)
	b.Email = strings.ToLower(strings.TrimSpace(in.Email))
	b.Age = *in.Age
	b.Date = date
	b.TimeSlot = in.TimeSlot

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    b.Email,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
