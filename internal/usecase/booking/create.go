package booking

import (
	"context"
	"strings"
	"time"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/notification"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	TrainerID string
	Name      string
	Email     string
	Age       *int
	Date      string // YYYY-MM-DD
	TimeSlot  string
	Status    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Required fields, reported per field
	// --------------------------------------------------
	missing := missingFields(in)
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

	status := domain.InitialStatus()
	if in.Status != "" {
		if !domain.IsValidStatus(in.Status) {
			return nil, httperr.ErrValidation("Invalid status.", map[string]any{
				"status": in.Status,
			})
		}
		status = domain.Status(in.Status)
	}

	// --------------------------------------------------
	// Date: parse, normalize to noon, reject past days
	// --------------------------------------------------
	loc := timezone.Location("")
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrValidation("Invalid date.", map[string]any{
			"date": in.Date,
		})
	}

	date = domain.NormalizeToNoon(date)

	if domain.IsPastDay(date, timezone.Now()) {
		return nil, httperr.ErrValidation("Cannot book a past date.", map[string]any{
			"date": in.Date,
		})
	}

	// --------------------------------------------------
	// Availability pre-check (fast failure only; the partial unique
	// index is the actual arbiter under concurrency)
	// --------------------------------------------------
	dayStart, dayEnd := domain.DayBounds(date)

	taken, err := uc.repo.IsSlotTaken(ctx, in.TrainerID, dayStart, dayEnd, in.TimeSlot, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("Slot is already booked.", map[string]any{
			"date":      date.Format("2006-01-02"),
			"time_slot": in.TimeSlot,
		})
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	b := &models.Booking{
		TrainerID: in.TrainerID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Age:       *in.Age,
		Date:      date,
		TimeSlot:  in.TimeSlot,
		Status:    string(status),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Best-effort side effects
	// --------------------------------------------------
	uc.notifier.BookingCreated(b)

	uc.audit.Dispatch(audit.Event{
		Actor:    b.Email,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func missingFields(in CreateBookingInput) map[string]bool {
	missing := map[string]bool{}

	if strings.TrimSpace(in.Name) == "" {
		missing["name"] = true
	}
	if strings.TrimSpace(in.Email) == "" {
		missing["email"] = true
	}
	if in.Age == nil {
		missing["age"] = true
	}
	if strings.TrimSpace(in.Date) == "" {
		missing["date"] = true
	}
	if strings.TrimSpace(in.TimeSlot) == "" {
		missing["timeSlot"] = true
	}
	if strings.TrimSpace(in.TrainerID) == "" {
		missing["trainerId"] = true
	}

	return missing
}
