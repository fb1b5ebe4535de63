package booking

import (
	"context"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/notification"
)

type UpdateStatus struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute moves a booking to any of the three statuses. Transitions are
// deliberately unrestricted: cancelling frees the slot, and re-opening a
// cancelled booking goes back through the unique index.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
) (*models.Booking, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrValidation("Invalid status.", map[string]any{
			"status": status,
		})
	}

	b, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = status
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.BookingStatusChanged(b)

	uc.audit.Dispatch(audit.Event{
		Actor:    b.Email,
		Action:   "booking_status_" + status,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
