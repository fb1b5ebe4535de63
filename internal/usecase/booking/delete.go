package booking

import (
	"context"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes. Bookings are leaf records, nothing cascades.
func (uc *DeleteBooking) Execute(ctx context.Context, id uint) error {
	b, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    b.Email,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
