package booking

import (
	"context"
	"time"

	"github.com/ironfit-labs/gym-platform/internal/models"
)

type Repository interface {
	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// IsSlotTaken reports whether an active booking already occupies the
	// trainer/day/slot combination. excludeID skips one record (the one
	// being edited); zero means exclude nothing.
	IsSlotTaken(
		ctx context.Context,
		trainerID string,
		dayStart time.Time,
		dayEnd time.Time,
		slot string,
		excludeID uint,
	) (bool, error)

	// ListActiveSlots returns the slot strings occupied by active bookings
	// for the trainer on the given day.
	ListActiveSlots(
		ctx context.Context,
		trainerID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]string, error)

	// -------- Booking (read / mutate) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing / reporting --------
	ListBookings(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	ListBookingsForReport(
		ctx context.Context,
		start *time.Time,
		end *time.Time,
		status string,
	) ([]models.Booking, error)
}
