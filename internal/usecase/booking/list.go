package booking

import (
	"context"
	"strings"

	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists bookings newest date first, optionally narrowed to one
// client email (lower-cased to match stored values).
func (uc *ListBookings) Execute(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, strings.ToLower(strings.TrimSpace(email)))
}
