package booking

import (
	"context"
	"time"

	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

type ReportQuery struct {
	StartDate string // YYYY-MM-DD, optional
	EndDate   string // YYYY-MM-DD, optional, inclusive
	Status    string // optional
}

type BookingReport struct {
	repo domain.Repository
}

func NewBookingReport(repo domain.Repository) *BookingReport {
	return &BookingReport{repo: repo}
}

// Execute is a read-only projection for exports. No rendering here; the
// handler returns the rows as JSON.
func (uc *BookingReport) Execute(
	ctx context.Context,
	q ReportQuery,
) ([]models.Booking, error) {

	loc := timezone.Location("")

	var start, end *time.Time

	if q.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.StartDate, loc)
		if err != nil {
			return nil, httperr.ErrValidation("Invalid start date.", map[string]any{
				"start_date": q.StartDate,
			})
		}
		start = &t
	}

	if q.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.EndDate, loc)
		if err != nil {
			return nil, httperr.ErrValidation("Invalid end date.", map[string]any{
				"end_date": q.EndDate,
			})
		}
		// inclusive end: cover the whole final day
		t = t.Add(24 * time.Hour)
		end = &t
	}

	if q.Status != "" && !domain.IsValidStatus(q.Status) {
		return nil, httperr.ErrValidation("Invalid status.", map[string]any{
			"status": q.Status,
		})
	}

	return uc.repo.ListBookingsForReport(ctx, start, end, q.Status)
}
