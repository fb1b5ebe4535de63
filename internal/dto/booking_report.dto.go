package dto

import (
	"time"

	"github.com/ironfit-labs/gym-platform/internal/models"
)

// BookingReportDTO is the flat row shape of the report export.
type BookingReportDTO struct {
	ID        uint      `json:"id"`
	TrainerID string    `json:"trainer_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingReportDTO(b models.Booking) BookingReportDTO {
	return BookingReportDTO{
		ID:        b.ID,
		TrainerID: b.TrainerID,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date.Format("2006-01-02"),
		TimeSlot:  b.TimeSlot,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
