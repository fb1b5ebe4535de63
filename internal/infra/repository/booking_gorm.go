package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

// Postgres SQLSTATE for unique constraint violations. The partial index
// idx_bookings_active_slot raises it when two writers race for one slot.
const uniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			// Race loser looks exactly like a failed pre-check to callers.
			return httperr.ErrConflict("Slot is already booked.", map[string]any{
				"date":      b.Date.Format("2006-01-02"),
				"time_slot": b.TimeSlot,
			})
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) IsSlotTaken(
	ctx context.Context,
	trainerID string,
	dayStart time.Time,
	dayEnd time.Time,
	slot string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"trainer_id = ? AND time_slot = ? AND status IN ? AND date >= ? AND date < ?",
			trainerID, slot, domain.ActiveStatuses, dayStart, dayEnd,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListActiveSlots(
	ctx context.Context,
	trainerID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"trainer_id = ? AND status IN ? AND date >= ? AND date < ?",
			trainerID, domain.ActiveStatuses, dayStart, dayEnd,
		).
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Booking (read / mutate)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Booking not found.")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("Slot is already booked.", map[string]any{
				"date":      b.Date.Format("2006-01-02"),
				"time_slot": b.TimeSlot,
			})
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Listing / reporting
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if email != "" {
		q = q.Where("email = ?", email)
	}

	var bookings []models.Booking
	if err := q.Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForReport(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
	status string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date < ?", *end)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
