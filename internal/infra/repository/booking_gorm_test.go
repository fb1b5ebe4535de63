package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

func setupMock(t *testing.T) (*BookingGormRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	repo := NewBookingGormRepository(gdb)

	closer := func() {
		db.Close()
	}

	return repo, mock, closer
}

func noonOn(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func bookingColumns() []string {
	return []string{
		"id", "trainer_id", "name", "email", "age",
		"date", "time_slot", "status", "created_at", "updated_at",
	}
}

func TestCreateBooking_InsertAndConflict(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &models.Booking{
		TrainerID: "trainer-1",
		Name:      "Ana Silva",
		Email:     "ana@example.com",
		Age:       29,
		Date:      noonOn(2026, time.September, 1),
		TimeSlot:  "9:00 AM - 10:00 AM",
		Status:    "pending",
	}

	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	err := repo.CreateBooking(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, uint(10), b.ID)

	// duplicate-key loser gets the same conflict error as a failed pre-check
	loser := *b
	loser.ID = 0
	loser.Email = "other@example.com"

	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_bookings_active_slot",
		})

	err = repo.CreateBooking(context.Background(), &loser)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSlotTaken(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	dayStart := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WithArgs("trainer-1", "9:00 AM - 10:00 AM", "pending", "confirmed", dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.IsSlotTaken(context.Background(),
		"trainer-1", dayStart, dayEnd, "9:00 AM - 10:00 AM", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WithArgs("trainer-1", "2:00 PM - 3:00 PM", "pending", "confirmed", dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err = repo.IsSlotTaken(context.Background(),
		"trainer-1", dayStart, dayEnd, "2:00 PM - 3:00 PM", 0)
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSlotTaken_ExcludesRecordUnderEdit(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	dayStart := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" .*id <> \$7`).
		WithArgs("trainer-1", "9:00 AM - 10:00 AM", "pending", "confirmed", dayStart, dayEnd, 12).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.IsSlotTaken(context.Background(),
		"trainer-1", dayStart, dayEnd, "9:00 AM - 10:00 AM", 12)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestListActiveSlots(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	dayStart := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT "time_slot" FROM "bookings"`).
		WithArgs("trainer-1", "pending", "confirmed", dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).
			AddRow("9:00 AM - 10:00 AM").
			AddRow("2:00 PM - 3:00 PM"))

	slots, err := repo.ListActiveSlots(context.Background(), "trainer-1", dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 10:00 AM", "2:00 PM - 3:00 PM"}, slots)
}

func TestGetBookingByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE "bookings"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).AddRow(
			12, "trainer-1", "Ana Silva", "ana@example.com", 29,
			noonOn(2026, time.September, 1), "9:00 AM - 10:00 AM", "pending", now, now,
		))

	b, err := repo.GetBookingByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, uint(12), b.ID)
	assert.Equal(t, "pending", b.Status)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE "bookings"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	_, err = repo.GetBookingByID(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestUpdateBooking_SaveAndConflict(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &models.Booking{
		ID:        12,
		TrainerID: "trainer-1",
		Name:      "Ana Silva",
		Email:     "ana@example.com",
		Age:       29,
		Date:      noonOn(2026, time.September, 1),
		TimeSlot:  "9:00 AM - 10:00 AM",
		Status:    "pending",
	}

	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateBooking(context.Background(), b))

	// moving onto an occupied slot trips the partial unique index
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.UpdateBooking(context.Background(), b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

func TestDeleteBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(`DELETE FROM "bookings" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteBooking(context.Background(), 12))
}

func TestListBookings(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE email = \$1 ORDER BY date DESC`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).AddRow(
			1, "trainer-1", "Ana Silva", "ana@example.com", 29,
			noonOn(2026, time.September, 1), "9:00 AM - 10:00 AM", "pending", now, now,
		))

	out, err := repo.ListBookings(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ana@example.com", out[0].Email)

	// no email filter lists everything
	mock.ExpectQuery(`SELECT \* FROM "bookings" ORDER BY date DESC`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	out, err = repo.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListBookingsForReport(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE date >= \$1 AND date < \$2 AND status = \$3 ORDER BY date DESC`).
		WithArgs(start, end, "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).AddRow(
			1, "trainer-1", "Ana Silva", "ana@example.com", 29,
			noonOn(2026, time.September, 10), "9:00 AM - 10:00 AM", "confirmed", now, now,
		))

	out, err := repo.ListBookingsForReport(context.Background(), &start, &end, "confirmed")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "confirmed", out[0].Status)
}
