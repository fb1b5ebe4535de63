package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ironfit-labs/gym-platform/internal/domain/booking"
	"github.com/ironfit-labs/gym-platform/internal/httperr"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

func validCreateInput() CreateBookingInput {
	tomorrow := timezone.Now().Add(24 * time.Hour).Format("2006-01-02")
	return CreateBookingInput{
		TrainerID: "trainer-1",
		Name:      "Ana Silva",
		Email:     "Ana@Example.com",
		Age:       intPtr(29),
		Date:      tomorrow,
		TimeSlot:  "10:00 AM - 11:00 AM",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepo)
	notifier := &fakeNotifier{}
	uc := NewCreateBooking(repo, notifier, newTestAudit())

	repo.On("IsSlotTaken", mock.Anything, "trainer-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
		"10:00 AM - 11:00 AM", uint(0)).Return(false, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Booking).ID = 7
		}).Return(nil)

	b, err := uc.Execute(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "ana@example.com", b.Email, "email is stored lower-cased")
	assert.Equal(t, 12, b.Date.Hour(), "date is normalized to noon")
	assert.Equal(t, 1, notifier.createdCount())
	repo.AssertExpectations(t)
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	repo := new(MockBookingRepo)
	notifier := &fakeNotifier{}
	uc := NewCreateBooking(repo, notifier, newTestAudit())

	repo.On("IsSlotTaken", mock.Anything, "trainer-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
		"10:00 AM - 11:00 AM", uint(0)).Return(true, nil)

	_, err := uc.Execute(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	assert.Equal(t, 0, notifier.createdCount(), "no notification on conflict")
}

func TestCreateBooking_MissingFields(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := NewCreateBooking(repo, &fakeNotifier{}, newTestAudit())

	_, err := uc.Execute(context.Background(), CreateBookingInput{})

	require.Error(t, err)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeValidation, be.Code)

	missing, ok := be.Meta["missing_fields"].(map[string]bool)
	require.True(t, ok)
	for _, field := range []string{"name", "email", "age", "date", "timeSlot", "trainerId"} {
		assert.True(t, missing[field], "field %q should be reported", field)
	}
	repo.AssertNotCalled(t, "IsSlotTaken", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_NegativeAge(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := NewCreateBooking(repo, &fakeNotifier{}, newTestAudit())

	in := validCreateInput()
	in.Age = intPtr(-1)

	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_InvalidSlot(t *testing.T) {
	uc := NewCreateBooking(new(MockBookingRepo), &fakeNotifier{}, newTestAudit())

	for _, slot := range []string{"12:00 PM - 1:00 PM", "all", "9am-10am"} {
		in := validCreateInput()
		in.TimeSlot = slot

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation), "slot %q", slot)
	}
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	uc := NewCreateBooking(new(MockBookingRepo), &fakeNotifier{}, newTestAudit())

	in := validCreateInput()
	in.Date = "07/15/2026"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateBooking_PastDate(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := NewCreateBooking(repo, &fakeNotifier{}, newTestAudit())

	in := validCreateInput()
	in.Date = timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	repo.AssertNotCalled(t, "IsSlotTaken", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_TodayIsBookable(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := NewCreateBooking(repo, &fakeNotifier{}, newTestAudit())

	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	in := validCreateInput()
	in.Date = timezone.Now().Format("2006-01-02")

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_ExplicitStatus(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := NewCreateBooking(repo, &fakeNotifier{}, newTestAudit())

	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	in := validCreateInput()
	in.Status = string(domain.StatusConfirmed)

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
}

func TestCreateBooking_InvalidStatus(t *testing.T) {
	uc := NewCreateBooking(new(MockBookingRepo), &fakeNotifier{}, newTestAudit())

	in := validCreateInput()
	in.Status = "done"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateBooking_UniqueIndexConflictPassthrough(t *testing.T) {
	// When two requests race past the pre-check, the repository surfaces
	// the duplicate-key violation as the same conflict error.
	repo := new(MockBookingRepo)
	notifier := &fakeNotifier{}
	uc := NewCreateBooking(repo, notifier, newTestAudit())

	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).
		Return(httperr.ErrConflict("Slot is already booked.", nil))

	_, err := uc.Execute(context.Background(), validCreateInput())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	assert.Equal(t, 0, notifier.createdCount())
}
