package booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

// Mock repository

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) IsSlotTaken(ctx context.Context, trainerID string, dayStart, dayEnd time.Time, slot string, excludeID uint) (bool, error) {
	args := m.Called(ctx, trainerID, dayStart, dayEnd, slot, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) ListActiveSlots(ctx context.Context, trainerID string, dayStart, dayEnd time.Time) ([]string, error) {
	args := m.Called(ctx, trainerID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) DeleteBooking(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingRepo) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListBookingsForReport(ctx context.Context, start, end *time.Time, status string) ([]models.Booking, error) {
	args := m.Called(ctx, start, end, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// Fake notifier: records calls, never fails.

type fakeNotifier struct {
	mu            sync.Mutex
	created       []*models.Booking
	statusChanged []*models.Booking
	welcomed      []string
}

func (f *fakeNotifier) BookingCreated(b *models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, b)
}

func (f *fakeNotifier) BookingStatusChanged(b *models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusChanged = append(f.statusChanged, b)
}

func (f *fakeNotifier) MemberRegistered(name, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomed = append(f.welcomed, email)
}

func (f *fakeNotifier) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeNotifier) statusChangedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.statusChanged)
}

// Audit dispatcher over a discarding sink.

type noopSink struct{}

func (noopSink) Log(actor, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func newTestAudit() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}

func intPtr(v int) *int { return &v }
