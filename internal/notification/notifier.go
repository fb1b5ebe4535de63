package notification

import (
	"context"

	"github.com/ironfit-labs/gym-platform/internal/models"
)

// Notifier is the port the booking use cases talk to. Every call is
// best-effort: implementations must never propagate delivery failures back
// into the operation that triggered them.
type Notifier interface {
	BookingCreated(b *models.Booking)
	BookingStatusChanged(b *models.Booking)
	MemberRegistered(name, email string)
}

// Sender is the underlying delivery channel (SMTP, a queue, a fake in
// tests). The Dispatcher owns retrying-or-dropping policy, not the Sender.
type Sender interface {
	Send(ctx context.Context, to, name, subject, body string) error
}
