package notification

import (
	"context"
	"fmt"

	"github.com/ironfit-labs/gym-platform/internal/logger"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

type message struct {
	To      string
	Name    string
	Subject string
	Body    string
}

// Dispatcher decouples booking operations from email delivery. Messages go
// through a buffered channel; a full queue drops the message instead of
// blocking the request, and delivery errors are logged and swallowed.
type Dispatcher struct {
	sender Sender
	queue  chan message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for m := range d.queue {
		if err := d.sender.Send(context.Background(), m.To, m.Name, m.Subject, m.Body); err != nil {
			logger.Errorf("notification to %s failed: %v", m.To, err)
		}
	}
}

func (d *Dispatcher) enqueue(m message) {
	select {
	case d.queue <- m:
		// enqueued
	default:
		logger.Errorf("notification queue full, dropping message to %s", m.To)
	}
}

// ===============================
// Notifier implementation
// ===============================

func (d *Dispatcher) BookingCreated(b *models.Booking) {
	d.enqueue(message{
		To:      b.Email,
		Name:    b.Name,
		Subject: "Booking Received",
		Body: fmt.Sprintf(
			"Hi %s,\n\nWe received your training session request.\n\nDate: %s\nTime: %s\nStatus: %s\n\nWe will confirm it shortly.\n\n- IronFit Team",
			b.Name, b.Date.Format("Jan 2, 2006"), b.TimeSlot, b.Status,
		),
	})
}

func (d *Dispatcher) BookingStatusChanged(b *models.Booking) {
	d.enqueue(message{
		To:      b.Email,
		Name:    b.Name,
		Subject: "Booking " + b.Status,
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour training session on %s (%s) is now %s.\n\n- IronFit Team",
			b.Name, b.Date.Format("Jan 2, 2006"), b.TimeSlot, b.Status,
		),
	})
}

func (d *Dispatcher) MemberRegistered(name, email string) {
	d.enqueue(message{
		To:      email,
		Name:    name,
		Subject: "Welcome to IronFit",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour account is ready. Book a trainer, track your workouts and pick a membership plan any time.\n\nSee you at the gym!\n\n- IronFit Team",
			name,
		),
	})
}

var _ Notifier = (*Dispatcher)(nil)
