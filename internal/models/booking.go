package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Opaque trainer reference. No FK on purpose: trainer records live in
	// their own table and bookings must survive trainer removal.
	TrainerID string `gorm:"size:64;not null;index" json:"trainer_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null;index" json:"email"`
	Age   int    `json:"age"`

	// Stored normalized to noon of the booked calendar day.
	Date     time.Time `gorm:"not null" json:"date"`
	TimeSlot string    `gorm:"size:30;not null" json:"time_slot"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
