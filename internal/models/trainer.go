package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trainer struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Bio       string `gorm:"size:500" json:"bio"`
	PhotoURL  string `gorm:"size:255" json:"photo_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
