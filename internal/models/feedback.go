package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberEmail string `gorm:"size:100" json:"member_email"`
	Rating      int    `gorm:"not null" json:"rating"`
	Category    string `gorm:"size:50" json:"category"`
	Comment     string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
