package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint   `json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Plan        string  `gorm:"size:30;not null" json:"plan"`
	Amount      float64 `json:"amount"`
	Currency    string  `gorm:"size:10;default:'BRL'" json:"currency"`
	ProviderRef string  `gorm:"size:100" json:"provider_ref"`
	Status      string  `gorm:"size:20;default:'created'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
