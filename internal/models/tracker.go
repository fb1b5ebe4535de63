package models

import "time"

type WorkoutLog struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	MemberID uint `gorm:"not null;index" json:"member_id"`

	Date        time.Time `json:"date"`
	Exercise    string    `gorm:"size:100;not null" json:"exercise"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	WeightKg    float64   `json:"weight_kg"`
	DurationMin int       `json:"duration_min"`
	Notes       string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

type MealLog struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	MemberID uint `gorm:"not null;index" json:"member_id"`

	Date     time.Time `json:"date"`
	Meal     string    `gorm:"size:50;not null" json:"meal"`
	Food     string    `gorm:"size:255;not null" json:"food"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`

	CreatedAt time.Time `json:"created_at"`
}

type ProgressEntry struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	MemberID uint `gorm:"not null;index" json:"member_id"`

	Date        time.Time `json:"date"`
	WeightKg    float64   `json:"weight_kg"`
	BodyFatPct  float64   `json:"body_fat_pct"`
	MuscleKg    float64   `json:"muscle_kg"`
	WaistCm     float64   `json:"waist_cm"`
	Notes       string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
