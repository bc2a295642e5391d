package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthRecord is one consolidated measurement per user per calendar day.
// Day is stored at local midnight; the unique index enforces the
// one-entry-per-day rule at the store layer.
type HealthRecord struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_user_day;not null" json:"user_id"`
	Day    time.Time `gorm:"uniqueIndex:idx_user_day;not null" json:"date"`
	Weight float64   `gorm:"not null" json:"weight"`
	Height float64   `gorm:"not null" json:"height"`
	BMI    float64   `gorm:"not null" json:"bmi"`
}
