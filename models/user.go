package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Age     int    `json:"age"`
	Picture string `json:"picture"`

	// Snapshot of the most recent measurement. Always mirrors the
	// HealthRecord for the latest recorded day.
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	BMI    float64 `json:"bmi"`

	FoodPreferences     []string `gorm:"serializer:json" json:"food_preferences"`
	DietaryRestrictions []string `gorm:"serializer:json" json:"dietary_restrictions"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	HealthHistory []HealthRecord `gorm:"foreignKey:UserID" json:"health_history,omitempty"`
	SavedRecipes  []Recipe       `gorm:"many2many:user_saved_recipes" json:"saved_recipes,omitempty"`
	SavedWorkouts []Workout      `gorm:"many2many:user_saved_workouts" json:"saved_workouts,omitempty"`
}
