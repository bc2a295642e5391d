package models

import (
	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Duration    int     `json:"duration"` // minutes
	Difficulty  string  `gorm:"size:16" json:"difficulty"` // "beginner" | "intermediate" | "advanced"
	Calories    float64 `json:"calories"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`

	AuthorID  uint       `gorm:"index" json:"author_id"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	gorm.Model
	WorkoutID uint `gorm:"index;not null" json:"workout_id"`

	Name         string   `gorm:"not null" json:"name"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Duration     int      `json:"duration"` // seconds, optional
	Calories     float64  `json:"calories"`
	Image        string   `json:"image"`
	Difficulty   string   `gorm:"size:16" json:"difficulty"`
	MuscleGroup  string   `json:"muscle_group"`
	Instructions []string `gorm:"serializer:json" json:"instructions"`
	Equipment    []string `gorm:"serializer:json" json:"equipment"`
}
