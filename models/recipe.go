package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Title      string  `gorm:"not null" json:"title"`
	Image      string  `json:"image"`
	PrepTime   int     `json:"prep_time"` // minutes
	CookTime   int     `json:"cook_time"` // minutes
	Servings   int     `json:"servings"`
	Difficulty string  `gorm:"size:16" json:"difficulty"` // "easy" | "medium" | "hard"
	Rating     float64 `json:"rating"`
	Cuisine    string  `json:"cuisine"`
	Calories   float64 `json:"calories"`

	Ingredients  []string `gorm:"serializer:json" json:"ingredients"`
	Instructions []string `gorm:"serializer:json" json:"instructions"`

	AuthorID uint `gorm:"index" json:"author_id"`
}
