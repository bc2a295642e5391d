package services

import (
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// UserService reads and updates profiles. All weight/height writes are
// delegated to HealthService so there is exactly one history-merge path.
type UserService struct {
	db     *gorm.DB
	health *HealthService
}

func NewUserService(db *gorm.DB, health *HealthService) *UserService {
	return &UserService{db: db, health: health}
}

type ProfileInput struct {
	Age                 int      `json:"age"`
	Weight              float64  `json:"weight" binding:"required"`
	Height              float64  `json:"height" binding:"required"`
	Picture             string   `json:"picture"`
	FoodPreferences     []string `json:"food_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("HealthHistory", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Preload("SavedRecipes").
		Preload("SavedWorkouts").
		First(&user, userID).Error
	if err != nil {
		return nil, dbErr(err)
	}
	return &user, nil
}

// UpdateProfile records the measurement and stores the remaining profile
// fields, returning the fresh snapshot with the full ascending history.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*Snapshot, []models.HealthRecord, error) {
	snap, err := s.health.RecordMeasurement(userID, input.Weight, input.Height, time.Now())
	if err != nil {
		return nil, nil, err
	}

	// Reload after the measurement write so Save does not clobber the
	// fresh snapshot columns.
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, nil, dbErr(err)
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Picture != "" {
		pictureURL, err := utils.ResolveImageURL(input.Picture, fmt.Sprintf("avatars/%d", userID))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		user.Picture = pictureURL
	}
	if input.FoodPreferences != nil {
		user.FoodPreferences = input.FoodPreferences
	}
	if input.DietaryRestrictions != nil {
		user.DietaryRestrictions = input.DietaryRestrictions
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, nil, dbErr(err)
	}

	history, err := s.health.GetHistory(userID)
	if err != nil {
		return nil, nil, err
	}
	return snap, history, nil
}

// UpdateHealth is the weight/height-only variant of UpdateProfile.
func (s *UserService) UpdateHealth(userID uint, weight, height float64) (*Snapshot, []models.HealthRecord, error) {
	snap, err := s.health.RecordMeasurement(userID, weight, height, time.Now())
	if err != nil {
		return nil, nil, err
	}
	history, err := s.health.GetHistory(userID)
	if err != nil {
		return nil, nil, err
	}
	return snap, history, nil
}
