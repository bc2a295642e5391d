package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAuthService(db *gorm.DB, log *logrus.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrValidation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dbErr(err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	user := models.User{
		Name:                name,
		Email:               email,
		Password:            hashed,
		FoodPreferences:     []string{},
		DietaryRestrictions: []string{},
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, dbErr(err)
	}
	return &user, nil
}

func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.
		Preload("HealthHistory", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Preload("SavedRecipes").
		Preload("SavedWorkouts").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, dbErr(err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}
	return &user, nil
}

// ForgotPassword issues a short-lived reset code and emails it. Unknown
// addresses are reported as ErrNotFound; the controller keeps the
// response uniform so the endpoint does not leak account existence.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return dbErr(err)
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return dbErr(err)
	}

	if err := utils.SendResetEmail(user.Email, token); err != nil && s.log != nil {
		s.log.WithError(err).Warn("reset email send failed")
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired token", ErrValidation)
		}
		return dbErr(err)
	}
	if time.Now().After(user.ResetTokenExp) {
		return fmt.Errorf("%w: invalid or expired token", ErrValidation)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return dbErr(s.db.Save(&user).Error)
}
