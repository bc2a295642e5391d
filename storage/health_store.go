package storage

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type HealthStore struct {
	db *gorm.DB
}

func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

func (s *HealthStore) FindUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

func (s *HealthStore) SaveSnapshot(userID uint, weight, height, bmi float64) error {
	err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"weight": weight, "height": height, "bmi": bmi}).Error
	return storeErr(err)
}

func (s *HealthStore) FindRecord(userID uint, day time.Time) (*models.HealthRecord, error) {
	var rec models.HealthRecord
	err := s.db.Where("user_id = ? AND day = ?", userID, day).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &rec, nil
}

func (s *HealthStore) SaveRecord(rec *models.HealthRecord) error {
	return storeErr(s.db.Save(rec).Error)
}

func (s *HealthStore) ListRecords(userID uint) ([]models.HealthRecord, error) {
	records := []models.HealthRecord{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("day ASC").
		Find(&records).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return records, nil
}
