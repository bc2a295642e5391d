package services

import (
	"fmt"
	"time"

	"backend/models"
	"backend/utils"
)

// HealthService consolidates every weight/height write onto a single
// code path: derive BMI, merge into the per-day history, refresh the
// user snapshot.
type HealthService struct {
	store HealthStore
}

func NewHealthService(store HealthStore) *HealthService {
	return &HealthService{store: store}
}

// Snapshot is the denormalized current-state view kept on the user row.
type Snapshot struct {
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// RecordMeasurement merges a measurement into the user's history and
// updates the snapshot. Several calls on the same calendar day overwrite
// the day's record in place; history length grows only on a new day. The
// snapshot always reflects the latest call. Retrying with the same inputs
// is safe.
func (s *HealthService) RecordMeasurement(userID uint, weight, height float64, now time.Time) (*Snapshot, error) {
	bmi, err := utils.CalculateBMI(height, weight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.store.FindUser(userID); err != nil {
		return nil, err
	}

	day := dayStartLocal(now)
	rec, err := s.store.FindRecord(userID, day)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &models.HealthRecord{UserID: userID, Day: day}
	}
	rec.Weight = weight
	rec.Height = height
	rec.BMI = bmi
	if err := s.store.SaveRecord(rec); err != nil {
		return nil, err
	}

	if err := s.store.SaveSnapshot(userID, weight, height, bmi); err != nil {
		return nil, err
	}

	return &Snapshot{
		Weight:   weight,
		Height:   height,
		BMI:      bmi,
		Category: utils.BMICategory(bmi),
	}, nil
}

// GetHistory returns the user's consolidated records ascending by day.
func (s *HealthService) GetHistory(userID uint) ([]models.HealthRecord, error) {
	if _, err := s.store.FindUser(userID); err != nil {
		return nil, err
	}
	return s.store.ListRecords(userID)
}
