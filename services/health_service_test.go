package services_test

import (
	"errors"
	"testing"
	"time"

	"backend/models"
	"backend/services"
)

type mockHealthStore struct {
	users   map[uint]*models.User
	records []*models.HealthRecord
	nextID  uint
}

func newMockHealthStore(userIDs ...uint) *mockHealthStore {
	s := &mockHealthStore{users: make(map[uint]*models.User)}
	for _, id := range userIDs {
		u := &models.User{}
		u.ID = id
		s.users[id] = u
	}
	return s
}

func (s *mockHealthStore) FindUser(userID uint) (*models.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return u, nil
}

func (s *mockHealthStore) SaveSnapshot(userID uint, weight, height, bmi float64) error {
	u, ok := s.users[userID]
	if !ok {
		return services.ErrNotFound
	}
	u.Weight, u.Height, u.BMI = weight, height, bmi
	return nil
}

func (s *mockHealthStore) FindRecord(userID uint, day time.Time) (*models.HealthRecord, error) {
	for _, r := range s.records {
		if r.UserID == userID && r.Day.Equal(day) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *mockHealthStore) SaveRecord(rec *models.HealthRecord) error {
	if rec.ID == 0 {
		s.nextID++
		rec.ID = s.nextID
		s.records = append(s.records, rec)
	}
	return nil
}

func (s *mockHealthStore) ListRecords(userID uint) ([]models.HealthRecord, error) {
	out := []models.HealthRecord{}
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Day.Before(out[j-1].Day); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func TestRecordMeasurement_Validation(t *testing.T) {
	svc := services.NewHealthService(newMockHealthStore(1))

	tests := []struct {
		name   string
		weight float64
		height float64
	}{
		{"zero weight", 0, 175},
		{"zero height", 70, 0},
		{"negative weight", -70, 175},
		{"implausible height", 70, 400},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordMeasurement(1, tc.weight, tc.height, time.Now())
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRecordMeasurement_UnknownUser(t *testing.T) {
	svc := services.NewHealthService(newMockHealthStore(1))

	if _, err := svc.RecordMeasurement(99, 70, 175, time.Now()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordMeasurement_DerivesBMI(t *testing.T) {
	store := newMockHealthStore(1)
	svc := services.NewHealthService(store)

	snap, err := svc.RecordMeasurement(1, 70, 175, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.BMI != 22.9 {
		t.Fatalf("snapshot bmi = %v, want 22.9", snap.BMI)
	}
	if snap.Category != "Normal weight" {
		t.Fatalf("snapshot category = %q, want %q", snap.Category, "Normal weight")
	}
	if store.users[1].BMI != 22.9 {
		t.Fatalf("user snapshot bmi = %v, want 22.9", store.users[1].BMI)
	}
}

func TestRecordMeasurement_SameDayOverwrites(t *testing.T) {
	store := newMockHealthStore(1)
	svc := services.NewHealthService(store)

	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, 3, 10, 21, 30, 0, 0, time.Local)

	if _, err := svc.RecordMeasurement(1, 70, 175, morning); err != nil {
		t.Fatalf("first call: %v", err)
	}
	snap, err := svc.RecordMeasurement(1, 72, 175, evening)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	history, err := svc.GetHistory(1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].Weight != 72 {
		t.Fatalf("record weight = %v, want the second call's 72", history[0].Weight)
	}
	if snap.Weight != 72 || store.users[1].Weight != 72 {
		t.Fatalf("snapshot weight = %v / %v, want 72", snap.Weight, store.users[1].Weight)
	}
}

func TestRecordMeasurement_NewDayAppends(t *testing.T) {
	store := newMockHealthStore(1)
	svc := services.NewHealthService(store)

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local)
	day3 := time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local)

	for i, now := range []time.Time{day1, day2, day3} {
		if _, err := svc.RecordMeasurement(1, 70+float64(i), 175, now); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	history, err := svc.GetHistory(1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if !history[i-1].Day.Before(history[i].Day) {
			t.Fatalf("history not strictly ascending at index %d", i)
		}
	}
}

func TestGetHistory_UnknownUser(t *testing.T) {
	svc := services.NewHealthService(newMockHealthStore(1))

	if _, err := svc.GetHistory(42); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
