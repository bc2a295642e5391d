package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"average adult", 175, 70, 22.9},
		{"rounds down", 160, 50, 19.5},
		{"rounds up", 180, 90, 27.8},
		{"boundary normal", 200, 74, 18.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMI(tc.heightCm, tc.weightKg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("CalculateBMI(%v, %v) = %v, want %v", tc.heightCm, tc.weightKg, got, tc.want)
			}
		})
	}
}

func TestCalculateBMI_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 175, 0},
		{"negative height", -175, 70},
		{"negative weight", 175, -70},
		{"implausible height", 300, 70},
		{"implausible weight", 175, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateBMI(tc.heightCm, tc.weightKg); err == nil {
				t.Fatalf("expected error for height=%v weight=%v", tc.heightCm, tc.weightKg)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.9, "Normal weight"},
		{27.8, "Overweight"},
		{32.0, "Obesity class I"},
		{37.5, "Obesity class II"},
		{41.0, "Obesity class III"},
	}
	for _, tc := range tests {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
