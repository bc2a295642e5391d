package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Stable error kinds returned by the service layer. Controllers map these
// to HTTP statuses; internal store details never reach the caller.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrStore      = errors.New("storage unavailable")
)

// dbErr folds a gorm error into the service taxonomy.
func dbErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStore, err)
}
