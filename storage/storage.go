// Package storage provides the gorm-backed implementations of the
// service store interfaces.
package storage

import (
	"errors"
	"fmt"

	"backend/services"

	"gorm.io/gorm"
)

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return fmt.Errorf("%w: %v", services.ErrStore, err)
}
