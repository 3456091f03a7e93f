// Package service implements the operation semantics of the API: input
// validation, foreign-key resolution and the typed error outcomes handlers
// map to HTTP responses.
package service

import (
	"errors"
	"time"

	"rare/internal/models"

	"gorm.io/gorm"
)

// today returns the current UTC date with the time component zeroed.
// Publication and creation dates are date-only values.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// notFoundOr converts a missing-row error into a typed not-found outcome and
// passes every other storage failure through untouched.
func notFoundOr(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
