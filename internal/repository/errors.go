package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an ID does not resolve to an active record
// visible to the caller.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
