package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the GORM repositories. Callers match them with errors.Is.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrOutOfStock     = errors.New("movie out of stock")
	ErrAlreadyClosed  = errors.New("rental already closed")
)

// isDuplicate reports whether err is a unique constraint violation.
// It relies on gorm.Config.TranslateError being enabled.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
