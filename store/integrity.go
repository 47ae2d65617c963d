package store

import (
	"errors"

	"gorm.io/gorm"
)

// sqliteConstraint is SQLITE_CONSTRAINT; extended codes keep it in the low byte.
const sqliteConstraint = 19

// IsIntegrityError reports whether err is a constraint violation raised by
// the database: unique, foreign key, check or not-null.
func IsIntegrityError(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return true
	}

	// Drivers that do not translate errors still expose the raw result code.
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code()&0xff == sqliteConstraint
	}
	return false
}
