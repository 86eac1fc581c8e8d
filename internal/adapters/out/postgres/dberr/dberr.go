// Package dberr maps driver errors onto the restaurant error taxonomy.
package dberr

import (
	"errors"

	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Translate classifies err for entity.
//
//   - serialization failures and deadlocks become errs.ConcurrentUpdateError
//   - unique violations (gorm.ErrDuplicatedKey, needs TranslateError on the
//     gorm config) become a validation error
//
// Anything else is returned unchanged.
func Translate(entity string, id any, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return errs.NewConcurrentUpdateErrorWithCause(entity, id, err)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause(entity+" already exists", err)
	}

	return err
}
