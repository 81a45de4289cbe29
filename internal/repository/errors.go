package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"capstone-service/internal/apperrors"
)

// wrapStorage classifies a backend failure before wrapping it, so callers
// see a stable message matching the failure class.
func wrapStorage(err error, context string) error {
	return apperrors.StorageWithCode(err, classifyStorage(err), context)
}

// classifyStorage maps recognizable GORM and Postgres failures onto the
// storage-error taxonomy. Anything else stays unknown.
func classifyStorage(err error) apperrors.StorageCode {
	if errors.Is(err, gorm.ErrInvalidData) || errors.Is(err, gorm.ErrInvalidValue) || errors.Is(err, gorm.ErrInvalidField) {
		return apperrors.StorageInvalidArgument
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501": // insufficient_privilege
			return apperrors.StoragePermissionDenied
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return apperrors.StoragePreconditionFailed
		case "22P02", "23502", "23503", "23505": // bad input or constraint violations
			return apperrors.StorageInvalidArgument
		}
	}
	return apperrors.StorageUnknown
}
