package repository

import (
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"capstone-service/internal/apperrors"
)

func TestClassifyStorage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperrors.StorageCode
	}{
		{"invalid data", gorm.ErrInvalidData, apperrors.StorageInvalidArgument},
		{"insufficient privilege", &pgconn.PgError{Code: "42501"}, apperrors.StoragePermissionDenied},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, apperrors.StoragePreconditionFailed},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, apperrors.StoragePreconditionFailed},
		{"not-null violation", &pgconn.PgError{Code: "23502"}, apperrors.StorageInvalidArgument},
		{"unrecognized", io.ErrUnexpectedEOF, apperrors.StorageUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyStorage(tc.err); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWrapStorageKeepsClassification(t *testing.T) {
	err := wrapStorage(&pgconn.PgError{Code: "42501"}, "update project")

	var storageErr *apperrors.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatal("expected a StorageError")
	}
	if storageErr.Code != apperrors.StoragePermissionDenied {
		t.Errorf("expected permission-denied classification, got %s", storageErr.Code)
	}
	if storageErr.Message() != "You do not have permission to perform this action" {
		t.Errorf("unexpected stable message: %q", storageErr.Message())
	}
}
