package apperrors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	if !IsValidation(Validation("bad input")) {
		t.Error("Validation should satisfy IsValidation")
	}
	if !IsNotFound(NotFound("project")) {
		t.Error("NotFound should satisfy IsNotFound")
	}
	if !IsConflict(Conflict("day is full")) {
		t.Error("Conflict should satisfy IsConflict")
	}
	if !IsStorage(Storage(io.ErrUnexpectedEOF, "write")) {
		t.Error("Storage should satisfy IsStorage")
	}

	if IsValidation(Conflict("nope")) || IsNotFound(Validation("nope")) {
		t.Error("kind predicates should not cross-match")
	}
}

func TestStorageNilPassthrough(t *testing.T) {
	if Storage(nil, "write") != nil {
		t.Error("wrapping a nil error should yield nil")
	}
	if StorageWithCode(nil, StorageUnavailable, "write") != nil {
		t.Error("wrapping a nil error should yield nil")
	}
}

func TestStorageStableMessages(t *testing.T) {
	err := StorageWithCode(io.ErrUnexpectedEOF, StoragePermissionDenied, "update project")
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatal("expected a StorageError")
	}
	if storageErr.Message() != "You do not have permission to perform this action" {
		t.Errorf("unexpected stable message: %q", storageErr.Message())
	}
	if !strings.Contains(err.Error(), "unexpected EOF") {
		t.Errorf("full error should keep the cause: %q", err.Error())
	}

	unknown := Storage(io.ErrUnexpectedEOF, "update project")
	if !errors.As(unknown, &storageErr) {
		t.Fatal("expected a StorageError")
	}
	if storageErr.Code != StorageUnknown {
		t.Errorf("expected unknown classification, got %s", storageErr.Code)
	}
}
