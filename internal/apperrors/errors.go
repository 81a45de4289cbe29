package apperrors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ValidationError reports missing or invalid input: required fields,
// unknown college/department, duplicate faculty, similar-title collisions.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation creates a new ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation against a record that no longer exists.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NotFound creates a new NotFoundError for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a scheduling or uniqueness conflict: defense
// capacity reached, panel-uniqueness violated, past-date scheduling.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict creates a new ConflictError with a formatted message.
func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StorageCode classifies an underlying persistence failure.
type StorageCode string

const (
	StoragePermissionDenied   StorageCode = "permission-denied"
	StorageUnavailable        StorageCode = "unavailable"
	StoragePreconditionFailed StorageCode = "failed-precondition"
	StorageInvalidArgument    StorageCode = "invalid-argument"
	StorageUnknown            StorageCode = "unknown"
)

// storageMessages maps each classification to a stable human-readable
// message surfaced to callers.
var storageMessages = map[StorageCode]string{
	StoragePermissionDenied:   "You do not have permission to perform this action",
	StorageUnavailable:        "The storage backend is currently unavailable. Please try again later.",
	StoragePreconditionFailed: "Operation failed. Please try again.",
	StorageInvalidArgument:    "Invalid data provided. Please check your input.",
	StorageUnknown:            "An error occurred while processing your request",
}

// StorageError wraps an underlying persistence failure with a stable
// classification and message.
type StorageError struct {
	Code  StorageCode
	cause error
}

func (e *StorageError) Error() string {
	msg, ok := storageMessages[e.Code]
	if !ok {
		msg = storageMessages[StorageUnknown]
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *StorageError) Unwrap() error { return e.cause }

// Message returns the stable user-facing message without the cause.
func (e *StorageError) Message() string {
	if msg, ok := storageMessages[e.Code]; ok {
		return msg
	}
	return storageMessages[StorageUnknown]
}

// Storage wraps a persistence failure as a StorageError of unknown
// classification, annotated with context.
func Storage(err error, context string) error {
	if err == nil {
		return nil
	}
	return &StorageError{Code: StorageUnknown, cause: pkgerrors.Wrap(err, context)}
}

// StorageWithCode wraps a persistence failure under an explicit
// classification.
func StorageWithCode(err error, code StorageCode, context string) error {
	if err == nil {
		return nil
	}
	return &StorageError{Code: code, cause: pkgerrors.Wrap(err, context)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
