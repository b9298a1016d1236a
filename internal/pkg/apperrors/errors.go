package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// VerificationError is an expected validation or business-rule failure.
// It carries the HTTP status and the message that go to the client verbatim.
type VerificationError struct {
	Status  int
	Message string
}

func NewVerification(status int, message string) *VerificationError {
	return &VerificationError{Status: status, Message: message}
}

func (e *VerificationError) Error() string {
	return e.Message
}

// StorageError wraps a failure from the object store.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("object storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure from the database.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Classify maps any error to the status code and message sent to the client.
// Verification errors pass through verbatim; everything else collapses to a
// generic 500 so internal error text never leaks.
func Classify(err error) (int, string) {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Status, verr.Message
	}
	return http.StatusInternalServerError, "Internal server error."
}
