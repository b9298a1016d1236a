package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyVerificationError(t *testing.T) {
	err := NewVerification(http.StatusBadRequest, "UserID is required.")

	status, message := Classify(err)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
	}
	if message != "UserID is required." {
		t.Errorf("message = %q, want %q", message, "UserID is required.")
	}
}

func TestClassifyWrappedVerificationError(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewVerification(http.StatusNotFound, "File not found."))

	status, message := Classify(err)
	if status != http.StatusNotFound || message != "File not found." {
		t.Errorf("Classify = (%d, %q), want (404, \"File not found.\")", status, message)
	}
}

func TestClassifyUnclassifiedError(t *testing.T) {
	for _, err := range []error{
		errors.New("pq: connection refused"),
		&PersistenceError{Err: errors.New("broken pipe")},
		&StorageError{Err: errors.New("access denied")},
	} {
		status, message := Classify(err)
		if status != http.StatusInternalServerError {
			t.Errorf("Classify(%v) status = %d, want 500", err, status)
		}
		if message != "Internal server error." {
			t.Errorf("Classify(%v) message = %q, leaked internal text", err, message)
		}
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("bucket does not exist")
	err := &StorageError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("StorageError should unwrap to its cause")
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := errors.New("unique constraint violated")
	err := &PersistenceError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
}
