package testutil

import (
	"errors"
	"testing"

	apperrors "profilecat/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertFieldErrors checks that err is a validation error naming every given field.
func AssertFieldErrors(t *testing.T, err error, fields ...string) {
	t.Helper()

	appErr := AssertAppError(t, err, apperrors.ErrValidation.Code)
	for _, field := range fields {
		if _, ok := appErr.Fields[field]; !ok {
			t.Errorf("expected a message for field %q, got %v", field, appErr.Fields)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
