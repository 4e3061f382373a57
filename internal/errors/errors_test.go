package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapKeepsSentinelAndInternal(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.StatusCode)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if err == ErrInternalServer {
		t.Error("Wrap must not return the sentinel itself")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrMissingParameter, "profile_id is required")

	if err.Error() != "profile_id is required" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Code != "MISSING_PARAMETER" {
		t.Errorf("expected MISSING_PARAMETER, got %s", err.Code)
	}
	if ErrMissingParameter.Message != "Missing required parameter" {
		t.Error("sentinel message must not be modified")
	}
}

func TestWithFields(t *testing.T) {
	err := WithFields(ErrValidation, "bad names", map[string]string{"name": "required"})

	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if err.Fields["name"] != "required" {
		t.Errorf("expected field message, got %v", err.Fields)
	}
	if ErrValidation.Fields != nil {
		t.Error("sentinel fields must stay nil")
	}
}
