package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "profilecat/internal/errors"
	"profilecat/internal/models"
	"profilecat/internal/uuid"
)

// parseUUIDParam reads a UUID path parameter in canonical form.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parseUUIDParam(c *gin.Context, param string) (string, error) {
	id, err := uuid.Normalize(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// normalizeID canonicalizes a UUID taken from the query string.
func normalizeID(raw string) (string, error) {
	id, err := uuid.Normalize(raw)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid profile_id")
	}
	return id, nil
}

// requestLanguage returns the display language selected by the "language"
// query parameter, defaulting to French.
func requestLanguage(c *gin.Context) models.Language {
	return models.ParseLanguage(c.Query("language"))
}

// bindJSON decodes the request body into req. An empty body leaves req
// untouched. Field rule violations and values of the wrong JSON type become a
// VALIDATION_ERROR naming each field; syntactically broken JSON is INVALID_INPUT.
func bindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return apperrors.WithFields(apperrors.ErrValidation, "Validation failed", fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.WithFields(apperrors.ErrValidation, "Validation failed", map[string]string{
			typeErr.Field: typeMessage(typeErr.Type),
		})
	}

	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed JSON body")
}

// invalidQuery reports the first query parameter that failed its binding rule.
func invalidQuery(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+verrs[0].Field())
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid query parameters")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "trimmed_max", "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	}
	return "Invalid value."
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.String {
		return "Not a valid string."
	}
	return "Invalid value."
}

// respondWithError aborts the request with err. The ErrorHandler middleware
// renders it as a JSON error body.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
