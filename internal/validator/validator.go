// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"profilecat/internal/uuid"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("uuid_id", validateUUIDID)
	_ = v.RegisterValidation("trimmed_max", validateTrimmedMax)
}

// jsonFieldName reports fields by their JSON name so error messages match
// the request payload.
func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// validateUUIDID accepts any string google/uuid can parse.
func validateUUIDID(fl validator.FieldLevel) bool {
	return uuid.IsValid(strings.TrimSpace(fl.Field().String()))
}

// validateTrimmedMax bounds the rune length of a value once surrounding
// whitespace is stripped, matching what is finally stored.
func validateTrimmedMax(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= limit
}
