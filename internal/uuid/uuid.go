// Package uuid generates and checks the identifiers used as primary keys.
package uuid

import (
	"strings"

	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, falling back to a random UUIDv4
// if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Normalize parses s and returns the canonical lowercase form.
func Normalize(s string) (string, error) {
	parsed, err := googleuuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
