package database

import (
	"testing"

	"profilecat/internal/config"
)

func TestConfigConnectionStrings(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "cats",
		DBSSLMode:  "disable",
	})

	if got, want := cfg.DSN(), "host=db port=5433 user=app password=secret dbname=cats sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := cfg.URL(), "postgres://app:secret@db:5433/cats?sslmode=disable"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
