package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "profilecat/internal/errors"
	"profilecat/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func doRequest(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantFields bool
	}{
		{
			name:       "app_error",
			err:        apperrors.ErrCategoryNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "CATEGORY_NOT_FOUND",
		},
		{
			name: "validation_error_with_fields",
			err: apperrors.WithFields(apperrors.ErrValidation, "bad",
				map[string]string{"name": "required"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantFields: true,
		},
		{
			name:       "wrapped_internal",
			err:        apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "unexpected_error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/test", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := doRequest(r, http.MethodGet, "/test", nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
			if !ok {
				t.Fatalf("expected error object, got %s", rec.Body.String())
			}
			if errObj["code"] != tt.wantCode {
				t.Errorf("expected code %q, got %v", tt.wantCode, errObj["code"])
			}
			if _, has := errObj["fields"]; has != tt.wantFields {
				t.Errorf("fields present=%v, want %v", has, tt.wantFields)
			}
			if errObj["message"] == "connection refused" || errObj["message"] == "boom" {
				t.Errorf("internal error leaked: %v", errObj["message"])
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(requestIDKey)})
	})

	t.Run("generates_request_id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", nil)
		id := rec.Header().Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a UUID request id, got %q", id)
		}
		if parseBody(t, rec)["request_id"] != id {
			t.Error("request id in context and header differ")
		}
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		incoming := uuid.New().String()
		rec := doRequest(r, http.MethodGet, "/test", map[string]string{requestIDHeader: incoming})
		if got := rec.Header().Get(requestIDHeader); got != incoming {
			t.Errorf("expected %s, got %s", incoming, got)
		}
	})

	t.Run("replaces_garbage_incoming_id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", map[string]string{requestIDHeader: "<script>"})
		if got := rec.Header().Get(requestIDHeader); got == "<script>" {
			t.Error("expected a fresh request id")
		}
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://app.example.org"))
	r.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("sets_origin", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.org" {
			t.Errorf("unexpected origin %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		rec := doRequest(r, http.MethodOptions, "/test", nil)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("default_origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(""))
		r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := doRequest(r, http.MethodGet, "/test", nil)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected *, got %q", got)
		}
	})
}
