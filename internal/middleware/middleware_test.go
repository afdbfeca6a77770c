package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("All fields are required."), http.StatusBadRequest},
		{"malformed", apperrors.NewMalformedRequestError("bad json"), http.StatusBadRequest},
		{"query param", apperrors.NewInvalidQueryParamError("bad year"), http.StatusBadRequest},
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"method", apperrors.NewCustomError(apperrors.ErrMethodNotAllowed, "Only GET method allowed."), http.StatusMethodNotAllowed},
		{"persistence", apperrors.NewPersistenceError(errors.New("fk violation")), http.StatusBadRequest},
		{"query", apperrors.NewQueryError(errors.New("timeout")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleAPIErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewPersistenceError(errors.New(`insert or update on table "payments" violates foreign key constraint`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != `insert or update on table "payments" violates foreign key constraint` {
		t.Errorf("body = %v", body)
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed())
	r.Use(Recovery(), RequestLogger())
	r.POST("/api/add-student/", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.GET("/api/panic/", func(c *gin.Context) { panic("kaboom") })
	return r
}

func TestMethodNotAllowedMessage(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/add-student/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Only POST method allowed." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/add-student/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/add-student/", nil))
	if len(w.Header().Get(RequestIDHeader)) != 36 {
		t.Errorf("generated id = %q", w.Header().Get(RequestIDHeader))
	}
}

func TestRecoveryReturnsErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/panic/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("body = %v", body)
	}
}
