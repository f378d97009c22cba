package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return w, body
}

func TestRespond_MapsKindsToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrValidation("acknowledgement_required", "ack"), http.StatusBadRequest, "acknowledgement_required"},
		{ErrAccessDenied("not_owner", "nope"), http.StatusForbidden, "not_owner"},
		{ErrNotFound("assignment_not_found", "missing"), http.StatusNotFound, "assignment_not_found"},
		{ErrConflict("capacity_in_use", "busy", map[string]any{"in_use": 2}), http.StatusConflict, "capacity_in_use"},
		{fmt.Errorf("wrapped: %w", ErrValidation("invalid_date", "")), http.StatusBadRequest, "invalid_date"},
		{gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w, body := respond(t, tc.err)
		if w.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, w.Code)
		}
		if body.Code != tc.code {
			t.Fatalf("%v: expected code %s, got %s", tc.err, tc.code, body.Code)
		}
	}
}

func TestRespond_ConflictCarriesDetails(t *testing.T) {
	_, body := respond(t, ErrConflict("capacity_in_use", "busy", map[string]any{"in_use": 3}))

	if body.Kind != KindConflict {
		t.Fatalf("expected conflict kind, got %s", body.Kind)
	}
	if body.Details["in_use"] != float64(3) {
		t.Fatalf("expected in_use=3, got %v", body.Details["in_use"])
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("expected unique violation")
	}
	if IsUniqueViolation(errors.New("other")) {
		t.Fatalf("plain error is not a unique violation")
	}
	if !IsBusiness(ErrValidation("x", ""), "x") || IsBusiness(ErrValidation("x", ""), "y") {
		t.Fatalf("IsBusiness mismatch")
	}
}
