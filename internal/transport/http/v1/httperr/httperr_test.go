package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/feastline/storefront/internal/service/errs"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty order", errs.ErrEmptyOrder, http.StatusBadRequest},
		{"invalid status", errs.ErrInvalidStatus, http.StatusBadRequest},
		{"line item not found", &errs.LineItemNotFoundError{MenuItemID: 99}, http.StatusBadRequest},
		{"invalid quantity", &errs.InvalidQuantityError{Index: 0, Quantity: -1}, http.StatusBadRequest},
		{"invalid menu item", &errs.InvalidMenuItemError{Field: "name", Message: "name is required"}, http.StatusBadRequest},
		{"invalid transition", &errs.InvalidTransitionError{From: "COMPLETED", To: "PENDING"}, http.StatusConflict},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"order not found", errs.ErrOrderNotFound, http.StatusNotFound},
		{"menu item not found", errs.ErrMenuItemNotFound, http.StatusNotFound},
		{"user not found", errs.ErrUserNotFound, http.StatusNotFound},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteMasksServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error != "internal server error" {
		t.Errorf("body.Error = %q, want masked message", body.Error)
	}
	if strings.Contains(body.Error, "10.0.0.1") {
		t.Error("server error details leaked to client")
	}
}

func TestWriteKeepsClientErrorMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, &errs.LineItemNotFoundError{MenuItemID: 99})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error != "menu item with id 99 not found" {
		t.Errorf("body.Error = %q", body.Error)
	}
}
