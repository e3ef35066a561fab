package updatestatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/order"
)

type stubService struct {
	gotOrderID   int64
	gotRequested string
	result       *order.Order
	err          error
}

func (s *stubService) SetStatus(
	_ context.Context,
	_ auth.Principal,
	orderID int64,
	requested string,
) (*order.Order, error) {
	s.gotOrderID = orderID
	s.gotRequested = requested

	return s.result, s.err
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+id+"/status", strings.NewReader(body))

	principal := auth.Principal{UserID: 42, Role: auth.RoleAdmin}
	ctx := auth.WithPrincipal(req.Context(), principal)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestUpdateStatus(t *testing.T) {
	stub := &stubService{result: &order.Order{ID: 5, Status: order.StatusProcessing}}

	rec := httptest.NewRecorder()
	UpdateStatus(rec, newRequest("5", `{"status":"PROCESSING"}`), stub)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.gotOrderID != 5 || stub.gotRequested != "PROCESSING" {
		t.Errorf("service received id=%d status=%q", stub.gotOrderID, stub.gotRequested)
	}
}

func TestUpdateStatusBadOrderID(t *testing.T) {
	rec := httptest.NewRecorder()
	UpdateStatus(rec, newRequest("abc", `{"status":"PROCESSING"}`), &stubService{})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"unknown status", errs.ErrInvalidStatus, http.StatusBadRequest},
		{"order missing", errs.ErrOrderNotFound, http.StatusNotFound},
		{
			"terminal order",
			&errs.InvalidTransitionError{From: "COMPLETED", To: "PENDING"},
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			UpdateStatus(rec, newRequest("5", `{"status":"PENDING"}`), &stubService{err: tt.err})

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
