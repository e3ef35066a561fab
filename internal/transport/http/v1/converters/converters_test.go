package converters

import (
	"testing"

	"github.com/feastline/storefront/internal/service/models/order"
)

func TestNewListOrdersResponsePagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int64
	}{
		{"even split", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single page", 3, 10, 1},
		{"empty", 0, 10, 0},
		{"zero limit clamped", 5, 0, 5},
		{"negative limit clamped", 5, -3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewListOrdersResponse([]order.Order{}, tt.total, 1, tt.limit)
			if resp.Pagination.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", resp.Pagination.Pages, tt.wantPages)
			}
			if resp.Pagination.Total != tt.total {
				t.Errorf("Total = %d, want %d", resp.Pagination.Total, tt.total)
			}
		})
	}
}

func TestBuildOrderModelFromRequest(t *testing.T) {
	req := &CreateOrderRequest{
		Items: []LineRequestDTO{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 3},
		},
		DeliveryAddress: "1 Main St",
		ContactNumber:   "+15550100",
	}

	got := BuildOrderModelFromRequest(req)

	if len(got.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(got.Lines))
	}
	if got.Lines[0].MenuItemID != 1 || got.Lines[0].Quantity != 2 {
		t.Errorf("Lines[0] = %+v", got.Lines[0])
	}
	if got.Lines[1].Quantity != 0 {
		t.Errorf("omitted quantity = %d, want 0 before service defaulting", got.Lines[1].Quantity)
	}
	if got.DeliveryAddress != "1 Main St" || got.ContactNumber != "+15550100" {
		t.Errorf("metadata = %q/%q", got.DeliveryAddress, got.ContactNumber)
	}
}
