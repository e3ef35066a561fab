package menuitem

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"DRINK", CategoryDrink, false},
		{"FOOD", CategoryFood, false},
		{"DESSERT", CategoryDessert, false},
		{"SNACK", CategorySnack, false},
		{"drink", "", true},
		{"PIZZA", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
