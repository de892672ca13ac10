package academic

import "testing"

func TestCalculateGPA(t *testing.T) {
	tests := []struct {
		name   string
		grades []Grade
		want   float64
	}{
		{"empty", nil, 0.0},
		{"straight As", []Grade{{Letter: "A", CreditHours: 3}, {Letter: "A", CreditHours: 3}}, 4.0},
		{"mixed", []Grade{{Letter: "A", CreditHours: 3}, {Letter: "B", CreditHours: 3}}, 3.5},
		{"weighted by hours", []Grade{{Letter: "A", CreditHours: 1}, {Letter: "F", CreditHours: 3}}, 1.0},
		{"default hours", []Grade{{Letter: "B"}, {Letter: "C"}}, 2.5},
		{"unknown letter counts zero", []Grade{{Letter: "A", CreditHours: 3}, {Letter: "Z", CreditHours: 3}}, 2.0},
		{"rounds to two decimals", []Grade{{Letter: "A", CreditHours: 3}, {Letter: "B", CreditHours: 3}, {Letter: "B", CreditHours: 3}}, 3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGPA(tt.grades); got != tt.want {
				t.Fatalf("CalculateGPA(%v) = %v, want %v", tt.grades, got, tt.want)
			}
		})
	}
}
