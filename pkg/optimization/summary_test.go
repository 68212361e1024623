package optimization

import "testing"

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected string
	}{
		{
			name: "converged",
			summary: Summary{
				Field: "beef", Original: 100, Value: 57.25, BudgetKg: 200, TotalKg: 199.99, Converged: true,
			},
			expected: "beef up to 57.25 keeps the total within 200.00 kg CO2e (was 100, total 199.99 kg)",
		},
		{
			name: "infeasible",
			summary: Summary{
				Field: "electricity", Original: 300, Value: 0, BudgetKg: 10, TotalKg: 103.07,
			},
			expected: "electricity cannot keep the total within 10.00 kg CO2e (0 gives 103.07 kg)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
