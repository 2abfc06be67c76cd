// internal/quote/llpa_test.go
package quote

import (
	"testing"

	"github.com/lilshrooms/frankie/internal/rates"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLLPA_CreditTiers(t *testing.T) {
	tests := []struct {
		name     string
		credit   int
		expected float64
	}{
		{"below good tier", 620, 0.125},
		{"good tier lower bound", 680, 0.0625},
		{"good tier upper edge", 719, 0.0625},
		{"excellent tier lower bound", 720, 0.0},
		{"excellent tier upper edge", 759, 0.0},
		{"premium tier lower bound", 760, -0.0625},
		{"premium tier top", 850, -0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := CalculateLLPA(tt.credit, 50, rates.Fixed30)
			assert.Equal(t, tt.expected, adj.CreditAdjustment)
		})
	}
}

func TestCalculateLLPA_LTVTiers(t *testing.T) {
	tests := []struct {
		name     string
		ltv      float64
		expected float64
	}{
		{"above 80", 85, 0.25},
		{"exactly 80", 80, 0.125},
		{"above 70", 75, 0.125},
		{"exactly 70", 70, 0.0625},
		{"above 60", 65, 0.0625},
		{"exactly 60", 60, 0.0},
		{"well below", 40, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := CalculateLLPA(760, tt.ltv, rates.Fixed30)
			assert.Equal(t, tt.expected, adj.LTVAdjustment)
		})
	}
}

func TestCalculateLLPA_LoanTypes(t *testing.T) {
	tests := []struct {
		loanType rates.LoanType
		expected float64
	}{
		{rates.Fixed30, 0.0},
		{rates.Fixed15, 0.0},
		{rates.FHA30, 0.375},
		{rates.VA30, 0.125},
		{rates.Jumbo30, 0.25},
		{rates.ARM51, -0.125},
		{rates.ARM71, -0.125},
		{rates.ARM101, -0.125},
	}

	for _, tt := range tests {
		t.Run(string(tt.loanType), func(t *testing.T) {
			adj := CalculateLLPA(760, 50, tt.loanType)
			assert.Equal(t, tt.expected, adj.LoanTypeAdjustment)
		})
	}
}

func TestCalculateLLPA_TotalIsSumOfParts(t *testing.T) {
	adj := CalculateLLPA(650, 85, rates.FHA30)

	assert.Equal(t, 0.125, adj.CreditAdjustment)
	assert.Equal(t, 0.25, adj.LTVAdjustment)
	assert.Equal(t, 0.375, adj.LoanTypeAdjustment)
	assert.Equal(t, 0.75, adj.TotalAdjustment)
}

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name     string
		credit   int
		ltv      float64
		loanType rates.LoanType
		eligible bool
	}{
		{"conventional pass", 700, 80, rates.Fixed30, true},
		{"conventional credit floor", 620, 95, rates.Fixed30, true},
		{"conventional below credit floor", 619, 80, rates.Fixed30, false},
		{"conventional above ltv cap", 700, 95.1, rates.Fixed30, false},
		{"15yr tighter ltv cap", 700, 92, rates.Fixed15, false},
		{"fha lower credit floor", 580, 96.5, rates.FHA30, true},
		{"fha below floor", 579, 90, rates.FHA30, false},
		{"va full ltv", 650, 100, rates.VA30, true},
		{"jumbo needs 700", 699, 75, rates.Jumbo30, false},
		{"jumbo ltv cap", 720, 81, rates.Jumbo30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eligible, CheckEligibility(tt.credit, tt.ltv, tt.loanType))
		})
	}
}
