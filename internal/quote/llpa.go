// internal/quote/llpa.go
package quote

import "github.com/lilshrooms/frankie/internal/rates"

// Credit score tier boundaries for pricing adjustments.
const (
	creditTierGood      = 680
	creditTierExcellent = 720
	creditTierPremium   = 760
)

// loanTypeAdjustments holds the product-level pricing deltas. Products not
// listed (conventional fixed) carry no adjustment; ARMs are handled
// separately since all ARM terms share one delta.
var loanTypeAdjustments = map[rates.LoanType]float64{
	rates.FHA30:   0.375,
	rates.VA30:    0.125,
	rates.Jumbo30: 0.25,
}

const armAdjustment = -0.125

// CalculateLLPA derives the loan-level price adjustments for a borrower.
// The tables are static constants, not a rules engine, so the monotonicity
// of each dimension is visible by inspection.
func CalculateLLPA(creditScore int, ltv float64, loanType rates.LoanType) LLPAAdjustment {
	var adj LLPAAdjustment

	switch {
	case creditScore < creditTierGood:
		adj.CreditAdjustment = 0.125
	case creditScore < creditTierExcellent:
		adj.CreditAdjustment = 0.0625
	case creditScore < creditTierPremium:
		adj.CreditAdjustment = 0.0
	default:
		adj.CreditAdjustment = -0.0625 // premium for excellent credit
	}

	switch {
	case ltv > 80:
		adj.LTVAdjustment = 0.25
	case ltv > 70:
		adj.LTVAdjustment = 0.125
	case ltv > 60:
		adj.LTVAdjustment = 0.0625
	}

	if loanType.IsARM() {
		adj.LoanTypeAdjustment = armAdjustment
	} else if delta, ok := loanTypeAdjustments[loanType]; ok {
		adj.LoanTypeAdjustment = delta
	}

	adj.TotalAdjustment = adj.CreditAdjustment + adj.LTVAdjustment + adj.LoanTypeAdjustment
	return adj
}
