// internal/quote/eligibility.go
package quote

import "github.com/lilshrooms/frankie/internal/rates"

// minCreditScores holds the per-product credit score floor.
var minCreditScores = map[rates.LoanType]int{
	rates.Fixed30: 620,
	rates.Fixed15: 620,
	rates.FHA30:   580,
	rates.VA30:    620,
	rates.Jumbo30: 700,
	rates.ARM51:   620,
	rates.ARM71:   620,
	rates.ARM101:  620,
}

// maxLTVs holds the per-product LTV ceiling in percent.
var maxLTVs = map[rates.LoanType]float64{
	rates.Fixed30: 95,
	rates.Fixed15: 90,
	rates.FHA30:   96.5,
	rates.VA30:    100,
	rates.Jumbo30: 80,
	rates.ARM51:   95,
	rates.ARM71:   95,
	rates.ARM101:  95,
}

const (
	defaultMinCredit = 620
	defaultMaxLTV    = 95.0
)

// CheckEligibility applies the static per-product underwriting floors.
// Ineligibility is informational: quotes are still priced and returned.
func CheckEligibility(creditScore int, ltv float64, loanType rates.LoanType) bool {
	minCredit, ok := minCreditScores[loanType]
	if !ok {
		minCredit = defaultMinCredit
	}
	if creditScore < minCredit {
		return false
	}

	maxLTV, ok := maxLTVs[loanType]
	if !ok {
		maxLTV = defaultMaxLTV
	}
	return ltv <= maxLTV
}

// MinCreditScoreFor returns the credit score floor for a product.
func MinCreditScoreFor(loanType rates.LoanType) int {
	if min, ok := minCreditScores[loanType]; ok {
		return min
	}
	return defaultMinCredit
}

// MaxLTVFor returns the LTV ceiling for a product.
func MaxLTVFor(loanType rates.LoanType) float64 {
	if max, ok := maxLTVs[loanType]; ok {
		return max
	}
	return defaultMaxLTV
}
