// internal/rates/types.go
package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LoanType identifies a supported mortgage product.
type LoanType string

const (
	Fixed30 LoanType = "30yr_fixed"
	Fixed15 LoanType = "15yr_fixed"
	FHA30   LoanType = "fha_30yr"
	VA30    LoanType = "va_30yr"
	Jumbo30 LoanType = "jumbo_30yr"
	ARM51   LoanType = "5_1_arm"
	ARM71   LoanType = "7_1_arm"
	ARM101  LoanType = "10_1_arm"
)

// SupportedLoanTypes is the fixed set of products the engine prices.
var SupportedLoanTypes = map[LoanType]bool{
	Fixed30: true,
	Fixed15: true,
	FHA30:   true,
	VA30:    true,
	Jumbo30: true,
	ARM51:   true,
	ARM71:   true,
	ARM101:  true,
}

// IsSupported reports whether the loan type is in the supported product set.
func IsSupported(lt LoanType) bool {
	return SupportedLoanTypes[lt]
}

// IsARM reports whether the product is an adjustable-rate mortgage.
func (lt LoanType) IsARM() bool {
	return strings.Contains(string(lt), "arm")
}

// TermYears returns the amortization term for the product.
func (lt LoanType) TermYears() int {
	if lt == Fixed15 {
		return 15
	}
	return 30
}

// RawRateRecord is a loosely-typed rate observation as delivered by an
// external feed. Numeric fields arrive as whatever JSON type the scraper
// produced, so they stay untyped until validation.
type RawRateRecord struct {
	Product    string      `json:"product"`
	Rate       interface{} `json:"rate"`
	APR        interface{} `json:"apr"`
	Fees       interface{} `json:"fees,omitempty"`
	Source     string      `json:"source,omitempty"`
	ObservedAt string      `json:"timestamp,omitempty"`
}

// CanonicalRate is a normalized, validated market rate observation for one
// loan product. Snapshots of these are immutable; each ingestion cycle
// replaces the whole set.
type CanonicalRate struct {
	LoanType   LoanType `json:"loan_type"`
	Rate       float64  `json:"rate"`
	APR        float64  `json:"apr"`
	LockPeriod int      `json:"lock_period"`
	Source     string   `json:"source"`
	ObservedAt string   `json:"observed_at"`
	Fees       float64  `json:"fees"`
}

// MinRate and MaxRate bound plausible market rates; observations outside
// (inclusive) are discarded during normalization.
const (
	MinRate = 0.1
	MaxRate = 20.0
)

// RoundRate rounds a percentage rate to 3 decimals, half to even.
func RoundRate(x float64) float64 {
	return decimal.NewFromFloat(x).RoundBank(3).InexactFloat64()
}

// RoundMoney rounds a dollar amount to cents, half to even.
func RoundMoney(x float64) float64 {
	return decimal.NewFromFloat(x).RoundBank(2).InexactFloat64()
}
