// internal/quote/types.go
package quote

import "github.com/lilshrooms/frankie/internal/rates"

// BorrowerProfile carries the applicant attributes a quote is priced on.
// Profiles are supplied per call and never persisted here.
type BorrowerProfile struct {
	LoanAmount  float64        `json:"loan_amount"`
	CreditScore int            `json:"credit_score"`
	LTV         float64        `json:"ltv"`
	LoanType    rates.LoanType `json:"loan_type"`
}

// LLPAAdjustment holds the percentage-point deltas applied to a base rate
// for borrower risk factors.
type LLPAAdjustment struct {
	CreditAdjustment   float64 `json:"credit_adjustment"`
	LTVAdjustment      float64 `json:"ltv_adjustment"`
	LoanTypeAdjustment float64 `json:"loan_type_adjustment"`
	TotalAdjustment    float64 `json:"total_adjustment"`
}

// Quote is one priced, eligibility-checked offer. QuoteID is the only
// non-deterministic field; everything else is a pure function of the
// profile and the rate snapshot.
type Quote struct {
	LoanAmount     float64        `json:"loan_amount"`
	CreditScore    int            `json:"credit_score"`
	LTV            float64        `json:"ltv"`
	LoanType       rates.LoanType `json:"loan_type"`
	BaseRate       float64        `json:"base_rate"`
	FinalRate      float64        `json:"final_rate"`
	FinalAPR       float64        `json:"final_apr"`
	IsEligible     bool           `json:"is_eligible"`
	LLPA           LLPAAdjustment `json:"llpa_adjustment"`
	MonthlyPayment float64        `json:"monthly_payment"`
	TotalInterest  float64        `json:"total_interest"`
	RateSource     string         `json:"rate_source"`
	LockPeriod     int            `json:"lock_period"`
	ObservedAt     string         `json:"observed_at"`
	QuoteID        string         `json:"quote_id"`
}

// Comparison ranks quotes for one profile across the comparison product
// list, cheapest final rate first.
type Comparison struct {
	LoanAmount   float64        `json:"loan_amount"`
	CreditScore  int            `json:"credit_score"`
	LTV          float64        `json:"ltv"`
	Quotes       []Quote        `json:"quotes"`
	BestRate     float64        `json:"best_rate"`
	BestLoanType rates.LoanType `json:"best_loan_type"`
}
