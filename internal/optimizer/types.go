// internal/optimizer/types.go
package optimizer

import (
	"github.com/lilshrooms/frankie/internal/quote"
	"github.com/lilshrooms/frankie/internal/rates"
)

// Dimension names the borrower attribute a suggestion perturbs.
type Dimension string

const (
	DimCreditScore Dimension = "credit_score"
	DimLTV         Dimension = "ltv"
	DimLoanAmount  Dimension = "loan_amount"
	DimLoanType    Dimension = "loan_type"
)

// Feasibility tiers for how achievable a suggested change is.
const (
	FeasibilityHigh        = "high"
	FeasibilityMedium      = "medium"
	FeasibilityLow         = "low"
	FeasibilityConditional = "conditional"
)

// Suggestion is one what-if scenario that would reduce cost. Fields beyond
// the shared savings figures apply only to their own dimension and are
// omitted elsewhere.
type Suggestion struct {
	Dimension         Dimension `json:"type"`
	Description       string    `json:"description"`
	CurrentValue      float64   `json:"current_value,omitempty"`
	TargetValue       float64   `json:"target_value,omitempty"`
	ImprovementNeeded float64   `json:"improvement_needed,omitempty"`

	RateSavings       float64 `json:"rate_savings,omitempty"`
	MonthlySavings    float64 `json:"monthly_savings"`
	TotalSavings      float64 `json:"total_savings"`
	NewRate           float64 `json:"new_rate,omitempty"`
	NewMonthlyPayment float64 `json:"new_monthly_payment"`
	Feasibility       string  `json:"feasibility"`

	// credit_score only
	Timeframe string `json:"timeframe,omitempty"`

	// ltv only
	AdditionalDownPayment float64 `json:"additional_down_payment,omitempty"`
	ROIPercentage         float64 `json:"roi_percentage,omitempty"`
	PaybackPeriodYears    float64 `json:"payback_period_years,omitempty"`

	// loan_amount only
	ReductionAmount     float64 `json:"reduction_amount,omitempty"`
	ReductionPercentage float64 `json:"reduction_percentage,omitempty"`
	Impact              string  `json:"impact,omitempty"`

	// loan_type only
	CurrentLoanType     rates.LoanType `json:"current_loan_type,omitempty"`
	AlternativeLoanType rates.LoanType `json:"alternative_loan_type,omitempty"`
	Considerations      []string       `json:"considerations,omitempty"`
}

// SavingsItem is a pooled, ranked view of one suggestion in the summary.
type SavingsItem struct {
	Dimension   Dimension `json:"type"`
	Savings     float64   `json:"savings"`
	Description string    `json:"description"`
	Timeframe   string    `json:"timeframe,omitempty"`
	Cost        float64   `json:"cost,omitempty"`
}

// Summary aggregates every suggestion across dimensions.
//
// TotalPotentialSavings sums mutually exclusive scenarios additively, so it
// overstates what any single path can achieve. Callers presenting it should
// label it as an upper bound.
type Summary struct {
	TotalPotentialSavings float64       `json:"total_potential_savings"`
	BestOptimizations     []SavingsItem `json:"best_optimizations"`
	QuickWins             []SavingsItem `json:"quick_wins"`
	LongTermImprovements  []SavingsItem `json:"long_term_improvements"`
	Recommendations       []string      `json:"recommendations"`
}

// Result is the full optimization report for one borrower scenario.
type Result struct {
	CurrentScenario          *quote.Quote `json:"current_scenario"`
	CreditScoreOptimizations []Suggestion `json:"credit_score_optimizations"`
	LTVOptimizations         []Suggestion `json:"ltv_optimizations"`
	LoanAmountOptimizations  []Suggestion `json:"loan_amount_optimizations"`
	LoanTypeOptimizations    []Suggestion `json:"loan_type_optimizations"`
	Summary                  Summary      `json:"summary"`
}
