// internal/optimizer/optimizer.go
package optimizer

import (
	"fmt"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/common/logger"
	"github.com/lilshrooms/frankie/internal/common/metrics"
	"github.com/lilshrooms/frankie/internal/quote"
	"github.com/lilshrooms/frankie/internal/rates"
)

// creditTargets are the score thresholds worth reaching for, lowest first.
var creditTargets = []struct {
	score       int
	description string
}{
	{680, "Good credit threshold"},
	{720, "Excellent credit threshold"},
	{760, "Premium credit tier"},
}

// ltvTargets are the LTV thresholds worth buying down to, highest first.
var ltvTargets = []struct {
	ltv         float64
	description string
}{
	{80, "Conventional loan threshold"},
	{70, "Better rate tier"},
	{60, "Premium rate tier"},
}

// amountReductions is the fixed loan amount reduction grid.
var amountReductions = []struct {
	pct         float64
	description string
}{
	{0.05, "5% reduction"},
	{0.10, "10% reduction"},
	{0.15, "15% reduction"},
}

// Optimizer explores single-dimension what-if scenarios for one borrower
// and aggregates them into ranked, explained recommendations. Each family
// perturbs exactly one attribute and holds the rest fixed; the candidate
// grids are small and static, not a continuous search.
type Optimizer struct {
	calc *quote.Calculator
	log  logger.Logger
}

func New(calc *quote.Calculator, log logger.Logger) *Optimizer {
	return &Optimizer{calc: calc, log: log}
}

// Optimize analyzes the scenario against the current snapshot. Without a
// snapshot it returns a structured error, never partial results.
func (o *Optimizer) Optimize(loanAmount float64, creditScore int, ltv float64, loanType rates.LoanType, snapshot []rates.CanonicalRate) (*Result, error) {
	if len(snapshot) == 0 {
		metrics.OptimizationRuns.WithLabelValues("no_rates").Inc()
		return nil, errors.NewEmptyRateSnapshotError()
	}

	current, err := o.calc.Quote(quote.BorrowerProfile{
		LoanAmount:  loanAmount,
		CreditScore: creditScore,
		LTV:         ltv,
		LoanType:    loanType,
	}, snapshot)
	if err != nil {
		metrics.OptimizationRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	result := &Result{
		CurrentScenario:          current,
		CreditScoreOptimizations: o.optimizeCreditScore(current, snapshot),
		LTVOptimizations:         o.optimizeLTV(current, snapshot),
		LoanAmountOptimizations:  o.optimizeLoanAmount(current, snapshot),
		LoanTypeOptimizations:    o.optimizeLoanType(current, snapshot),
	}
	result.Summary = buildSummary(result)

	metrics.OptimizationRuns.WithLabelValues("ok").Inc()
	return result, nil
}

// optimizeCreditScore prices the scenario at each credit threshold above the
// borrower's current score.
func (o *Optimizer) optimizeCreditScore(current *quote.Quote, snapshot []rates.CanonicalRate) []Suggestion {
	var suggestions []Suggestion

	for _, target := range creditTargets {
		if target.score <= current.CreditScore {
			continue
		}

		improved, err := o.calc.Quote(quote.BorrowerProfile{
			LoanAmount:  current.LoanAmount,
			CreditScore: target.score,
			LTV:         current.LTV,
			LoanType:    current.LoanType,
		}, snapshot)
		if err != nil {
			continue
		}

		rateSavings := rates.RoundRate(current.FinalRate - improved.FinalRate)
		if rateSavings <= 0 {
			continue
		}

		gap := target.score - current.CreditScore
		suggestions = append(suggestions, Suggestion{
			Dimension:         DimCreditScore,
			Description:       target.description,
			CurrentValue:      float64(current.CreditScore),
			TargetValue:       float64(target.score),
			ImprovementNeeded: float64(gap),
			RateSavings:       rateSavings,
			MonthlySavings:    rates.RoundMoney(current.MonthlyPayment - improved.MonthlyPayment),
			TotalSavings:      rates.RoundMoney(current.TotalInterest - improved.TotalInterest),
			NewRate:           improved.FinalRate,
			NewMonthlyPayment: improved.MonthlyPayment,
			Feasibility:       creditFeasibility(gap),
			Timeframe:         creditTimeframe(gap),
		})
	}

	return suggestions
}

// optimizeLTV prices the scenario at each LTV threshold below the borrower's
// current ratio and costs out the down payment needed to get there.
//
// The loan amount is held constant when pricing the improved scenario, even
// though the additional down payment would really shrink it; the down
// payment figure is derived from the implied property value instead. Known
// simplification carried from the pricing model.
func (o *Optimizer) optimizeLTV(current *quote.Quote, snapshot []rates.CanonicalRate) []Suggestion {
	var suggestions []Suggestion

	propertyValue := current.LoanAmount / (current.LTV / 100)

	for _, target := range ltvTargets {
		if target.ltv >= current.LTV {
			continue
		}

		improved, err := o.calc.Quote(quote.BorrowerProfile{
			LoanAmount:  current.LoanAmount,
			CreditScore: current.CreditScore,
			LTV:         target.ltv,
			LoanType:    current.LoanType,
		}, snapshot)
		if err != nil {
			continue
		}

		rateSavings := rates.RoundRate(current.FinalRate - improved.FinalRate)
		if rateSavings <= 0 {
			continue
		}

		totalSavings := rates.RoundMoney(current.TotalInterest - improved.TotalInterest)
		additionalDown := rates.RoundMoney(current.LoanAmount - propertyValue*(target.ltv/100))
		gap := current.LTV - target.ltv

		s := Suggestion{
			Dimension:             DimLTV,
			Description:           target.description,
			CurrentValue:          current.LTV,
			TargetValue:           target.ltv,
			ImprovementNeeded:     gap,
			RateSavings:           rateSavings,
			MonthlySavings:        rates.RoundMoney(current.MonthlyPayment - improved.MonthlyPayment),
			TotalSavings:          totalSavings,
			NewRate:               improved.FinalRate,
			NewMonthlyPayment:     improved.MonthlyPayment,
			Feasibility:           ltvFeasibility(gap),
			AdditionalDownPayment: additionalDown,
		}
		if additionalDown > 0 {
			s.ROIPercentage = rates.RoundMoney(totalSavings / additionalDown * 100)
			// Flat 30-year horizon regardless of the product's real term.
			s.PaybackPeriodYears = rates.RoundMoney(additionalDown / (totalSavings / 30))
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}

// optimizeLoanAmount prices the scenario at each reduction on the fixed
// grid. Reductions always make the list: the rate rarely moves, but the
// payment and lifetime interest always do.
func (o *Optimizer) optimizeLoanAmount(current *quote.Quote, snapshot []rates.CanonicalRate) []Suggestion {
	var suggestions []Suggestion

	for _, reduction := range amountReductions {
		newAmount := current.LoanAmount * (1 - reduction.pct)

		reduced, err := o.calc.Quote(quote.BorrowerProfile{
			LoanAmount:  newAmount,
			CreditScore: current.CreditScore,
			LTV:         current.LTV,
			LoanType:    current.LoanType,
		}, snapshot)
		if err != nil {
			continue
		}

		feasibility := FeasibilityMedium
		if reduction.pct <= 0.10 {
			feasibility = FeasibilityHigh
		}
		impact := "moderate"
		if reduction.pct >= 0.10 {
			impact = "significant"
		}

		suggestions = append(suggestions, Suggestion{
			Dimension:           DimLoanAmount,
			Description:         reduction.description,
			CurrentValue:        current.LoanAmount,
			TargetValue:         newAmount,
			ReductionAmount:     rates.RoundMoney(current.LoanAmount - newAmount),
			ReductionPercentage: reduction.pct * 100,
			MonthlySavings:      rates.RoundMoney(current.MonthlyPayment - reduced.MonthlyPayment),
			TotalSavings:        rates.RoundMoney(current.TotalInterest - reduced.TotalInterest),
			NewMonthlyPayment:   reduced.MonthlyPayment,
			Feasibility:         feasibility,
			Impact:              impact,
		})
	}

	return suggestions
}

// optimizeLoanType reports every comparison product that beats the current
// quote on final rate.
func (o *Optimizer) optimizeLoanType(current *quote.Quote, snapshot []rates.CanonicalRate) []Suggestion {
	comparison, err := o.calc.Compare(current.LoanAmount, current.CreditScore, current.LTV, snapshot)
	if err != nil {
		return nil
	}

	var suggestions []Suggestion
	for _, q := range comparison.Quotes {
		if q.LoanType == current.LoanType {
			continue
		}
		rateSavings := rates.RoundRate(current.FinalRate - q.FinalRate)
		if rateSavings <= 0 {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Dimension:           DimLoanType,
			Description:         loanTypeDescription(q.LoanType),
			RateSavings:         rateSavings,
			MonthlySavings:      rates.RoundMoney(current.MonthlyPayment - q.MonthlyPayment),
			TotalSavings:        rates.RoundMoney(current.TotalInterest - q.TotalInterest),
			NewRate:             q.FinalRate,
			NewMonthlyPayment:   q.MonthlyPayment,
			Feasibility:         loanTypeFeasibility(q.LoanType, current.CreditScore, current.LTV),
			CurrentLoanType:     current.LoanType,
			AlternativeLoanType: q.LoanType,
			Considerations:      loanTypeConsiderations(q.LoanType),
		})
	}

	return suggestions
}

func creditFeasibility(gap int) string {
	switch {
	case gap <= 20:
		return FeasibilityHigh
	case gap <= 50:
		return FeasibilityMedium
	default:
		return FeasibilityLow
	}
}

func creditTimeframe(gap int) string {
	switch {
	case gap <= 20:
		return "3-6 months"
	case gap <= 50:
		return "6-12 months"
	default:
		return "12+ months"
	}
}

func ltvFeasibility(gap float64) string {
	switch {
	case gap <= 5:
		return FeasibilityHigh
	case gap <= 15:
		return FeasibilityMedium
	default:
		return FeasibilityLow
	}
}

// loanTypeFeasibility applies static product-switch heuristics: FHA stops
// paying off once conventional credit pricing is available, VA hinges on
// service eligibility, and jumbo programs want low leverage.
func loanTypeFeasibility(lt rates.LoanType, creditScore int, ltv float64) string {
	switch {
	case lt == rates.FHA30 && creditScore >= 680:
		return FeasibilityLow
	case lt == rates.VA30:
		return FeasibilityConditional
	case lt == rates.Jumbo30 && ltv > 80:
		return FeasibilityLow
	default:
		return FeasibilityHigh
	}
}

var loanTypeDescriptions = map[rates.LoanType]string{
	rates.Fixed15: "15-year fixed rate mortgage - lower rate, higher payment",
	rates.FHA30:   "FHA loan - lower credit requirements, higher fees",
	rates.VA30:    "VA loan - for veterans, typically lower rates",
	rates.Jumbo30: "Jumbo loan - for larger loan amounts",
	rates.ARM51:   "5/1 ARM - lower initial rate, adjusts after 5 years",
	rates.ARM71:   "7/1 ARM - lower initial rate, adjusts after 7 years",
	rates.ARM101:  "10/1 ARM - lower initial rate, adjusts after 10 years",
}

func loanTypeDescription(lt rates.LoanType) string {
	if d, ok := loanTypeDescriptions[lt]; ok {
		return d
	}
	return fmt.Sprintf("Alternative loan type: %s", lt)
}

var loanTypeConsiderationsTable = map[rates.LoanType][]string{
	rates.Fixed15: {
		"Higher monthly payment",
		"Lower total interest paid",
		"Faster equity building",
	},
	rates.FHA30: {
		"Mortgage insurance required",
		"Lower credit score requirements",
		"Higher overall costs",
	},
	rates.VA30: {
		"VA funding fee required",
		"Veteran eligibility required",
		"Typically lower rates",
	},
	rates.Jumbo30: {
		"Higher credit requirements",
		"Lower LTV limits",
		"May require larger reserves",
	},
	rates.ARM51: {
		"Rate adjusts after 5 years",
		"Lower initial payment",
		"Rate cap protection",
	},
}

func loanTypeConsiderations(lt rates.LoanType) []string {
	if c, ok := loanTypeConsiderationsTable[lt]; ok {
		return c
	}
	return []string{"Review terms carefully"}
}
