// internal/quote/calculator.go
package quote

import (
	"math"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/common/logger"
	"github.com/lilshrooms/frankie/internal/common/metrics"
	"github.com/lilshrooms/frankie/internal/rates"
)

const (
	maxLoanAmount  = 10_000_000
	minCreditScore = 300
	maxCreditScore = 850
)

// defaultFees backstops the APR approximation when no observation in the
// filtered set carries a positive fee figure.
const defaultFees = 2000.0

// Calculator prices a single borrower scenario against a canonical rate
// snapshot. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	idgen IDGenerator
	log   logger.Logger
}

func NewCalculator(idgen IDGenerator, log logger.Logger) *Calculator {
	if idgen == nil {
		idgen = UUIDGenerator{}
	}
	return &Calculator{idgen: idgen, log: log}
}

// Quote prices one profile. Validation failures and missing rate data come
// back as *errors.EngineError values; an ineligible borrower still gets a
// priced quote with IsEligible false.
func (c *Calculator) Quote(profile BorrowerProfile, snapshot []rates.CanonicalRate) (*Quote, error) {
	if err := validateProfile(profile); err != nil {
		metrics.QuotesComputed.WithLabelValues(string(profile.LoanType), "invalid_input").Inc()
		return nil, err
	}

	matching := rates.FilterByType(snapshot, profile.LoanType)
	if len(matching) == 0 {
		metrics.QuotesComputed.WithLabelValues(string(profile.LoanType), "no_rates").Inc()
		return nil, errors.NewNoRatesForProductError(string(profile.LoanType))
	}

	baseRate := matching[0].Rate
	for _, r := range matching[1:] {
		if r.Rate < baseRate {
			baseRate = r.Rate
		}
	}

	llpa := CalculateLLPA(profile.CreditScore, profile.LTV, profile.LoanType)
	finalRate := rates.RoundRate(baseRate + llpa.TotalAdjustment)
	finalAPR := rates.RoundRate(approximateAPR(finalRate, profile.LoanAmount, matching))

	termYears := profile.LoanType.TermYears()
	payment := monthlyPayment(profile.LoanAmount, finalRate, termYears)

	q := &Quote{
		LoanAmount:     profile.LoanAmount,
		CreditScore:    profile.CreditScore,
		LTV:            profile.LTV,
		LoanType:       profile.LoanType,
		BaseRate:       baseRate,
		FinalRate:      finalRate,
		FinalAPR:       finalAPR,
		IsEligible:     CheckEligibility(profile.CreditScore, profile.LTV, profile.LoanType),
		LLPA:           llpa,
		MonthlyPayment: payment,
		TotalInterest:  totalInterest(profile.LoanAmount, payment, termYears),
		RateSource:     matching[0].Source,
		LockPeriod:     matching[0].LockPeriod,
		ObservedAt:     matching[0].ObservedAt,
		QuoteID:        c.idgen.QuoteID(),
	}

	metrics.QuotesComputed.WithLabelValues(string(profile.LoanType), "ok").Inc()
	return q, nil
}

func validateProfile(p BorrowerProfile) *errors.EngineError {
	if p.LoanAmount <= 0 || p.LoanAmount > maxLoanAmount {
		return errors.NewInvalidLoanAmountError(p.LoanAmount)
	}
	if p.CreditScore < minCreditScore || p.CreditScore > maxCreditScore {
		return errors.NewInvalidCreditScoreError(p.CreditScore)
	}
	if p.LTV <= 0 || p.LTV > 100 {
		return errors.NewInvalidLTVError(p.LTV)
	}
	if !rates.IsSupported(p.LoanType) {
		return errors.NewUnsupportedProductError(string(p.LoanType))
	}
	return nil
}

// approximateAPR folds the average observed fees into the note rate. This is
// a documented approximation, not a true APR: real APR amortizes all closing
// costs over the loan term.
func approximateAPR(finalRate, loanAmount float64, matching []rates.CanonicalRate) float64 {
	var feeSum float64
	var feeCount int
	for _, r := range matching {
		if r.Fees > 0 {
			feeSum += r.Fees
			feeCount++
		}
	}
	avgFees := defaultFees
	if feeCount > 0 {
		avgFees = feeSum / float64(feeCount)
	}
	return finalRate + (avgFees/loanAmount)*100*0.1
}

// monthlyPayment applies the standard annuity formula. A zero periodic rate
// degenerates to straight principal division rather than dividing by zero.
func monthlyPayment(loanAmount, annualRate float64, termYears int) float64 {
	monthlyRate := annualRate / 100 / 12
	n := float64(termYears * 12)

	if monthlyRate == 0 {
		return rates.RoundMoney(loanAmount / n)
	}

	growth := math.Pow(1+monthlyRate, n)
	return rates.RoundMoney(loanAmount * (monthlyRate * growth) / (growth - 1))
}

func totalInterest(loanAmount, payment float64, termYears int) float64 {
	return rates.RoundMoney(payment*float64(termYears*12) - loanAmount)
}
