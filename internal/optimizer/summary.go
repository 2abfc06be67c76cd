// internal/optimizer/summary.go
package optimizer

import (
	"fmt"
	"sort"
	"strings"
)

// buildSummary pools every suggestion across the four families, ranks them,
// and partitions quick wins (no waiting: ltv, loan_type) from long-term
// improvements (credit_score, loan_amount).
func buildSummary(result *Result) Summary {
	var pool []SavingsItem

	for _, opt := range result.CreditScoreOptimizations {
		pool = append(pool, SavingsItem{
			Dimension:   DimCreditScore,
			Savings:     opt.TotalSavings,
			Description: fmt.Sprintf("Improve credit to %.0f", opt.TargetValue),
			Timeframe:   opt.Timeframe,
		})
	}
	for _, opt := range result.LTVOptimizations {
		pool = append(pool, SavingsItem{
			Dimension:   DimLTV,
			Savings:     opt.TotalSavings,
			Description: fmt.Sprintf("Reduce LTV to %.0f%%", opt.TargetValue),
			Cost:        opt.AdditionalDownPayment,
		})
	}
	for _, opt := range result.LoanAmountOptimizations {
		pool = append(pool, SavingsItem{
			Dimension:   DimLoanAmount,
			Savings:     opt.TotalSavings,
			Description: fmt.Sprintf("Reduce loan amount by %.0f%%", opt.ReductionPercentage),
		})
	}
	for _, opt := range result.LoanTypeOptimizations {
		pool = append(pool, SavingsItem{
			Dimension:   DimLoanType,
			Savings:     opt.TotalSavings,
			Description: fmt.Sprintf("Switch to %s", opt.AlternativeLoanType),
		})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Savings > pool[j].Savings
	})

	summary := Summary{}
	for _, item := range pool {
		summary.TotalPotentialSavings += item.Savings
		if item.Dimension == DimLTV || item.Dimension == DimLoanType {
			summary.QuickWins = append(summary.QuickWins, item)
		} else {
			summary.LongTermImprovements = append(summary.LongTermImprovements, item)
		}
	}

	top := 3
	if len(pool) < top {
		top = len(pool)
	}
	summary.BestOptimizations = pool[:top]

	summary.Recommendations = buildRecommendations(result)
	return summary
}

// buildRecommendations renders one actionable sentence for the single best
// suggestion in each of the credit, LTV and loan-type families.
func buildRecommendations(result *Result) []string {
	var recs []string

	if best, ok := bestByTotalSavings(result.CreditScoreOptimizations); ok {
		recs = append(recs, fmt.Sprintf(
			"Improve your credit score to %.0f to save %s over the life of the loan.",
			best.TargetValue, formatDollars(best.TotalSavings),
		))
	}

	if best, ok := bestByTotalSavings(result.LTVOptimizations); ok {
		recs = append(recs, fmt.Sprintf(
			"Increase your down payment by %s to reduce LTV to %.0f%% and save %s in interest.",
			formatDollars(best.AdditionalDownPayment), best.TargetValue, formatDollars(best.TotalSavings),
		))
	}

	if best, ok := bestByTotalSavings(result.LoanTypeOptimizations); ok {
		recs = append(recs, fmt.Sprintf(
			"Consider a %s loan to save %s in interest.",
			best.AlternativeLoanType, formatDollars(best.TotalSavings),
		))
	}

	return recs
}

func bestByTotalSavings(suggestions []Suggestion) (Suggestion, bool) {
	if len(suggestions) == 0 {
		return Suggestion{}, false
	}
	best := suggestions[0]
	for _, s := range suggestions[1:] {
		if s.TotalSavings > best.TotalSavings {
			best = s
		}
	}
	return best, true
}

// formatDollars renders a rounded dollar figure with thousands separators,
// e.g. $12,345.
func formatDollars(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
		if len(whole) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(whole); i += 3 {
		b.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
