// internal/optimizer/summary_test.go
package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	result := midTierResult(t)
	summary := result.Summary

	t.Run("total pools every suggestion additively", func(t *testing.T) {
		var want float64
		for _, family := range [][]Suggestion{
			result.CreditScoreOptimizations,
			result.LTVOptimizations,
			result.LoanAmountOptimizations,
			result.LoanTypeOptimizations,
		} {
			for _, s := range family {
				want += s.TotalSavings
			}
		}
		assert.InDelta(t, want, summary.TotalPotentialSavings, 0.01)
	})

	t.Run("best optimizations are the top three by savings", func(t *testing.T) {
		require.Len(t, summary.BestOptimizations, 3)
		for i := 1; i < len(summary.BestOptimizations); i++ {
			assert.GreaterOrEqual(t,
				summary.BestOptimizations[i-1].Savings,
				summary.BestOptimizations[i].Savings,
			)
		}
	})

	t.Run("quick wins hold only ltv and loan type moves", func(t *testing.T) {
		require.NotEmpty(t, summary.QuickWins)
		for _, item := range summary.QuickWins {
			assert.Contains(t, []Dimension{DimLTV, DimLoanType}, item.Dimension)
		}
	})

	t.Run("long term improvements hold only credit and amount moves", func(t *testing.T) {
		require.NotEmpty(t, summary.LongTermImprovements)
		for _, item := range summary.LongTermImprovements {
			assert.Contains(t, []Dimension{DimCreditScore, DimLoanAmount}, item.Dimension)
		}
	})

	t.Run("partition covers the whole pool", func(t *testing.T) {
		pooled := len(summary.QuickWins) + len(summary.LongTermImprovements)
		suggested := len(result.CreditScoreOptimizations) +
			len(result.LTVOptimizations) +
			len(result.LoanAmountOptimizations) +
			len(result.LoanTypeOptimizations)
		assert.Equal(t, suggested, pooled)
	})

	t.Run("one recommendation per family with suggestions", func(t *testing.T) {
		require.Len(t, summary.Recommendations, 3)
		assert.Contains(t, summary.Recommendations[0], "credit score")
		assert.Contains(t, summary.Recommendations[1], "down payment")
		assert.Contains(t, summary.Recommendations[2], "loan")
	})

	t.Run("families without suggestions produce no recommendation", func(t *testing.T) {
		// Premium-credit, low-LTV borrower: only amount and type moves remain.
		topTier, err := testOptimizer(t).Optimize(400_000, 800, 55, "30yr_fixed", testSnapshot())
		require.NoError(t, err)

		for _, rec := range topTier.Summary.Recommendations {
			assert.NotContains(t, rec, "credit score")
			assert.NotContains(t, rec, "down payment")
		}
	})
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{23529.41, "$23,529"},
		{1_234_567, "$1,234,567"},
		{-1500, "-$1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDollars(tt.amount))
		})
	}
}
