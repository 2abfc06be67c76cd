// internal/rates/normalizer_test.go
package rates

import (
	"testing"

	"github.com/lilshrooms/frankie/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNormalizer(t *testing.T) *Normalizer {
	return NewNormalizer(logger.NewTestLogger(t))
}

func rawRecord(product string, rate, apr interface{}) RawRateRecord {
	return RawRateRecord{
		Product:    product,
		Rate:       rate,
		APR:        apr,
		Source:     "zillow",
		ObservedAt: "2025-01-23T10:00:00Z",
	}
}

// ==========================
// Loan Type Resolution Tests
// ==========================

func TestResolveLoanType(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		expected LoanType
		resolved bool
	}{
		{"exact canonical label", "30yr_fixed", Fixed30, true},
		{"exact with spaces", "30 Year Fixed", Fixed30, true},
		{"fha marketing label", "FHA 30-Year Fixed", FHA30, true},
		{"va label", "VA 30-Year", VA30, true},
		{"jumbo label", "Jumbo 30yr", Jumbo30, true},
		{"regex fallback 30yr", "30-year fixed rate purchase", Fixed30, true},
		{"regex fallback 15yr", "15 year  fixed refinance", Fixed15, true},
		{"slash arm", "5/1_ARM", ARM51, true},
		{"regex arm", "5-1 Hybrid ARM", ARM51, true},
		{"unresolvable", "reverse mortgage", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt, ok := ResolveLoanType(tt.product)
			assert.Equal(t, tt.resolved, ok)
			if tt.resolved {
				assert.Equal(t, tt.expected, lt)
			}
		})
	}
}

// ==========================
// Normalization Tests
// ==========================

func TestNormalizer_Normalize(t *testing.T) {
	n := testNormalizer(t)

	t.Run("valid record normalizes to canonical schema", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("FHA 30-Year Fixed", 6.5, 6.67)})
		require.Len(t, out, 1)

		assert.Equal(t, FHA30, out[0].LoanType)
		assert.Equal(t, 6.5, out[0].Rate)
		assert.Equal(t, 6.67, out[0].APR)
		assert.Equal(t, 30, out[0].LockPeriod)
		assert.Equal(t, "zillow", out[0].Source)
		assert.Equal(t, "2025-01-23T10:00:00Z", out[0].ObservedAt)
		assert.Equal(t, 0.0, out[0].Fees)
	})

	t.Run("rate outside plausible range is dropped", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", 25.0, 6.91)})
		assert.Len(t, out, 0)
	})

	t.Run("rate below floor is dropped", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", 0.05, 6.91)})
		assert.Len(t, out, 0)
	})

	t.Run("missing apr drops the whole record", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", 6.75, nil)})
		assert.Len(t, out, 0)
	})

	t.Run("string numerics are coerced", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", "6.75", "6.91")})
		require.Len(t, out, 1)
		assert.Equal(t, 6.75, out[0].Rate)
		assert.Equal(t, 6.91, out[0].APR)
	})

	t.Run("non-numeric rate is dropped", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", "n/a", 6.91)})
		assert.Len(t, out, 0)
	})

	t.Run("unresolvable product is dropped silently", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{
			rawRecord("reverse mortgage", 6.75, 6.91),
			rawRecord("30yr_fixed", 6.75, 6.91),
		})
		require.Len(t, out, 1)
		assert.Equal(t, Fixed30, out[0].LoanType)
	})

	t.Run("rates are rounded to three decimals", func(t *testing.T) {
		out := n.Normalize([]RawRateRecord{rawRecord("30yr_fixed", 6.75125678, 6.91)})
		require.Len(t, out, 1)
		assert.Equal(t, 6.751, out[0].Rate)
	})

	t.Run("fees are carried when present", func(t *testing.T) {
		rec := rawRecord("30yr_fixed", 6.75, 6.91)
		rec.Fees = 1500.0
		out := n.Normalize([]RawRateRecord{rec})
		require.Len(t, out, 1)
		assert.Equal(t, 1500.0, out[0].Fees)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		out := n.Normalize(nil)
		assert.NotNil(t, out)
		assert.Len(t, out, 0)
	})
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := testNormalizer(t)

	raw := []RawRateRecord{
		rawRecord("30yr_fixed", 6.75, 6.91),
		rawRecord("15 Year Fixed", "6.25", 6.42),
		rawRecord("bogus product", 6.5, 6.6),
		rawRecord("FHA 30-Year Fixed", 6.5, 6.67),
	}

	first := n.Normalize(raw)
	second := n.Normalize(raw)

	assert.Equal(t, first, second)
}
