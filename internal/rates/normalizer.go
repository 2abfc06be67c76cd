// internal/rates/normalizer.go
package rates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lilshrooms/frankie/internal/common/logger"
	"github.com/lilshrooms/frankie/internal/common/metrics"
)

type loanTypeAlias struct {
	label string
	lt    LoanType
}

// loanTypeAliases maps the product label variants seen in feeds to the
// canonical product set. Exact match is tried first, then substring match
// in both directions, then the regex heuristics below. Kept as an ordered
// list so ambiguous labels always resolve the same way; specialty products
// come before the generic term shorthands so "Jumbo 30yr" resolves as jumbo,
// not as conventional.
var loanTypeAliases = []loanTypeAlias{
	{"fha_30yr", FHA30},
	{"fha_30_year", FHA30},
	{"fha_30-year", FHA30},
	{"fha", FHA30},

	{"va_30yr", VA30},
	{"va_30_year", VA30},
	{"va_30-year", VA30},
	{"va", VA30},

	{"jumbo_30yr", Jumbo30},
	{"jumbo_30_year", Jumbo30},
	{"jumbo_30-year", Jumbo30},
	{"jumbo", Jumbo30},

	{"5_1_arm", ARM51},
	{"7_1_arm", ARM71},
	{"10_1_arm", ARM101},
	{"5/1_arm", ARM51},
	{"7/1_arm", ARM71},
	{"10/1_arm", ARM101},

	{"30yr_fixed", Fixed30},
	{"30_year_fixed", Fixed30},
	{"30-year_fixed", Fixed30},
	{"30 year fixed", Fixed30},
	{"30yr", Fixed30},
	{"30_year", Fixed30},

	{"15yr_fixed", Fixed15},
	{"15_year_fixed", Fixed15},
	{"15-year-fixed", Fixed15},
	{"15 year fixed", Fixed15},
	{"15yr", Fixed15},
	{"15_year", Fixed15},
}

var exactAliases = func() map[string]LoanType {
	m := make(map[string]LoanType, len(loanTypeAliases))
	for _, a := range loanTypeAliases {
		m[a.label] = a.lt
	}
	return m
}()

var loanTypePatterns = []struct {
	re *regexp.Regexp
	lt LoanType
}{
	{regexp.MustCompile(`30.*year.*fixed`), Fixed30},
	{regexp.MustCompile(`15.*year.*fixed`), Fixed15},
	{regexp.MustCompile(`fha`), FHA30},
	{regexp.MustCompile(`va`), VA30},
	{regexp.MustCompile(`jumbo`), Jumbo30},
	{regexp.MustCompile(`5.*1.*arm`), ARM51},
	{regexp.MustCompile(`7.*1.*arm`), ARM71},
	{regexp.MustCompile(`10.*1.*arm`), ARM101},
}

// lockPeriods maps products to standard rate lock periods in days.
var lockPeriods = map[LoanType]int{
	Fixed30: 30,
	Fixed15: 30,
	FHA30:   30,
	VA30:    30,
	Jumbo30: 30,
	ARM51:   30,
	ARM71:   30,
	ARM101:  30,
}

const defaultLockPeriod = 30

// Normalizer converts heterogeneous raw rate records into the canonical
// schema. Per-record failures are non-fatal: invalid records are dropped
// and never abort the batch.
type Normalizer struct {
	log logger.Logger
}

func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize maps raw records into canonical rates, discarding records whose
// product label cannot be resolved or whose rate/apr fails validation.
// Empty input yields empty output, never an error.
func (n *Normalizer) Normalize(raw []RawRateRecord) []CanonicalRate {
	normalized := make([]CanonicalRate, 0, len(raw))

	for _, rec := range raw {
		loanType, ok := ResolveLoanType(rec.Product)
		if !ok {
			n.drop("unresolved_product", rec)
			continue
		}

		rate, ok := validRate(rec.Rate)
		if !ok {
			n.drop("invalid_rate", rec)
			continue
		}

		apr, ok := validRate(rec.APR)
		if !ok {
			n.drop("invalid_apr", rec)
			continue
		}

		observedAt := rec.ObservedAt
		if observedAt == "" {
			observedAt = time.Now().UTC().Format(time.RFC3339)
		}

		source := rec.Source
		if source == "" {
			source = "unknown"
		}

		fees, _ := coerceFloat(rec.Fees) // missing fees default to 0

		normalized = append(normalized, CanonicalRate{
			LoanType:   loanType,
			Rate:       rate,
			APR:        apr,
			LockPeriod: LockPeriodFor(loanType),
			Source:     source,
			ObservedAt: observedAt,
			Fees:       fees,
		})
		metrics.RatesNormalized.WithLabelValues(string(loanType), source).Inc()
	}

	return normalized
}

func (n *Normalizer) drop(reason string, rec RawRateRecord) {
	metrics.RatesDropped.WithLabelValues(reason).Inc()
	n.log.Debug("dropping raw rate record", map[string]interface{}{
		"reason":  reason,
		"product": rec.Product,
	})
}

// ResolveLoanType maps an arbitrary product label to a canonical loan type.
func ResolveLoanType(product string) (LoanType, bool) {
	if product == "" {
		return "", false
	}

	label := strings.ToLower(strings.TrimSpace(product))

	if lt, ok := exactAliases[label]; ok {
		return lt, true
	}

	for _, a := range loanTypeAliases {
		if strings.Contains(label, a.label) || strings.Contains(a.label, label) {
			return a.lt, true
		}
	}

	for _, p := range loanTypePatterns {
		if p.re.MatchString(label) {
			return p.lt, true
		}
	}

	return "", false
}

// LockPeriodFor returns the standard lock period in days for a product.
func LockPeriodFor(lt LoanType) int {
	if days, ok := lockPeriods[lt]; ok {
		return days
	}
	return defaultLockPeriod
}

// validRate coerces a loosely-typed rate value and checks it lies in the
// plausible market range. The returned rate carries 3-decimal precision.
func validRate(v interface{}) (float64, bool) {
	rate, ok := coerceFloat(v)
	if !ok {
		return 0, false
	}
	if rate < MinRate || rate > MaxRate {
		return 0, false
	}
	return RoundRate(rate), true
}

// coerceFloat converts the JSON types a feed may deliver for a numeric field.
func coerceFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
