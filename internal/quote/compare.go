// internal/quote/compare.go
package quote

import (
	"sort"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/rates"
)

// ComparisonLoanTypes is the fixed product list the Comparator prices.
// ARMs are excluded by design: their teaser rates are not comparable to
// fixed products on final rate alone.
var ComparisonLoanTypes = []rates.LoanType{
	rates.Fixed30,
	rates.Fixed15,
	rates.FHA30,
	rates.VA30,
	rates.Jumbo30,
}

// Compare prices one profile across every comparison product and ranks the
// successful quotes ascending by final rate. The sort is stable, so equal
// rates keep the product list order; that tie-break is an artifact, not a
// business rule.
func (c *Calculator) Compare(loanAmount float64, creditScore int, ltv float64, snapshot []rates.CanonicalRate) (*Comparison, error) {
	if len(snapshot) == 0 {
		return nil, errors.NewEmptyRateSnapshotError()
	}

	cmp := &Comparison{
		LoanAmount:  loanAmount,
		CreditScore: creditScore,
		LTV:         ltv,
	}

	for _, lt := range ComparisonLoanTypes {
		q, err := c.Quote(BorrowerProfile{
			LoanAmount:  loanAmount,
			CreditScore: creditScore,
			LTV:         ltv,
			LoanType:    lt,
		}, snapshot)
		if err != nil {
			// Products without rate coverage are simply absent from the
			// comparison; validation errors abort, the profile is the same
			// for every product.
			if errors.IsValidation(err) {
				return nil, err
			}
			continue
		}
		cmp.Quotes = append(cmp.Quotes, *q)
	}

	sort.SliceStable(cmp.Quotes, func(i, j int) bool {
		return cmp.Quotes[i].FinalRate < cmp.Quotes[j].FinalRate
	})

	if len(cmp.Quotes) > 0 {
		cmp.BestRate = cmp.Quotes[0].FinalRate
		cmp.BestLoanType = cmp.Quotes[0].LoanType
	}

	return cmp, nil
}
