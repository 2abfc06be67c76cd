// internal/rates/stats.go
package rates

import "sort"

// RateStats summarizes the observations for one loan product.
type RateStats struct {
	Count   int     `json:"count"`
	MinRate float64 `json:"min_rate"`
	MaxRate float64 `json:"max_rate"`
	AvgRate float64 `json:"avg_rate"`
	MinAPR  float64 `json:"min_apr"`
	MaxAPR  float64 `json:"max_apr"`
	AvgAPR  float64 `json:"avg_apr"`
}

// Stats computes per-product statistics over a canonical snapshot.
// An empty snapshot yields an empty map.
func Stats(snapshot []CanonicalRate) map[LoanType]RateStats {
	stats := make(map[LoanType]RateStats)
	if len(snapshot) == 0 {
		return stats
	}

	byType := make(map[LoanType][]CanonicalRate)
	for _, r := range snapshot {
		byType[r.LoanType] = append(byType[r.LoanType], r)
	}

	for lt, group := range byType {
		s := RateStats{
			Count:   len(group),
			MinRate: group[0].Rate,
			MaxRate: group[0].Rate,
			MinAPR:  group[0].APR,
			MaxAPR:  group[0].APR,
		}
		var rateSum, aprSum float64
		for _, r := range group {
			if r.Rate < s.MinRate {
				s.MinRate = r.Rate
			}
			if r.Rate > s.MaxRate {
				s.MaxRate = r.Rate
			}
			if r.APR < s.MinAPR {
				s.MinAPR = r.APR
			}
			if r.APR > s.MaxAPR {
				s.MaxAPR = r.APR
			}
			rateSum += r.Rate
			aprSum += r.APR
		}
		s.AvgRate = rateSum / float64(len(group))
		s.AvgAPR = aprSum / float64(len(group))
		stats[lt] = s
	}

	return stats
}

// FilterByType returns the observations for one loan product, preserving
// snapshot order.
func FilterByType(snapshot []CanonicalRate, lt LoanType) []CanonicalRate {
	var out []CanonicalRate
	for _, r := range snapshot {
		if r.LoanType == lt {
			out = append(out, r)
		}
	}
	return out
}

// Latest returns up to limit observations sorted newest first. Timestamps
// compare lexically, which is correct for RFC 3339 strings.
func Latest(snapshot []CanonicalRate, limit int) []CanonicalRate {
	sorted := make([]CanonicalRate, len(snapshot))
	copy(sorted, snapshot)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ObservedAt > sorted[j].ObservedAt
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
