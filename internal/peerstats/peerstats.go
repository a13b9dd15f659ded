// Package peerstats computes aggregate statistics across a fund collection,
// used as scoring context. Cheap to recompute, so nothing is cached.
package peerstats

import (
	"math"

	"github.com/alts-fund-link/fundlink/internal/model"
)

// FieldStats holds the aggregate for one designated field. All pointers are
// nil when no eligible data points exist.
type FieldStats struct {
	Avg   *float64 `json:"avg"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// Stats maps a designated field name to its aggregate.
type Stats map[string]FieldStats

// accessors designates the numeric fields aggregated for peer context.
var accessors = map[string]func(f *model.FundRecord) *float64{
	"y1coc":      func(f *model.FundRecord) *float64 { return f.Y1CoC },
	"ltv":        func(f *model.FundRecord) *float64 { return f.LTV },
	"occupancy":  func(f *model.FundRecord) *float64 { return f.Occupancy },
	"holdPeriod": func(f *model.FundRecord) *float64 { return f.HoldPeriod },
	"minInvest":  func(f *model.FundRecord) *float64 { return f.MinInvest },
	"capRate":    func(f *model.FundRecord) *float64 { return f.CapRate },
	"dscr":       func(f *model.FundRecord) *float64 { return f.DSCR },
}

// Compute aggregates avg/min/max/count per designated field, skipping nil and
// non-finite entries per field independently.
func Compute(funds []model.FundRecord) Stats {
	stats := make(Stats, len(accessors))
	for field, get := range accessors {
		var (
			sum   float64
			min   = math.Inf(1)
			max   = math.Inf(-1)
			count int
		)
		for i := range funds {
			v := get(&funds[i])
			if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
				continue
			}
			sum += *v
			if *v < min {
				min = *v
			}
			if *v > max {
				max = *v
			}
			count++
		}
		if count == 0 {
			stats[field] = FieldStats{}
			continue
		}
		avg := sum / float64(count)
		stats[field] = FieldStats{Avg: &avg, Min: &min, Max: &max, Count: count}
	}
	return stats
}

// Avg returns the average for a field, or nil when the field has no data.
func (s Stats) Avg(field string) *float64 {
	if s == nil {
		return nil
	}
	return s[field].Avg
}
