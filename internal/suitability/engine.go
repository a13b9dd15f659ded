// Package suitability scores a fund against a client profile on a 0..100
// additive rubric. Each component awards partial credit from tiered
// thresholds; a missing input earns a fixed neutral credit so incomplete
// profiles are not punished, and an out-of-tolerance value earns a small
// floor plus a cautionary flag.
package suitability

import (
	"math"
	"time"

	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/peerstats"
)

// ComponentScore is one rubric component's contribution.
type ComponentScore struct {
	Name   string
	Points float64
	Max    float64
	Reason string // positive rationale, empty when none
	Flag   string // cautionary note, empty when none
}

// Result is the scored outcome for a (fund, profile) pair.
type Result struct {
	Score      int
	Label      string
	Reasons    []string
	Flags      []string
	Components []ComponentScore
}

// Component maxima. They sum to 100, so a record hitting every top tier
// scores exactly 100 and a profile with nothing but a name lands on the
// all-neutral midpoint of 50.
const (
	maxStructure  = 15
	maxCapacity   = 25
	maxYield      = 20
	maxOccupancy  = 10
	maxHoldPeriod = 15
	maxPropType   = 15
)

// neutral is the partial credit applied when a component's input is absent:
// half the component maximum, never zero and never full credit.
func neutral(max float64) float64 { return max / 2 }

// Score evaluates fund against client, optionally in the context of peer
// statistics. Returns nil when the profile carries no usable signal. Pure:
// the clock value is the only source of "now".
func Score(fund model.FundRecord, client model.ClientProfile, peers peerstats.Stats, now time.Time) *Result {
	if !client.IsSet() {
		return nil
	}

	components := []ComponentScore{
		scoreStructure(fund, client),
		scoreCapacity(fund, client),
		scoreYield(fund, peers),
		scoreOccupancy(fund),
		scoreHoldPeriod(fund, client),
		scorePropType(fund, client),
	}

	var total float64
	result := &Result{Components: components}
	for _, c := range components {
		total += c.Points
		if c.Reason != "" {
			result.Reasons = append(result.Reasons, c.Reason)
		}
		if c.Flag != "" {
			result.Flags = append(result.Flags, c.Flag)
		}
	}

	if flag := timingFlag(fund, now); flag != "" {
		result.Flags = append(result.Flags, flag)
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score
	result.Label = MatchLabel(score)
	return result
}

// MatchLabel maps a score to its display band.
func MatchLabel(score int) string {
	switch {
	case score >= 75:
		return "Strong Match"
	case score >= 55:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Poor Match"
	}
}
