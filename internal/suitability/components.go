package suitability

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/peerstats"
)

// Risk tolerance values recognized on the client profile.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// diversifyPositions is the position count a client should be able to fund
// for full capacity credit. It matches the basket capacity.
const diversifyPositions = 3

// scoreStructure weighs offering leverage against the client's risk
// tolerance. LTV bands: <=60 full, <=65 mid, <=75 low with a flag, above
// that the floor. Conservative clients tighten the elevated band;
// aggressive clients keep a small floor instead of zero.
func scoreStructure(fund model.FundRecord, client model.ClientProfile) ComponentScore {
	c := ComponentScore{Name: "structure", Max: maxStructure}
	if fund.LTV == nil {
		c.Points = neutral(maxStructure)
		return c
	}
	ltv := *fund.LTV
	risk := strings.ToLower(client.RiskTolerance)
	switch {
	case ltv <= 60:
		c.Points = maxStructure
		c.Reason = "Conservative leverage (LTV ≤ 60%)"
	case ltv <= 65:
		c.Points = 10
	case ltv <= 75:
		c.Points = 4
		if risk == RiskConservative {
			c.Points = 2
		}
		c.Flag = "Elevated leverage (LTV above 65%)"
	default:
		c.Points = 0
		if risk == RiskAggressive {
			c.Points = 3
		}
		c.Flag = "High leverage (LTV above 75%)"
	}
	return c
}

// scoreCapacity fits the minimum investment against the client's available
// exchange capital, with full credit reserved for capacity to diversify
// across multiple positions.
func scoreCapacity(fund model.FundRecord, client model.ClientProfile) ComponentScore {
	c := ComponentScore{Name: "capacity", Max: maxCapacity}
	if fund.MinInvest == nil || client.ExchangeAmount == nil {
		c.Points = neutral(maxCapacity)
		return c
	}
	minInvest, capital := *fund.MinInvest, *client.ExchangeAmount
	switch {
	case minInvest <= 0:
		c.Points = neutral(maxCapacity)
	case minInvest*diversifyPositions <= capital:
		c.Points = maxCapacity
		c.Reason = fmt.Sprintf("Capacity to diversify across %d positions", diversifyPositions)
	case minInvest <= capital:
		c.Points = 16
		c.Reason = "Minimum investment within available capital"
	default:
		c.Points = 0
		c.Flag = "Minimum investment exceeds available capital"
	}
	return c
}

// scoreYield fits the year-1 cash-on-cash distribution against the peer
// average when peer context is available, otherwise against absolute bands
// around 4%.
func scoreYield(fund model.FundRecord, peers peerstats.Stats) ComponentScore {
	c := ComponentScore{Name: "yield", Max: maxYield}
	if fund.Y1CoC == nil {
		c.Points = neutral(maxYield)
		return c
	}
	y1 := *fund.Y1CoC

	if avg := peers.Avg("y1coc"); avg != nil {
		diff := y1 - *avg
		switch {
		case diff >= 1:
			c.Points = maxYield
			c.Reason = "Distribution well above peer average"
		case diff >= 0:
			c.Points = 14
			c.Reason = "Distribution at or above peer average"
		case diff >= -1:
			c.Points = 8
		default:
			c.Points = 3
			c.Flag = "Distribution below peer average"
		}
		return c
	}

	switch {
	case y1 >= 5:
		c.Points = maxYield
		c.Reason = "Strong year-1 distribution"
	case y1 >= 4:
		c.Points = 14
		c.Reason = "Solid year-1 distribution"
	case y1 >= 3:
		c.Points = 8
	default:
		c.Points = 3
		c.Flag = "Year-1 distribution below 3%"
	}
	return c
}

// scoreOccupancy rewards stabilized occupancy.
func scoreOccupancy(fund model.FundRecord) ComponentScore {
	c := ComponentScore{Name: "occupancy", Max: maxOccupancy}
	if fund.Occupancy == nil {
		c.Points = neutral(maxOccupancy)
		return c
	}
	occ := *fund.Occupancy
	switch {
	case occ >= 95:
		c.Points = maxOccupancy
		c.Reason = "Fully stabilized occupancy"
	case occ >= 90:
		c.Points = 8
		c.Reason = "Strong occupancy"
	case occ >= 80:
		c.Points = 5
	default:
		c.Points = 2
		c.Flag = "Occupancy below 80%"
	}
	return c
}

// exit-age bands for the age heuristic.
const (
	exitAgeComfortable = 75
	exitAgeLimit       = 80
)

// scoreHoldPeriod aligns the offering hold period with the client's holding
// horizon. When the horizon is missing but age is known, the age-at-exit
// heuristic applies instead.
func scoreHoldPeriod(fund model.FundRecord, client model.ClientProfile) ComponentScore {
	c := ComponentScore{Name: "holdPeriod", Max: maxHoldPeriod}
	if fund.HoldPeriod == nil {
		c.Points = neutral(maxHoldPeriod)
		return c
	}
	hold := *fund.HoldPeriod

	if client.HoldPeriod != nil {
		diff := math.Abs(hold - *client.HoldPeriod)
		switch {
		case diff <= 1:
			c.Points = maxHoldPeriod
			c.Reason = "Hold period matches client horizon"
		case diff <= 3:
			c.Points = 10
		case diff <= 5:
			c.Points = 5
		default:
			c.Points = 2
			c.Flag = "Hold period differs materially from client horizon"
		}
		return c
	}

	if client.Age != nil {
		exitAge := *client.Age + hold
		switch {
		case exitAge <= exitAgeComfortable:
			c.Points = 12
		case exitAge <= exitAgeLimit:
			c.Points = 7
		default:
			c.Points = 2
			c.Flag = fmt.Sprintf("Projected age at exit exceeds %d", exitAgeLimit)
		}
		return c
	}

	c.Points = neutral(maxHoldPeriod)
	return c
}

// scorePropType matches the offering sector against the client's property
// type preferences.
func scorePropType(fund model.FundRecord, client model.ClientProfile) ComponentScore {
	c := ComponentScore{Name: "propType", Max: maxPropType}
	if len(client.PropTypePrefs) == 0 || fund.PropType == "" {
		c.Points = neutral(maxPropType)
		return c
	}
	for _, pref := range client.PropTypePrefs {
		if strings.EqualFold(pref, fund.PropType) {
			c.Points = maxPropType
			c.Reason = "Matches property type preference"
			return c
		}
	}
	c.Points = 4
	c.Flag = "Outside preferred property types"
	return c
}

// timingFlag raises a caution when the offering is already closed or inside
// its closing window relative to the injected clock. It re-derives from the
// close date rather than trusting the parse-time status, since cached records
// may be scored well after they were loaded.
func timingFlag(fund model.FundRecord, now time.Time) string {
	closeDate, ok := model.ParseFeedDate(fund.OfferingClose)
	if !ok {
		return ""
	}
	daysLeft := closeDate.Sub(now).Hours() / 24
	switch {
	case daysLeft < 0:
		return "Offering is closed"
	case daysLeft < 30:
		return "Offering is closing soon"
	}
	return ""
}
