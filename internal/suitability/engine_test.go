package suitability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alts-fund-link/fundlink/internal/model"
	"github.com/alts-fund-link/fundlink/internal/peerstats"
)

var scoreNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// idealFund hits the top tier of every component for the matching client.
func idealFund() model.FundRecord {
	return model.FundRecord{
		ID:         1,
		Name:       "Summit Industrial DST",
		Sector:     "Industrial",
		PropType:   "Industrial",
		LTV:        model.Float(55),
		MinInvest:  model.Float(100000),
		Y1CoC:      model.Float(5.5),
		Occupancy:  model.Float(97),
		HoldPeriod: model.Float(7),
	}
}

func matchingClient() model.ClientProfile {
	return model.ClientProfile{
		Name:           "Jordan Blake",
		ExchangeAmount: model.Float(500000),
		RiskTolerance:  RiskModerate,
		HoldPeriod:     model.Float(7),
		PropTypePrefs:  []string{"Industrial", "Multifamily"},
	}
}

func TestScore_UnsetProfileReturnsNil(t *testing.T) {
	assert.Nil(t, Score(idealFund(), model.ClientProfile{}, nil, scoreNow))
}

// A profile carrying only a name scores every component at its neutral
// midpoint: exactly 50, never 0 or 100.
func TestScore_NameOnlyProfileIsNeutralFifty(t *testing.T) {
	res := Score(model.FundRecord{ID: 1, Name: "Fund A"}, model.ClientProfile{Name: "Jordan Blake"}, nil, scoreNow)
	require.NotNil(t, res)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, "Fair Match", res.Label)
	assert.Empty(t, res.Flags)
	assert.Empty(t, res.Reasons)
}

func TestScore_PerfectMatchIsHundred(t *testing.T) {
	res := Score(idealFund(), matchingClient(), nil, scoreNow)
	require.NotNil(t, res)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "Strong Match", res.Label)
	assert.Empty(t, res.Flags)
	assert.NotEmpty(t, res.Reasons)
}

func TestScore_ComponentMaximaSumToHundred(t *testing.T) {
	res := Score(idealFund(), matchingClient(), nil, scoreNow)
	require.NotNil(t, res)
	var sum float64
	for _, c := range res.Components {
		sum += c.Max
		assert.LessOrEqual(t, c.Points, c.Max, "component %s over its max", c.Name)
		assert.GreaterOrEqual(t, c.Points, 0.0, "component %s below zero", c.Name)
	}
	assert.Equal(t, 100.0, sum)
}

func TestScoreCapacity(t *testing.T) {
	tests := []struct {
		name       string
		minInvest  *float64
		capital    *float64
		wantPoints float64
		wantFlag   bool
	}{
		{"diversified capacity", model.Float(100000), model.Float(300000), 25, false},
		{"single position", model.Float(250000), model.Float(300000), 16, false},
		{"minimum exceeds capital", model.Float(350000), model.Float(300000), 0, true},
		{"missing minimum", nil, model.Float(300000), 12.5, false},
		{"missing capital", model.Float(100000), nil, 12.5, false},
		{"nonpositive minimum", model.Float(0), model.Float(300000), 12.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fund := model.FundRecord{MinInvest: tt.minInvest}
			client := model.ClientProfile{Name: "x", ExchangeAmount: tt.capital}
			c := scoreCapacity(fund, client)
			assert.Equal(t, tt.wantPoints, c.Points)
			if tt.wantFlag {
				assert.Equal(t, "Minimum investment exceeds available capital", c.Flag)
			} else {
				assert.Empty(t, c.Flag)
			}
		})
	}
}

func TestScoreStructure(t *testing.T) {
	tests := []struct {
		name       string
		ltv        *float64
		risk       string
		wantPoints float64
		wantFlag   bool
	}{
		{"low leverage", model.Float(58), RiskModerate, 15, false},
		{"boundary sixty", model.Float(60), RiskModerate, 15, false},
		{"mid band", model.Float(64), RiskModerate, 10, false},
		{"elevated", model.Float(72), RiskModerate, 4, true},
		{"elevated conservative", model.Float(72), RiskConservative, 2, true},
		{"high", model.Float(80), RiskModerate, 0, true},
		{"high aggressive floor", model.Float(80), RiskAggressive, 3, true},
		{"missing ltv", nil, RiskModerate, 7.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scoreStructure(model.FundRecord{LTV: tt.ltv}, model.ClientProfile{Name: "x", RiskTolerance: tt.risk})
			assert.Equal(t, tt.wantPoints, c.Points)
			assert.Equal(t, tt.wantFlag, c.Flag != "")
		})
	}
}

func TestScoreYield_AbsoluteBands(t *testing.T) {
	tests := []struct {
		name       string
		y1         *float64
		wantPoints float64
	}{
		{"strong", model.Float(5.2), 20},
		{"solid", model.Float(4.3), 14},
		{"middling", model.Float(3.4), 8},
		{"weak", model.Float(2.1), 3},
		{"missing", nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scoreYield(model.FundRecord{Y1CoC: tt.y1}, nil)
			assert.Equal(t, tt.wantPoints, c.Points)
		})
	}
}

func TestScoreYield_PeerRelative(t *testing.T) {
	peers := peerstats.Compute([]model.FundRecord{
		{Y1CoC: model.Float(4.0)},
		{Y1CoC: model.Float(5.0)},
	}) // avg 4.5

	tests := []struct {
		name       string
		y1         float64
		wantPoints float64
		wantFlag   bool
	}{
		{"well above peers", 5.6, 20, false},
		{"at peers", 4.5, 14, false},
		{"slightly below", 3.8, 8, false},
		{"well below", 3.0, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scoreYield(model.FundRecord{Y1CoC: model.Float(tt.y1)}, peers)
			assert.Equal(t, tt.wantPoints, c.Points)
			assert.Equal(t, tt.wantFlag, c.Flag != "")
		})
	}
}

func TestScoreOccupancy(t *testing.T) {
	tests := []struct {
		name       string
		occ        *float64
		wantPoints float64
		wantFlag   bool
	}{
		{"stabilized", model.Float(96), 10, false},
		{"strong", model.Float(92), 8, false},
		{"soft", model.Float(85), 5, false},
		{"weak", model.Float(70), 2, true},
		{"missing", nil, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scoreOccupancy(model.FundRecord{Occupancy: tt.occ})
			assert.Equal(t, tt.wantPoints, c.Points)
			assert.Equal(t, tt.wantFlag, c.Flag != "")
		})
	}
}

func TestScoreHoldPeriod(t *testing.T) {
	t.Run("horizon bands", func(t *testing.T) {
		tests := []struct {
			name       string
			fundHold   float64
			clientHold float64
			wantPoints float64
		}{
			{"aligned", 7, 7, 15},
			{"within one", 7, 8, 15},
			{"within three", 7, 10, 10},
			{"within five", 7, 12, 5},
			{"far apart", 7, 15, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := scoreHoldPeriod(
					model.FundRecord{HoldPeriod: model.Float(tt.fundHold)},
					model.ClientProfile{Name: "x", HoldPeriod: model.Float(tt.clientHold)},
				)
				assert.Equal(t, tt.wantPoints, c.Points)
			})
		}
	})

	t.Run("age heuristic when horizon missing", func(t *testing.T) {
		tests := []struct {
			name       string
			age        float64
			wantPoints float64
			wantFlag   bool
		}{
			{"comfortable exit", 60, 12, false},
			{"near limit", 72, 7, false},
			{"past limit", 78, 2, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := scoreHoldPeriod(
					model.FundRecord{HoldPeriod: model.Float(7)},
					model.ClientProfile{Name: "x", Age: model.Float(tt.age)},
				)
				assert.Equal(t, tt.wantPoints, c.Points)
				assert.Equal(t, tt.wantFlag, c.Flag != "")
			})
		}
	})

	t.Run("no horizon and no age is neutral", func(t *testing.T) {
		c := scoreHoldPeriod(model.FundRecord{HoldPeriod: model.Float(7)}, model.ClientProfile{Name: "x"})
		assert.Equal(t, 7.5, c.Points)
	})
}

func TestScorePropType(t *testing.T) {
	tests := []struct {
		name       string
		propType   string
		prefs      []string
		wantPoints float64
		wantFlag   bool
	}{
		{"match", "Industrial", []string{"Industrial"}, 15, false},
		{"case-insensitive match", "industrial", []string{"Industrial"}, 15, false},
		{"mismatch", "Retail", []string{"Industrial", "Multifamily"}, 4, true},
		{"no preferences", "Retail", nil, 7.5, false},
		{"no sector", "", []string{"Industrial"}, 7.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scorePropType(
				model.FundRecord{PropType: tt.propType},
				model.ClientProfile{Name: "x", PropTypePrefs: tt.prefs},
			)
			assert.Equal(t, tt.wantPoints, c.Points)
			assert.Equal(t, tt.wantFlag, c.Flag != "")
		})
	}
}

func TestTimingFlag(t *testing.T) {
	day := func(offset int) string {
		return scoreNow.AddDate(0, 0, offset).Format("2006-01-02")
	}
	assert.Equal(t, "Offering is closed", timingFlag(model.FundRecord{OfferingClose: day(-3)}, scoreNow))
	assert.Equal(t, "Offering is closing soon", timingFlag(model.FundRecord{OfferingClose: day(12)}, scoreNow))
	assert.Empty(t, timingFlag(model.FundRecord{OfferingClose: day(90)}, scoreNow))
	assert.Empty(t, timingFlag(model.FundRecord{OfferingClose: ""}, scoreNow))
}

// The closing window is derived from the injected clock, so a record scored
// long after parse still flags correctly.
func TestScore_TimingFlagTracksClock(t *testing.T) {
	fund := idealFund()
	fund.OfferingClose = scoreNow.AddDate(0, 0, 45).Format("2006-01-02")

	early := Score(fund, matchingClient(), nil, scoreNow)
	require.NotNil(t, early)
	assert.Empty(t, early.Flags)

	later := Score(fund, matchingClient(), nil, scoreNow.AddDate(0, 0, 30))
	require.NotNil(t, later)
	require.Len(t, later.Flags, 1)
	assert.Equal(t, "Offering is closing soon", later.Flags[0])
}

func TestMatchLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Strong Match"},
		{75, "Strong Match"},
		{74, "Good Match"},
		{55, "Good Match"},
		{54, "Fair Match"},
		{40, "Fair Match"},
		{39, "Poor Match"},
		{0, "Poor Match"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchLabel(tt.score), "score %d", tt.score)
	}
}

func TestScore_WorstCaseStaysInRange(t *testing.T) {
	fund := model.FundRecord{
		ID:         1,
		Name:       "Leveraged Retail DST",
		PropType:   "Retail",
		LTV:        model.Float(85),
		MinInvest:  model.Float(1000000),
		Y1CoC:      model.Float(1.5),
		Occupancy:  model.Float(60),
		HoldPeriod: model.Float(15),
	}
	client := model.ClientProfile{
		Name:           "Jordan Blake",
		ExchangeAmount: model.Float(200000),
		RiskTolerance:  RiskConservative,
		HoldPeriod:     model.Float(5),
		PropTypePrefs:  []string{"Industrial"},
	}
	res := Score(fund, client, nil, scoreNow)
	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.Score, 0)
	assert.Equal(t, "Poor Match", res.Label)
	assert.GreaterOrEqual(t, len(res.Flags), 5)
}
