package profile

import "github.com/alts-fund-link/fundlink/internal/model"

// storedProfile is the superset of every profile shape found in persisted
// state: the canonical keys plus the legacy ones (`risk`, `propTypes`,
// `horizon`, boolean `accredited`).
type storedProfile struct {
	Name             string   `json:"name"`
	ExchangeAmount   *float64 `json:"exchangeAmount"`
	RiskTolerance    string   `json:"riskTolerance"`
	Risk             string   `json:"risk"`
	Objective        string   `json:"objective"`
	AccreditedStatus string   `json:"accreditedStatus"`
	Accredited       *bool    `json:"accredited"`
	TaxBracket       *float64 `json:"taxBracket"`
	HoldPeriod       *float64 `json:"holdPeriod"`
	Horizon          *float64 `json:"horizon"`
	PropTypePrefs    []string `json:"propTypePrefs"`
	PropTypes        []string `json:"propTypes"`
	LiquidNetWorth   *float64 `json:"liquidNetWorth"`
	TotalNetWorth    *float64 `json:"totalNetWorth"`
	AnnualIncome     *float64 `json:"annualIncome"`
	Age              *float64 `json:"age"`
	Notes            string   `json:"notes"`
}

// normalize folds a stored profile into the canonical shape. Canonical keys
// win over their legacy counterparts when both are present.
func normalize(sp storedProfile) model.ClientProfile {
	p := model.DefaultClientProfile()
	p.Name = sp.Name
	p.ExchangeAmount = sp.ExchangeAmount
	p.Objective = sp.Objective
	p.TaxBracket = sp.TaxBracket
	p.LiquidNetWorth = sp.LiquidNetWorth
	p.TotalNetWorth = sp.TotalNetWorth
	p.AnnualIncome = sp.AnnualIncome
	p.Age = sp.Age
	p.Notes = sp.Notes

	p.RiskTolerance = sp.RiskTolerance
	if p.RiskTolerance == "" {
		p.RiskTolerance = sp.Risk
	}

	switch {
	case sp.AccreditedStatus != "":
		p.AccreditedStatus = sp.AccreditedStatus
	case sp.Accredited != nil && *sp.Accredited:
		p.AccreditedStatus = model.AccreditedYes
	case sp.Accredited != nil:
		p.AccreditedStatus = model.AccreditedNo
	}

	p.HoldPeriod = sp.HoldPeriod
	if p.HoldPeriod == nil {
		p.HoldPeriod = sp.Horizon
	}

	switch {
	case len(sp.PropTypePrefs) > 0:
		p.PropTypePrefs = append([]string(nil), sp.PropTypePrefs...)
	case len(sp.PropTypes) > 0:
		p.PropTypePrefs = append([]string(nil), sp.PropTypes...)
	}
	return p
}
