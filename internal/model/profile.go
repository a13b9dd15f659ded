package model

// ClientProfile is the canonical advisor/client input used for suitability
// scoring. Older builds persisted a shorter shape (`risk`, `propTypes`,
// `horizon`, boolean `accredited`); the profile store normalizes those keys
// into this shape on read.
type ClientProfile struct {
	Name             string   `json:"name"`
	ExchangeAmount   *float64 `json:"exchangeAmount"`
	RiskTolerance    string   `json:"riskTolerance"`
	Objective        string   `json:"objective"`
	AccreditedStatus string   `json:"accreditedStatus"`
	TaxBracket       *float64 `json:"taxBracket"`
	HoldPeriod       *float64 `json:"holdPeriod"`
	PropTypePrefs    []string `json:"propTypePrefs"`
	LiquidNetWorth   *float64 `json:"liquidNetWorth"`
	TotalNetWorth    *float64 `json:"totalNetWorth"`
	AnnualIncome     *float64 `json:"annualIncome"`
	Age              *float64 `json:"age"`
	Notes            string   `json:"notes"`
}

// Accredited status values.
const (
	AccreditedYes     = "accredited"
	AccreditedNo      = "not-accredited"
	AccreditedUnknown = ""
)

// IsSet reports whether the profile carries usable signal. The gate is
// name-only: both the profile store's IsSet predicate and the scorer's
// no-profile sentinel go through this method, so the two cannot diverge.
func (p ClientProfile) IsSet() bool {
	return p.Name != ""
}

// DefaultClientProfile is the documented reset state: empty name, no amounts,
// accreditation unknown, no preferences.
func DefaultClientProfile() ClientProfile {
	return ClientProfile{
		AccreditedStatus: AccreditedUnknown,
		PropTypePrefs:    []string{},
	}
}
