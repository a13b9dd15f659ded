package model

// FundStatus classifies an offering by its close date.
type FundStatus string

const (
	StatusOpen        FundStatus = "Open"
	StatusClosingSoon FundStatus = "Closing Soon"
	StatusClosed      FundStatus = "Closed"
)

// IncomeYears is the number of projected distribution years carried per offering.
const IncomeYears = 10

// FundRecord is one normalized row of the offerings feed.
//
// Nullable numeric fields are *float64: either a finite number or nil, never NaN
// and never a raw string. JSON tags match the persisted cache shape so records
// written by earlier builds remain readable.
type FundRecord struct {
	// ID is the 1-based position of the row in the source feed. It is assigned
	// before blank-row filtering, so it stays stable regardless of which rows
	// are blank. IDs are not stable across reloads if upstream row order changes.
	ID int `json:"id"`

	Sponsor    string `json:"sponsor"`
	Name       string `json:"name"`
	AssetClass string `json:"assetClass"`
	Sector     string `json:"sector"`
	Focus      string `json:"focus"`

	FiledRaise      *float64 `json:"filedRaise"`
	CurrentRaise    *float64 `json:"currentRaise"`
	EquityRemaining *float64 `json:"equityRemaining"`

	// Offering dates keep the raw feed value; derivations parse them.
	OfferingOpen      string `json:"offeringOpen"`
	OfferingClose     string `json:"offeringClose"`
	OfferingStructure string `json:"offeringStructure"`

	Y1CoC         *float64 `json:"y1coc"`
	DistFrequency string   `json:"distFrequency"`
	LTV           *float64 `json:"ltv"`
	Preferred     *float64 `json:"preferred"`
	Promote       string   `json:"promote"`
	UpREIT        string   `json:"upReit"`
	Exemption     string   `json:"exemption"`
	TaxReporting  string   `json:"taxReporting"`
	HoldPeriod    *float64 `json:"holdPeriod"`
	MinInvest     *float64 `json:"minInvest"`
	NumAssets     *float64 `json:"numAssets"`
	Location      string   `json:"location"`
	BuildingAge   string   `json:"buildingAge"`
	Occupancy     *float64 `json:"occupancy"`
	DebtTerms     string   `json:"debtTerms"`
	DSCR          *float64 `json:"dscr"`
	LeaseTerms    string   `json:"leaseTerms"`
	SqFt          *float64 `json:"sqft"`
	TenantCredit  string   `json:"tenantCredit"`
	RentEscal     string   `json:"rentEscalations"`
	AvgLeaseTerm  *float64 `json:"avgLeaseTerm"`
	GPCommit      string   `json:"gpCommit"`

	PurchasePrice  *float64 `json:"purchasePrice"`
	AppraisedValue *float64 `json:"appraisedValue"`
	LoadedPrice    *float64 `json:"loadedPrice"`
	CapRate        *float64 `json:"capRate"`
	RepComp        *float64 `json:"repComp"`
	SalesLoad      *float64 `json:"salesLoad"`
	Reserve        string   `json:"reserve"`

	// Income holds the year-1..year-10 projected distributions by position.
	Income [IncomeYears]*float64 `json:"income"`

	SponsorAUM        string   `json:"sponsorAum"`
	SponsorOfferings  *float64 `json:"sponsorOfferings"`
	SponsorExits      *float64 `json:"sponsorExits"`
	SponsorAvgIRR     *float64 `json:"sponsorAvgIrr"`
	SponsorBestIRR    *float64 `json:"sponsorBestIrr"`
	SponsorWorstIRR   *float64 `json:"sponsorWorstIrr"`
	SponsorExperience string   `json:"sponsorExperience"`

	BrochureURL        string `json:"brochureUrl"`
	PPMURL             string `json:"ppmUrl"`
	TrackRecordURL     string `json:"trackRecordUrl"`
	SalesTeamURL       string `json:"salesTeamUrl"`
	VideoURL           string `json:"videoUrl"`
	SponsorNewsURL     string `json:"sponsorNewsUrl"`
	AIChatURL          string `json:"aiChatUrl"`
	QuarterlyUpdateURL string `json:"quarterlyUpdateUrl"`
	SponsorLogoURL     string `json:"sponsorLogoUrl"`

	// Derived at parse time, not stored upstream.
	PropType      string     `json:"propType"`
	DisplayLabel  string     `json:"displayLabel"`
	Status        FundStatus `json:"status"`
	PctRemaining  *float64   `json:"pctRemaining"`
	RaiseVelocity *float64   `json:"raiseVelocity"`
}

// Float returns a pointer to v. Convenience for building records in fixtures.
func Float(v float64) *float64 { return &v }
