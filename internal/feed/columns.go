package feed

import "github.com/alts-fund-link/fundlink/internal/model"

// applyFn writes one coerced cell into a record.
type applyFn func(r *model.FundRecord, c *Cell)

func str(assign func(r *model.FundRecord, v string)) applyFn {
	return func(r *model.FundRecord, c *Cell) { assign(r, cellString(c)) }
}

func num(assign func(r *model.FundRecord, v *float64)) applyFn {
	return func(r *model.FundRecord, c *Cell) { assign(r, coerceNumber(c)) }
}

func money(assign func(r *model.FundRecord, v *float64)) applyFn {
	return func(r *model.FundRecord, c *Cell) { assign(r, coerceMoney(c)) }
}

func pct(assign func(r *model.FundRecord, v *float64)) applyFn {
	return func(r *model.FundRecord, c *Cell) { assign(r, coercePercent(c)) }
}

func income(slot int) applyFn {
	return func(r *model.FundRecord, c *Cell) { r.Income[slot] = coercePercent(c) }
}

// columns maps a column label (exact, case-sensitive) to its target field.
// Unrecognized labels are ignored, so new sheet columns never break parsing.
// Note the 'ear 3' entry: a known upstream typo that must populate the Year-3
// income slot exactly as the canonical label does.
var columns = map[string]applyFn{
	"Sponsor":       str(func(r *model.FundRecord, v string) { r.Sponsor = v }),
	"Offering Name": str(func(r *model.FundRecord, v string) { r.Name = v }),
	"Asset Class":   str(func(r *model.FundRecord, v string) { r.AssetClass = v }),
	"Sector":        str(func(r *model.FundRecord, v string) { r.Sector = v }),
	"Focus":         str(func(r *model.FundRecord, v string) { r.Focus = v }),

	"Filed Raise":     money(func(r *model.FundRecord, v *float64) { r.FiledRaise = v }),
	"Current Raise":   money(func(r *model.FundRecord, v *float64) { r.CurrentRaise = v }),
	"Remaining Raise": money(func(r *model.FundRecord, v *float64) { r.EquityRemaining = v }),

	"Offering Open":      str(func(r *model.FundRecord, v string) { r.OfferingOpen = v }),
	"Offering Close":     str(func(r *model.FundRecord, v string) { r.OfferingClose = v }),
	"Offering Structure": str(func(r *model.FundRecord, v string) { r.OfferingStructure = v }),

	"Year 1 Cash on Cash Distribution": pct(func(r *model.FundRecord, v *float64) { r.Y1CoC = v }),
	"Frequency":                        str(func(r *model.FundRecord, v string) { r.DistFrequency = v }),
	"Loan to Value":                    pct(func(r *model.FundRecord, v *float64) { r.LTV = v }),
	"Preferred":                        pct(func(r *model.FundRecord, v *float64) { r.Preferred = v }),
	"Promote":                          str(func(r *model.FundRecord, v string) { r.Promote = v }),
	"721 UpREIT":                       str(func(r *model.FundRecord, v string) { r.UpREIT = v }),
	"Exemption":                        str(func(r *model.FundRecord, v string) { r.Exemption = v }),
	"Tax Reporting":                    str(func(r *model.FundRecord, v string) { r.TaxReporting = v }),
	"Hold Period":                      num(func(r *model.FundRecord, v *float64) { r.HoldPeriod = v }),
	"Minimum - DST":                    money(func(r *model.FundRecord, v *float64) { r.MinInvest = v }),
	"# Assets":                         num(func(r *model.FundRecord, v *float64) { r.NumAssets = v }),
	"Property Location(s)":             str(func(r *model.FundRecord, v string) { r.Location = v }),
	"Building Age":                     str(func(r *model.FundRecord, v string) { r.BuildingAge = v }),
	"(Avg)% Leased":                    pct(func(r *model.FundRecord, v *float64) { r.Occupancy = v }),
	"Debt Terms":                       str(func(r *model.FundRecord, v string) { r.DebtTerms = v }),
	"DSCR":                             num(func(r *model.FundRecord, v *float64) { r.DSCR = v }),
	"Lease Terms":                      str(func(r *model.FundRecord, v string) { r.LeaseTerms = v }),
	"Total Square Footage":             num(func(r *model.FundRecord, v *float64) { r.SqFt = v }),
	"Tenant Credit Quality":            str(func(r *model.FundRecord, v string) { r.TenantCredit = v }),
	"Rent Escalations":                 str(func(r *model.FundRecord, v string) { r.RentEscal = v }),
	"Average Lease Term Remaining":     num(func(r *model.FundRecord, v *float64) { r.AvgLeaseTerm = v }),
	"GP Commit":                        str(func(r *model.FundRecord, v string) { r.GPCommit = v }),

	"Purchase Price (Unloaded)": money(func(r *model.FundRecord, v *float64) { r.PurchasePrice = v }),
	"Appraised Valuation":       money(func(r *model.FundRecord, v *float64) { r.AppraisedValue = v }),
	"Loaded Price":              money(func(r *model.FundRecord, v *float64) { r.LoadedPrice = v }),
	"Acquisition Cap Rate":      pct(func(r *model.FundRecord, v *float64) { r.CapRate = v }),
	"Rep Comp":                  pct(func(r *model.FundRecord, v *float64) { r.RepComp = v }),
	"Sales Load":                pct(func(r *model.FundRecord, v *float64) { r.SalesLoad = v }),
	"Reserve":                   str(func(r *model.FundRecord, v string) { r.Reserve = v }),

	"Year 1":  income(0),
	"Year 2":  income(1),
	"Year 3":  income(2),
	"ear 3":   income(2), // known upstream typo
	"Year 4":  income(3),
	"Year 5":  income(4),
	"Year 6":  income(5),
	"Year 7":  income(6),
	"Year 8":  income(7),
	"Year 9":  income(8),
	"Year 10": income(9),

	"Sponsor AUM":                 str(func(r *model.FundRecord, v string) { r.SponsorAUM = v }),
	"Number of Sponsor Offerings": num(func(r *model.FundRecord, v *float64) { r.SponsorOfferings = v }),
	"Sponsor Full Cycle Exits":    num(func(r *model.FundRecord, v *float64) { r.SponsorExits = v }),
	"Sponsor Average IRR":         pct(func(r *model.FundRecord, v *float64) { r.SponsorAvgIRR = v }),
	"Sponsor Best IRR":            pct(func(r *model.FundRecord, v *float64) { r.SponsorBestIRR = v }),
	"Sponsor Worst IRR":           pct(func(r *model.FundRecord, v *float64) { r.SponsorWorstIRR = v }),
	"Sponsor Experience":          str(func(r *model.FundRecord, v string) { r.SponsorExperience = v }),

	"Brochure":             str(func(r *model.FundRecord, v string) { r.BrochureURL = v }),
	"PPM":                  str(func(r *model.FundRecord, v string) { r.PPMURL = v }),
	"Track Record":         str(func(r *model.FundRecord, v string) { r.TrackRecordURL = v }),
	"Sales Team Map":       str(func(r *model.FundRecord, v string) { r.SalesTeamURL = v }),
	"Video":                str(func(r *model.FundRecord, v string) { r.VideoURL = v }),
	"Sponsor News":         str(func(r *model.FundRecord, v string) { r.SponsorNewsURL = v }),
	"AI Offering Chat":     str(func(r *model.FundRecord, v string) { r.AIChatURL = v }),
	"Quarterly Update URL": str(func(r *model.FundRecord, v string) { r.QuarterlyUpdateURL = v }),
	"Sponsor Logo URL":     str(func(r *model.FundRecord, v string) { r.SponsorLogoURL = v }),
}
