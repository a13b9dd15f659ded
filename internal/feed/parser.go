package feed

import (
	"fmt"
	"time"

	"github.com/alts-fund-link/fundlink/internal/model"
)

const (
	// closingSoonDays is the status window before an offering close.
	closingSoonDays = 30
	// minVelocityDays guards raiseVelocity against division blow-up right
	// after an offering opens.
	minVelocityDays = 3
	// daysPerMonth is the average Gregorian month length used for velocity.
	daysPerMonth = 30.44
)

// Parse converts a raw feed response into the ordered fund collection.
// Derived fields are computed against the supplied clock value so the result
// is deterministic.
func Parse(raw string, now time.Time) ([]model.FundRecord, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(payload.Table.Cols))
	for i, col := range payload.Table.Cols {
		if col.Label != "" {
			labels[i] = col.Label
		} else {
			labels[i] = col.ID
		}
	}

	funds := make([]model.FundRecord, 0, len(payload.Table.Rows))
	for i, row := range payload.Table.Rows {
		// The id is the 1-based source row position, assigned before
		// blank-row filtering.
		record := model.FundRecord{ID: i + 1}

		for ci, label := range labels {
			if ci >= len(row.C) {
				break
			}
			apply, ok := columns[label]
			if !ok {
				continue
			}
			apply(&record, row.C[ci])
		}

		if record.Name == "" {
			continue // blank row
		}

		derive(&record, now)
		funds = append(funds, record)
	}
	return funds, nil
}

// derive computes the fields not stored upstream. Must run after all column
// mappings for the row are applied.
func derive(r *model.FundRecord, now time.Time) {
	r.PropType = r.Sector
	if r.Name != "" {
		r.DisplayLabel = truncateLabel(r.Name, 48)
	} else {
		r.DisplayLabel = fmt.Sprintf("Offering %d", r.ID)
	}
	r.Status = computeStatus(r.OfferingClose, now)
	r.PctRemaining = computePctRemaining(r.EquityRemaining, r.FiledRaise)
	r.RaiseVelocity = computeRaiseVelocity(r.CurrentRaise, r.OfferingOpen, now)
}

func truncateLabel(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

// computeStatus classifies an offering by days until close: past → Closed,
// under 30 days → Closing Soon, otherwise Open. A missing or unparseable
// close date means Open.
func computeStatus(closeRaw string, now time.Time) model.FundStatus {
	closeDate, ok := model.ParseFeedDate(closeRaw)
	if !ok {
		return model.StatusOpen
	}
	daysLeft := closeDate.Sub(now).Hours() / 24
	switch {
	case daysLeft < 0:
		return model.StatusClosed
	case daysLeft < closingSoonDays:
		return model.StatusClosingSoon
	default:
		return model.StatusOpen
	}
}

// computePctRemaining is equityRemaining/filedRaise as a percentage, clamped
// to [0,100]. Nil unless both operands are present and filedRaise is positive.
func computePctRemaining(equityRemaining, filedRaise *float64) *float64 {
	if equityRemaining == nil || filedRaise == nil || *filedRaise <= 0 {
		return nil
	}
	pct := *equityRemaining / *filedRaise * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return &pct
}

// computeRaiseVelocity is currentRaise per month since open. Nil when the
// open date is missing or unparseable, the raise is missing, or the offering
// opened under minVelocityDays ago.
func computeRaiseVelocity(currentRaise *float64, openRaw string, now time.Time) *float64 {
	if currentRaise == nil {
		return nil
	}
	openDate, ok := model.ParseFeedDate(openRaw)
	if !ok {
		return nil
	}
	elapsedDays := now.Sub(openDate).Hours() / 24
	if elapsedDays < minVelocityDays {
		return nil
	}
	velocity := *currentRaise / (elapsedDays / daysPerMonth)
	return &velocity
}
