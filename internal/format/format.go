// Package format renders nullable feed values for display. The em dash
// placeholder stands in for missing data everywhere.
package format

import (
	"fmt"
	"math"

	"github.com/alts-fund-link/fundlink/internal/model"
)

// Placeholder shown for missing values.
const Placeholder = "—"

// Pct renders a percentage with d decimal places.
func Pct(v *float64, d int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.*f%%", d, *v)
}

// Num renders a plain number with d decimal places.
func Num(v *float64, d int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", d, *v)
}

// Money renders a currency amount with a magnitude suffix above a thousand.
func Money(v *float64) string {
	if v == nil {
		return Placeholder
	}
	n := *v
	switch {
	case math.Abs(n) >= 1e9:
		return fmt.Sprintf("$%.2fB", n/1e9)
	case math.Abs(n) >= 1e6:
		return fmt.Sprintf("$%.1fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("$%.0fK", n/1e3)
	default:
		return fmt.Sprintf("$%.0f", n)
	}
}

// Date renders a feed date value; unparseable input passes through verbatim.
func Date(s string) string {
	if s == "" {
		return Placeholder
	}
	t, ok := model.ParseFeedDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}
