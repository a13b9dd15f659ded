package feed

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cell coercion. Every numeric path ends in a finite *float64 or nil — never
// NaN, never a raw string passed through.

var numericCleaner = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", " ", "")

// parseNumeric parses a cleaned numeric string. Returns nil when the string
// does not encode a finite number.
func parseNumeric(s string) *float64 {
	s = strings.TrimSpace(numericCleaner.Replace(s))
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	v := d.InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// coerceNumber extracts a finite number from a cell's typed value.
func coerceNumber(c *Cell) *float64 {
	if c == nil || c.V == nil {
		return nil
	}
	switch v := c.V.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		out := v
		return &out
	case string:
		return parseNumeric(v)
	case bool:
		return nil
	default:
		return nil
	}
}

var magnitudeRe = regexp.MustCompile(`(?i)^\s*\$?\s*(-?[\d,]+(?:\.\d+)?)\s*([KMB])\s*$`)

var magnitudeScale = map[string]int32{"K": 3, "M": 6, "B": 9}

// parseFormattedMoney parses a human-formatted money string with a magnitude
// suffix, e.g. "$1.2M". Returns nil when no suffix is present.
func parseFormattedMoney(f string) *float64 {
	m := magnitudeRe.FindStringSubmatch(f)
	if m == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	v := d.Shift(magnitudeScale[strings.ToUpper(m[2])]).InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// coerceMoney extracts a money value. When the formatted string encodes a
// thousand/million/billion magnitude the raw value does not reflect, the
// formatted string wins — this resolves scale mismatches from upstream
// formatting.
func coerceMoney(c *Cell) *float64 {
	if c == nil {
		return nil
	}
	raw := coerceNumber(c)
	if c.F == "" {
		return raw
	}
	formatted := parseFormattedMoney(c.F)
	if formatted == nil {
		return raw
	}
	if raw == nil || math.Abs(*formatted) > math.Abs(*raw) {
		return formatted
	}
	return raw
}

// coercePercent extracts a percentage. A nonzero value with absolute
// magnitude <= 1 is treated as a fractional ratio and rescaled to a whole
// percentage. Keying the rescale off magnitude makes it idempotent: a value
// already expressed as a whole percentage is never scaled again.
func coercePercent(c *Cell) *float64 {
	v := coerceNumber(c)
	if v == nil {
		return nil
	}
	out := *v
	if out != 0 && math.Abs(out) <= 1 {
		out *= 100
	}
	return &out
}

// cellString extracts a display string from a cell's typed value.
func cellString(c *Cell) string {
	if c == nil || c.V == nil {
		return ""
	}
	switch v := c.V.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
