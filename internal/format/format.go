// Package format holds the pure display-formatting rules shared by every
// endpoint operation. All functions are deterministic and never mutate the
// identifiers they render.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/donbagger/plugin-dexpaprika/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotAvailable is the sentinel rendered for absent values. Absence, not
// zero, triggers it: a present zero still renders as a number.
const NotAvailable = "N/A"

// Fraction-digit counts by field semantics.
const (
	VolumeDigits     = 2
	PoolPriceDigits  = 4
	TokenPriceDigits = 6
)

const timestampLayout = "2006-01-02 at 15:04:05"

var english = message.NewPrinter(language.English)

func grouped(v float64, digits int) string {
	return english.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

// USDValue renders a USD amount with thousands separators and a fixed
// fraction-digit count, e.g. USDValue(1234.5, 2) == "$1,234.50".
func USDValue(v float64, digits int) string {
	return "$" + grouped(v, digits)
}

// USD is USDValue with the absent-value fallback.
func USD(v *float64, digits int) string {
	if v == nil {
		return NotAvailable
	}
	return USDValue(*v, digits)
}

// Amount renders a plain (non-USD) quantity with thousands separators.
func Amount(v *float64, digits int) string {
	if v == nil {
		return NotAvailable
	}
	return grouped(*v, digits)
}

// ChangePercent renders a fractional change (0.0215 meaning 2.15%) at two
// fraction digits, with a "+" prefix for positive values. A present zero is
// "0.00%"; only a nil (absent) value is NotAvailable.
func ChangePercent(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	if *p > 0 {
		return fmt.Sprintf("+%.2f%%", *p*100)
	}
	return fmt.Sprintf("%.2f%%", *p*100)
}

// Fee renders a fractional fee (0.003 meaning 0.3%) at two fraction digits.
func Fee(f *float64) string {
	if f == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", *f*100)
}

// TitleCase renders a lowercase, possibly underscore-delimited identifier
// for display: "uniswap_v3" becomes "Uniswap V3". Cosmetic only; callers
// keep using the original identifier for path construction.
func TitleCase(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// PairName is the pool display name built from the first two token symbols,
// tolerating pools with fewer than two tokens.
func PairName(tokens []model.Token) string {
	first, second := "Token1", "Token2"
	if len(tokens) > 0 && tokens[0].Symbol != "" {
		first = tokens[0].Symbol
	}
	if len(tokens) > 1 && tokens[1].Symbol != "" {
		second = tokens[1].Symbol
	}
	return first + "-" + second
}

// PageSummary renders 0-indexed page metadata 1-indexed for display.
func PageSummary(pi model.PageInfo) string {
	return fmt.Sprintf("Page %d of %d", pi.Page+1, pi.TotalPages)
}

// Timestamp is the wall-clock time the normalization ran, in the envelope's
// fixed human-readable layout. It says nothing about data freshness.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
