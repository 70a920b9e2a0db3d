package checkout

import (
	"math"
	"strconv"
	"strings"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
)

// AddOnRate is the share of the base price charged per selected add-on.
const AddOnRate = 0.20

// Quote is the running price of a draft. Values are unrounded; rounding
// happens in FormatAmount only.
type Quote struct {
	Base           float64 `json:"base"`
	AddOnUnit      float64 `json:"add_on_unit"`
	AddOnCount     int     `json:"add_on_count"`
	AddOnTotal     float64 `json:"add_on_total"`
	Total          float64 `json:"total"`
	CurrencySymbol string  `json:"currency_symbol"`
	CurrencyCode   string  `json:"currency_code"`
}

// ComputeQuote prices the draft: base + len(addOns) * AddOnRate * base.
// The quote-only tier always totals zero.
func ComputeQuote(d *Draft, region catalog.RegionPricing) Quote {
	q := Quote{
		CurrencySymbol: region.CurrencySymbol,
		CurrencyCode:   region.CurrencyCode,
	}
	if d == nil || d.Plan == nil || d.Plan.IsQuoteOnly() {
		return q
	}

	q.Base = d.Plan.Price
	q.AddOnUnit = q.Base * AddOnRate
	q.AddOnCount = len(d.AddOns)
	q.AddOnTotal = float64(q.AddOnCount) * q.AddOnUnit
	q.Total = q.Base + q.AddOnTotal
	return q
}

// FormatAmount renders amount with two decimals and thousands separators,
// e.g. "₦84,000.00".
func FormatAmount(symbol string, amount float64) string {
	rounded := math.Round(amount*100) / 100
	neg := rounded < 0
	if neg {
		rounded = -rounded
	}

	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
