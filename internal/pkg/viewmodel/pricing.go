package viewmodel

import (
	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

type PlanCard struct {
	Key       string
	Name      string
	Price     string
	Features  []string
	QuoteOnly bool
	CTALabel  string
}

// PricingTable is the plan grid for one region. Available is false when the
// region has no pricing entry.
type PricingTable struct {
	Region       string
	CurrencyCode string
	Available    bool
	Plans        []PlanCard
	CSRF         string
}

func NewPricingTable(region string) PricingTable {
	entry, err := catalog.Lookup(region)
	if err != nil {
		return PricingTable{Region: region}
	}
	t := PricingTable{
		Region:       entry.Region,
		CurrencyCode: entry.CurrencyCode,
		Available:    true,
	}
	for _, p := range entry.OrderedPlans() {
		card := PlanCard{
			Key:       string(p.Key),
			Name:      p.Name,
			Price:     checkout.FormatAmount(entry.CurrencySymbol, p.Price),
			Features:  p.Features,
			QuoteOnly: p.IsQuoteOnly(),
			CTALabel:  "Get started",
		}
		if card.QuoteOnly {
			card.Price = "Let's talk"
			card.CTALabel = "Request a quote"
		}
		t.Plans = append(t.Plans, card)
	}
	return t
}
