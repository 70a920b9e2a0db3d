package catalog

import (
	"errors"
	"strings"
)

// ErrRegionNotFound is returned by Lookup for a region without pricing.
var ErrRegionNotFound = errors.New("no pricing available for region")

// DefaultRegion is used when the visitor has not picked a region yet.
const DefaultRegion = "Nigeria"

type PlanKey string

const (
	PlanBasic    PlanKey = "basic"
	PlanPro      PlanKey = "pro"
	PlanBusiness PlanKey = "business"
	PlanCustom   PlanKey = "custom"
)

var planOrder = []PlanKey{PlanBasic, PlanPro, PlanBusiness, PlanCustom}

// NormalizePlanKey maps user input onto the closed set of plan keys.
func NormalizePlanKey(raw string) (PlanKey, bool) {
	switch PlanKey(strings.ToLower(strings.TrimSpace(raw))) {
	case PlanBasic:
		return PlanBasic, true
	case PlanPro:
		return PlanPro, true
	case PlanBusiness:
		return PlanBusiness, true
	case PlanCustom:
		return PlanCustom, true
	default:
		return "", false
	}
}

// Plan is one pricing tier. Price is expressed in major currency units
// (e.g. 60000 for 60,000 NGN); conversion to minor units only happens when the
// payment widget is invoked.
type Plan struct {
	Key           PlanKey  `json:"key"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Features      []string `json:"features"`
	BillingPlanID string   `json:"billing_plan_id,omitempty"`
}

// IsQuoteOnly reports whether the plan has no fixed price and is sold through
// a manual quote request instead of the payment widget.
func (p Plan) IsQuoteOnly() bool {
	return p.Key == PlanCustom
}

func (p Plan) clone() Plan {
	out := p
	out.Features = append([]string(nil), p.Features...)
	return out
}

// RegionPricing maps a region to its display currency and plans.
type RegionPricing struct {
	Region         string           `json:"region"`
	CurrencySymbol string           `json:"currency_symbol"`
	CurrencyCode   string           `json:"currency_code"`
	Plans          map[PlanKey]Plan `json:"plans"`
}

// Plan returns the plan stored under key.
func (r RegionPricing) Plan(key PlanKey) (Plan, bool) {
	p, ok := r.Plans[key]
	if !ok {
		return Plan{}, false
	}
	return p.clone(), true
}

// OrderedPlans returns the region's plans in display order.
func (r RegionPricing) OrderedPlans() []Plan {
	out := make([]Plan, 0, len(r.Plans))
	for _, key := range planOrder {
		if p, ok := r.Plans[key]; ok {
			out = append(out, p.clone())
		}
	}
	return out
}

func (r RegionPricing) clone() RegionPricing {
	out := r
	out.Plans = make(map[PlanKey]Plan, len(r.Plans))
	for k, p := range r.Plans {
		out.Plans[k] = p.clone()
	}
	return out
}

// Lookup returns the pricing entry for region. The match is case-insensitive.
// The returned value is a copy; callers may not mutate the catalog through it.
func Lookup(region string) (RegionPricing, error) {
	entry, ok := regions[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return RegionPricing{}, ErrRegionNotFound
	}
	return entry.clone(), nil
}

// Regions lists the region names in display order.
func Regions() []string {
	return append([]string(nil), regionOrder...)
}

// IsKnownRegion reports whether Lookup would succeed for region.
func IsKnownRegion(region string) bool {
	_, ok := regions[strings.ToLower(strings.TrimSpace(region))]
	return ok
}
