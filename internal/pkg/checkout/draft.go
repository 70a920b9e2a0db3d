package checkout

import (
	"sort"
	"strings"
	"time"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
)

// Option describes a selectable answer on the configuration step.
type Option struct {
	Key   string
	Label string
}

// ServiceTypes are the kinds of website the buyer can order.
var ServiceTypes = []Option{
	{Key: "business", Label: "Business website"},
	{Key: "ecommerce", Label: "Online store"},
	{Key: "portfolio", Label: "Portfolio"},
	{Key: "landing", Label: "Landing page"},
}

// AssetOptions is the checklist of material the buyer already has.
var AssetOptions = []Option{
	{Key: "logo", Label: "Logo"},
	{Key: "copy", Label: "Written content"},
	{Key: "photos", Label: "Photos"},
	{Key: "domain", Label: "Domain name"},
}

// AvailableAddOns can be added to any priced plan; each costs AddOnRate of the base price.
var AvailableAddOns = []Option{
	{Key: "seo", Label: "SEO boost"},
	{Key: "copywriting", Label: "Copywriting"},
	{Key: "logo-design", Label: "Logo design"},
	{Key: "maintenance", Label: "Priority maintenance"},
	{Key: "analytics", Label: "Analytics dashboard"},
}

func hasOption(options []Option, key string) bool {
	for _, o := range options {
		if o.Key == key {
			return true
		}
	}
	return false
}

// Configuration holds the service-specific answers of the configuration step.
type Configuration struct {
	ServiceType  string   `json:"service_type" validate:"omitempty,oneof=business ecommerce portfolio landing"`
	Assets       []string `json:"assets" validate:"dive,oneof=logo copy photos domain"`
	Requirements string   `json:"requirements" validate:"max=2000"`
	PageCount    int      `json:"page_count" validate:"gte=0,lte=500"`
	ProductCount int      `json:"product_count" validate:"gte=0,lte=100000"`
}

// ConfigurationUpdate is a partial configuration; nil fields are left untouched.
type ConfigurationUpdate struct {
	ServiceType  *string
	Assets       []string
	Requirements *string
	PageCount    *int
	ProductCount *int
}

func (c *Configuration) merge(u ConfigurationUpdate) {
	if u.ServiceType != nil {
		c.ServiceType = strings.TrimSpace(*u.ServiceType)
	}
	if u.Assets != nil {
		c.Assets = normalizeSet(u.Assets, AssetOptions)
	}
	if u.Requirements != nil {
		c.Requirements = strings.TrimSpace(*u.Requirements)
	}
	if u.PageCount != nil {
		c.PageCount = *u.PageCount
	}
	if u.ProductCount != nil {
		c.ProductCount = *u.ProductCount
	}
}

// NormalizeAddOns returns the known add-on keys of addOns as a sorted set.
func NormalizeAddOns(addOns []string) []string {
	return normalizeSet(addOns, AvailableAddOns)
}

// normalizeSet drops unknown and duplicate keys and sorts the rest, so the
// result behaves as a set.
func normalizeSet(keys []string, allowed []Option) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, raw := range keys {
		k := strings.ToLower(strings.TrimSpace(raw))
		if k == "" || !hasOption(allowed, k) {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Draft is the in-progress purchase of the current browsing session.
type Draft struct {
	ID            string        `json:"id"`
	Plan          *catalog.Plan `json:"plan,omitempty"`
	Region        string        `json:"region"`
	Configuration Configuration `json:"configuration"`
	AddOns        []string      `json:"add_ons"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	BuyerName     string        `json:"buyer_name"`
	BuyerEmail    string        `json:"buyer_email"`
	Reference     string        `json:"reference,omitempty"`
	Notified      bool          `json:"notified"`
	CreatedAt     time.Time     `json:"created_at"`
}

// HasBuyer reports whether buyer identity has been collected.
func (d *Draft) HasBuyer() bool {
	return d != nil && d.BuyerName != "" && d.BuyerEmail != ""
}

// IsQuoteOnly reports whether the draft's plan is the no-fixed-price tier.
func (d *Draft) IsQuoteOnly() bool {
	return d != nil && d.Plan != nil && d.Plan.IsQuoteOnly()
}
