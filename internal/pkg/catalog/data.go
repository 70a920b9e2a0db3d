package catalog

import "strings"

var planFeatures = map[PlanKey][]string{
	PlanBasic: {
		"Up to 5 pages",
		"Mobile-friendly design",
		"Contact form",
		"Free SSL certificate",
	},
	PlanPro: {
		"Up to 15 pages",
		"Blog and news section",
		"Basic SEO setup",
		"Google Analytics integration",
		"Monthly content updates",
	},
	PlanBusiness: {
		"Unlimited pages",
		"Online store up to 100 products",
		"Advanced SEO",
		"Priority support",
		"Weekly backups",
	},
	PlanCustom: {
		"Tailored design and features",
		"Dedicated project manager",
		"Custom integrations",
	},
}

var planNames = map[PlanKey]string{
	PlanBasic:    "Basic",
	PlanPro:      "Pro",
	PlanBusiness: "Business",
	PlanCustom:   "Custom",
}

type regionSeed struct {
	name   string
	symbol string
	code   string
	prices map[PlanKey]float64
	// billing plan identifiers at the payment processor, one per priced tier
	planIDs map[PlanKey]string
}

var seeds = []regionSeed{
	{
		name:   "Nigeria",
		symbol: "₦",
		code:   "NGN",
		prices: map[PlanKey]float64{PlanBasic: 45000, PlanPro: 60000, PlanBusiness: 120000, PlanCustom: 0},
		planIDs: map[PlanKey]string{
			PlanBasic:    "PLN_ng_basic_monthly",
			PlanPro:      "PLN_ng_pro_monthly",
			PlanBusiness: "PLN_ng_business_monthly",
		},
	},
	{
		name:   "Ghana",
		symbol: "GH₵",
		code:   "GHS",
		prices: map[PlanKey]float64{PlanBasic: 600, PlanPro: 900, PlanBusiness: 1800, PlanCustom: 0},
		planIDs: map[PlanKey]string{
			PlanBasic:    "PLN_gh_basic_monthly",
			PlanPro:      "PLN_gh_pro_monthly",
			PlanBusiness: "PLN_gh_business_monthly",
		},
	},
	{
		name:   "UK",
		symbol: "£",
		code:   "GBP",
		prices: map[PlanKey]float64{PlanBasic: 39, PlanPro: 79, PlanBusiness: 159, PlanCustom: 0},
		planIDs: map[PlanKey]string{
			PlanBasic:    "PLN_uk_basic_monthly",
			PlanPro:      "PLN_uk_pro_monthly",
			PlanBusiness: "PLN_uk_business_monthly",
		},
	},
	{
		name:   "USA",
		symbol: "$",
		code:   "USD",
		prices: map[PlanKey]float64{PlanBasic: 49, PlanPro: 99, PlanBusiness: 199, PlanCustom: 0},
		planIDs: map[PlanKey]string{
			PlanBasic:    "PLN_us_basic_monthly",
			PlanPro:      "PLN_us_pro_monthly",
			PlanBusiness: "PLN_us_business_monthly",
		},
	},
}

var (
	regions     = map[string]RegionPricing{}
	regionOrder []string
)

func init() {
	for _, s := range seeds {
		entry := RegionPricing{
			Region:         s.name,
			CurrencySymbol: s.symbol,
			CurrencyCode:   s.code,
			Plans:          make(map[PlanKey]Plan, len(s.prices)),
		}
		for key, price := range s.prices {
			entry.Plans[key] = Plan{
				Key:           key,
				Name:          planNames[key],
				Price:         price,
				Features:      append([]string(nil), planFeatures[key]...),
				BillingPlanID: s.planIDs[key],
			}
		}
		regions[strings.ToLower(s.name)] = entry
		regionOrder = append(regionOrder, s.name)
	}
}
