package viewmodel

import (
	"strings"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/payment"
)

type Choice struct {
	Key      string
	Label    string
	Selected bool
}

type QuoteView struct {
	Base       string
	AddOnUnit  string
	AddOnCount int
	AddOnTotal string
	Total      string
}

func NewQuoteView(q checkout.Quote) QuoteView {
	return QuoteView{
		Base:       checkout.FormatAmount(q.CurrencySymbol, q.Base),
		AddOnUnit:  checkout.FormatAmount(q.CurrencySymbol, q.AddOnUnit),
		AddOnCount: q.AddOnCount,
		AddOnTotal: checkout.FormatAmount(q.CurrencySymbol, q.AddOnTotal),
		Total:      checkout.FormatAmount(q.CurrencySymbol, q.Total),
	}
}

// Configure is the configuration step.
type Configure struct {
	PlanName     string
	Region       string
	QuoteOnly    bool
	ServiceTypes []Choice
	Assets       []Choice
	AddOns       []Choice
	Requirements string
	PageCount    int
	ProductCount int
	Quote        QuoteView
}

func NewConfigure(d *checkout.Draft, q checkout.Quote) Configure {
	v := Configure{
		Region:       d.Region,
		QuoteOnly:    d.IsQuoteOnly(),
		ServiceTypes: choices(checkout.ServiceTypes, []string{d.Configuration.ServiceType}),
		Assets:       choices(checkout.AssetOptions, d.Configuration.Assets),
		AddOns:       choices(checkout.AvailableAddOns, d.AddOns),
		Requirements: d.Configuration.Requirements,
		PageCount:    d.Configuration.PageCount,
		ProductCount: d.Configuration.ProductCount,
		Quote:        NewQuoteView(q),
	}
	if d.Plan != nil {
		v.PlanName = d.Plan.Name
	}
	return v
}

// Payment is the payment step. Widget is set once buyer details are known
// and the plan is charged through the hosted widget.
type Payment struct {
	PlanName         string
	Region           string
	QuoteOnly        bool
	Quote            QuoteView
	BuyerName        string
	BuyerEmail       string
	HasBuyer         bool
	AddOns           []string
	Widget           *payment.WidgetRequest
	ScriptURL        string
	ConversionNotice string
	WidgetError      string
}

func NewPayment(d *checkout.Draft, q checkout.Quote, cfg payment.WidgetConfig) Payment {
	v := Payment{
		Region:           d.Region,
		QuoteOnly:        d.IsQuoteOnly(),
		Quote:            NewQuoteView(q),
		BuyerName:        d.BuyerName,
		BuyerEmail:       d.BuyerEmail,
		HasBuyer:         d.HasBuyer(),
		AddOns:           labels(checkout.AvailableAddOns, d.AddOns),
		ConversionNotice: payment.ConversionNotice(q, cfg.SettlementCurrency),
	}
	if d.Plan != nil {
		v.PlanName = d.Plan.Name
	}
	if v.QuoteOnly || !v.HasBuyer {
		return v
	}

	req, err := payment.NewWidgetRequest(d, q, cfg)
	if err != nil {
		v.WidgetError = err.Error()
		return v
	}
	v.Widget = &req
	v.ScriptURL = req.ScriptURL
	return v
}

type Confirm struct {
	Status    string
	Title     string
	Message   string
	Reference string
	PlanName  string
	Total     string
	Email     string
}

func NewConfirm(d *checkout.Draft, q checkout.Quote) Confirm {
	v := Confirm{
		Status:    string(d.PaymentStatus),
		Reference: d.Reference,
		Total:     checkout.FormatAmount(q.CurrencySymbol, q.Total),
		Email:     d.BuyerEmail,
	}
	if d.Plan != nil {
		v.PlanName = d.Plan.Name
	}
	switch d.PaymentStatus {
	case checkout.PaymentSuccessful:
		v.Title = "Payment successful"
		v.Message = "Thank you! Your order is confirmed and our team will contact you within one business day."
	case checkout.PaymentRequested:
		v.Title = "Quote request received"
		v.Message = "Your request is pending review. We will send a tailored quote to your email."
	case checkout.PaymentFailed:
		v.Title = "Payment not completed"
		v.Message = "The payment was cancelled or declined and you have not been charged. You can start again at any time."
	default:
		v.Title = "Awaiting payment"
		v.Message = "Your payment has not been completed yet."
	}
	return v
}

func choices(options []checkout.Option, selected []string) []Choice {
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		out = append(out, Choice{Key: o.Key, Label: o.Label, Selected: contains(selected, o.Key)})
	}
	return out
}

func labels(options []checkout.Option, keys []string) []string {
	var out []string
	for _, o := range options {
		if contains(keys, o.Key) {
			out = append(out, o.Label)
		}
	}
	return out
}

func contains(list []string, key string) bool {
	for _, v := range list {
		if strings.EqualFold(v, key) {
			return true
		}
	}
	return false
}
