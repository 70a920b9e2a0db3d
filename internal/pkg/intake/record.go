package intake

import (
	"strings"
	"time"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

// Record is the flat lead record accepted by the intake relay.
type Record struct {
	DraftID       string  `json:"draft_id"`
	Plan          string  `json:"plan"`
	Region        string  `json:"region"`
	Currency      string  `json:"currency"`
	BasePrice     float64 `json:"base_price"`
	Total         float64 `json:"total"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ServiceType   string  `json:"service_type"`
	Assets        string  `json:"assets"`
	AddOns        string  `json:"add_ons"`
	Requirements  string  `json:"requirements"`
	PageCount     int     `json:"page_count"`
	ProductCount  int     `json:"product_count"`
	PaymentStatus string  `json:"payment_status"`
	Reference     string  `json:"reference"`
	SubmittedAt   string  `json:"submitted_at"`
}

// NewRecord flattens a notification; list answers become comma-joined strings.
func NewRecord(n checkout.Notification, now time.Time) Record {
	d := n.Draft
	rec := Record{
		DraftID:       d.ID,
		Region:        d.Region,
		Currency:      n.Quote.CurrencyCode,
		BasePrice:     n.Quote.Base,
		Total:         n.Quote.Total,
		Name:          d.BuyerName,
		Email:         d.BuyerEmail,
		ServiceType:   d.Configuration.ServiceType,
		Assets:        strings.Join(d.Configuration.Assets, ", "),
		AddOns:        strings.Join(d.AddOns, ", "),
		Requirements:  d.Configuration.Requirements,
		PageCount:     d.Configuration.PageCount,
		ProductCount:  d.Configuration.ProductCount,
		PaymentStatus: string(n.Status),
		Reference:     n.Reference,
		SubmittedAt:   now.UTC().Format(time.RFC3339),
	}
	if d.Plan != nil {
		rec.Plan = d.Plan.Name
	}
	return rec
}
