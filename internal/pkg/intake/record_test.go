package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

func testNotification(t *testing.T) checkout.Notification {
	t.Helper()
	entry, err := catalog.Lookup("Nigeria")
	if err != nil {
		t.Fatal(err)
	}
	plan, _ := entry.Plan(catalog.PlanPro)
	d := checkout.Draft{
		ID:     "draft-1",
		Plan:   &plan,
		Region: "Nigeria",
		Configuration: checkout.Configuration{
			ServiceType:  "ecommerce",
			Assets:       []string{"copy", "logo"},
			Requirements: "Sell shoes",
			PageCount:    5,
			ProductCount: 40,
		},
		AddOns:        []string{"analytics", "seo"},
		PaymentStatus: checkout.PaymentSuccessful,
		BuyerName:     "Ada Obi",
		BuyerEmail:    "ada@example.com",
		Reference:     "000123456789",
	}
	return checkout.Notification{
		Draft:     d,
		Quote:     checkout.ComputeQuote(&d, entry),
		Status:    checkout.PaymentSuccessful,
		Reference: d.Reference,
	}
}

func TestNewRecordFlattensDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.FixedZone("WAT", 3600))
	rec := NewRecord(testNotification(t), now)

	assert.Equal(t, "draft-1", rec.DraftID)
	assert.Equal(t, "Pro", rec.Plan)
	assert.Equal(t, "Nigeria", rec.Region)
	assert.Equal(t, "NGN", rec.Currency)
	assert.InDelta(t, 60000.0, rec.BasePrice, 1e-9)
	assert.InDelta(t, 84000.0, rec.Total, 1e-9)
	assert.Equal(t, "copy, logo", rec.Assets)
	assert.Equal(t, "analytics, seo", rec.AddOns)
	assert.Equal(t, 40, rec.ProductCount)
	assert.Equal(t, "successful", rec.PaymentStatus)
	assert.Equal(t, "000123456789", rec.Reference)
	assert.Equal(t, "2026-03-01T09:30:00Z", rec.SubmittedAt)
}

func TestNewRecordWithoutPlan(t *testing.T) {
	rec := NewRecord(checkout.Notification{Status: checkout.PaymentRequested}, time.Now())
	assert.Empty(t, rec.Plan)
	assert.Equal(t, "requested", rec.PaymentStatus)
	assert.Empty(t, rec.AddOns)
}
