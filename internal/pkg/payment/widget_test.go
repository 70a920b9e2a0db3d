package payment

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

var testConfig = WidgetConfig{PublicKey: "pk_test_123", ScriptURL: "https://widget.example/inline.js", SettlementCurrency: "NGN"}

func paidDraft(t *testing.T, region string, key catalog.PlanKey, addOns ...string) (*checkout.Draft, checkout.Quote) {
	t.Helper()
	entry, err := catalog.Lookup(region)
	require.NoError(t, err)
	plan, ok := entry.Plan(key)
	require.True(t, ok)
	d := &checkout.Draft{Plan: &plan, Region: region, AddOns: addOns, BuyerName: "Ada", BuyerEmail: "ada@example.com"}
	return d, checkout.ComputeQuote(d, entry)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(8400000), ToMinorUnits(84000))
	assert.Equal(t, int64(5880), ToMinorUnits(49*1.2))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestNewReferenceIsNumeric(t *testing.T) {
	numeric := regexp.MustCompile(`^[0-9]{12}$`)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ref, err := NewReference()
		require.NoError(t, err)
		assert.Regexp(t, numeric, ref)
		seen[ref] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNewWidgetRequestSameCurrency(t *testing.T) {
	d, q := paidDraft(t, "Nigeria", catalog.PlanPro, "seo", "analytics")

	req, err := NewWidgetRequest(d, q, testConfig)
	require.NoError(t, err)

	assert.Equal(t, int64(8400000), req.AmountMinor)
	assert.Equal(t, "NGN", req.Currency)
	assert.Equal(t, "ada@example.com", req.Email)
	assert.Equal(t, "PLN_ng_pro_monthly", req.PlanCode)
	assert.NotEmpty(t, req.Reference)
	assert.Empty(t, req.ConversionNotice)
}

func TestNewWidgetRequestPassesForeignAmountThrough(t *testing.T) {
	d, q := paidDraft(t, "USA", catalog.PlanBasic)

	req, err := NewWidgetRequest(d, q, testConfig)
	require.NoError(t, err)

	// 1:1 passthrough, no exchange rate applied
	assert.Equal(t, int64(4900), req.AmountMinor)
	assert.Equal(t, "NGN", req.Currency)
	assert.Equal(t, "USD", req.DisplayCurrency)
	assert.Contains(t, req.ConversionNotice, "USD")
	assert.Contains(t, req.ConversionNotice, "NGN")
	assert.Contains(t, req.ConversionNotice, "$49.00")
}

func TestNewWidgetRequestErrors(t *testing.T) {
	custom, cq := paidDraft(t, "USA", catalog.PlanCustom)
	_, err := NewWidgetRequest(custom, cq, testConfig)
	assert.True(t, errors.Is(err, ErrQuoteOnly))

	d, q := paidDraft(t, "UK", catalog.PlanBasic)
	_, err = NewWidgetRequest(d, q, WidgetConfig{})
	assert.True(t, errors.Is(err, ErrNotConfigured))

	d.BuyerEmail = ""
	_, err = NewWidgetRequest(d, q, testConfig)
	assert.True(t, errors.Is(err, ErrMissingBuyer))

	_, err = NewWidgetRequest(&checkout.Draft{}, checkout.Quote{}, testConfig)
	assert.True(t, errors.Is(err, checkout.ErrNoPlanSelected))
}

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		in         string
		want       Outcome
		wantStatus checkout.PaymentStatus
		hasStatus  bool
	}{
		{in: "success", want: OutcomeSuccess, wantStatus: checkout.PaymentSuccessful, hasStatus: true},
		{in: " Closed ", want: OutcomeClosed, wantStatus: checkout.PaymentFailed, hasStatus: true},
		{in: "unavailable", want: OutcomeUnavailable, hasStatus: false},
	}
	for _, tt := range tests {
		got, err := ParseOutcome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		status, ok := got.PaymentStatus()
		assert.Equal(t, tt.hasStatus, ok)
		assert.Equal(t, tt.wantStatus, status)
	}

	_, err := ParseOutcome("refunded")
	assert.True(t, errors.Is(err, ErrUnknownOutcome))
}
