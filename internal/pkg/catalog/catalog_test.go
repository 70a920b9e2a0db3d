package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownRegion(t *testing.T) {
	entry, err := Lookup("Nigeria")
	require.NoError(t, err)

	assert.Equal(t, "NGN", entry.CurrencyCode)
	assert.Equal(t, "₦", entry.CurrencySymbol)

	pro, ok := entry.Plan(PlanPro)
	require.True(t, ok)
	assert.Equal(t, "Pro", pro.Name)
	assert.Equal(t, 60000.0, pro.Price)
	assert.NotEmpty(t, pro.BillingPlanID)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	entry, err := Lookup("  usa ")
	require.NoError(t, err)
	assert.Equal(t, "USA", entry.Region)
}

func TestLookupUnknownRegion(t *testing.T) {
	_, err := Lookup("Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegionNotFound))
	assert.False(t, IsKnownRegion("Atlantis"))
}

func TestCustomPlanIsQuoteOnly(t *testing.T) {
	for _, region := range Regions() {
		entry, err := Lookup(region)
		require.NoError(t, err)

		custom, ok := entry.Plan(PlanCustom)
		require.True(t, ok, region)
		assert.True(t, custom.IsQuoteOnly())
		assert.Zero(t, custom.Price)
		assert.Empty(t, custom.BillingPlanID)

		basic, _ := entry.Plan(PlanBasic)
		assert.False(t, basic.IsQuoteOnly())
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	entry, err := Lookup("UK")
	require.NoError(t, err)

	p := entry.Plans[PlanBasic]
	p.Features[0] = "mutated"
	entry.Plans[PlanBasic] = Plan{Name: "hijacked"}

	again, err := Lookup("UK")
	require.NoError(t, err)
	basic, _ := again.Plan(PlanBasic)
	assert.Equal(t, "Basic", basic.Name)
	assert.NotEqual(t, "mutated", basic.Features[0])
}

func TestOrderedPlans(t *testing.T) {
	entry, err := Lookup("Ghana")
	require.NoError(t, err)

	plans := entry.OrderedPlans()
	require.Len(t, plans, 4)
	assert.Equal(t, PlanBasic, plans[0].Key)
	assert.Equal(t, PlanCustom, plans[3].Key)
}

func TestNormalizePlanKey(t *testing.T) {
	tests := []struct {
		in     string
		want   PlanKey
		wantOK bool
	}{
		{in: "basic", want: PlanBasic, wantOK: true},
		{in: " PRO ", want: PlanPro, wantOK: true},
		{in: "Custom", want: PlanCustom, wantOK: true},
		{in: "premium", want: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := NormalizePlanKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("NormalizePlanKey(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
