package payment

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
)

const (
	defaultScriptURL          = "https://js.paystack.co/v1/inline.js"
	defaultSettlementCurrency = "NGN"
	referenceDigits           = 12
)

var (
	ErrQuoteOnly     = errors.New("quote-only plans are not charged through the widget")
	ErrNothingToPay  = errors.New("amount due must be greater than zero")
	ErrMissingBuyer  = errors.New("buyer email is required before payment")
	ErrNotConfigured = errors.New("payment widget is not configured")
)

// WidgetConfig describes the hosted payment widget loaded in the browser.
type WidgetConfig struct {
	PublicKey          string
	ScriptURL          string
	SettlementCurrency string
}

func NewWidgetConfigFromEnv() WidgetConfig {
	return WidgetConfig{
		PublicKey:          strings.TrimSpace(env.GetEnv("PAYMENT_PUBLIC_KEY", "")),
		ScriptURL:          strings.TrimSpace(env.GetEnv("PAYMENT_SCRIPT_URL", defaultScriptURL)),
		SettlementCurrency: strings.ToUpper(strings.TrimSpace(env.GetEnv("SETTLEMENT_CURRENCY", defaultSettlementCurrency))),
	}
}

// WidgetRequest holds everything the widget is opened with.
type WidgetRequest struct {
	PublicKey        string `json:"key"`
	ScriptURL        string `json:"-"`
	Email            string `json:"email"`
	AmountMinor      int64  `json:"amount"`
	Currency         string `json:"currency"`
	Reference        string `json:"ref"`
	PlanCode         string `json:"plan,omitempty"`
	DisplayCurrency  string `json:"-"`
	ConversionNotice string `json:"-"`
}

// ToMinorUnits converts a major-unit amount to the smallest currency unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewReference returns a random numeric transaction reference. References are
// not idempotency keys; a retried payment gets a new one.
func NewReference() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(referenceDigits), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", referenceDigits, n), nil
}

// NewWidgetRequest prepares a widget invocation for the draft. All amounts are
// charged in the settlement currency at face value: no exchange rate is
// applied, only a notice is produced when the display currency differs.
func NewWidgetRequest(d *checkout.Draft, q checkout.Quote, cfg WidgetConfig) (WidgetRequest, error) {
	if cfg.PublicKey == "" {
		return WidgetRequest{}, ErrNotConfigured
	}
	if d == nil || d.Plan == nil {
		return WidgetRequest{}, checkout.ErrNoPlanSelected
	}
	if d.Plan.IsQuoteOnly() {
		return WidgetRequest{}, ErrQuoteOnly
	}
	if strings.TrimSpace(d.BuyerEmail) == "" {
		return WidgetRequest{}, ErrMissingBuyer
	}
	amount := ToMinorUnits(q.Total)
	if amount <= 0 {
		return WidgetRequest{}, ErrNothingToPay
	}

	ref, err := NewReference()
	if err != nil {
		return WidgetRequest{}, fmt.Errorf("generate payment reference: %w", err)
	}

	req := WidgetRequest{
		PublicKey:       cfg.PublicKey,
		ScriptURL:       cfg.ScriptURL,
		Email:           d.BuyerEmail,
		AmountMinor:     amount,
		Currency:        cfg.SettlementCurrency,
		Reference:       ref,
		PlanCode:        d.Plan.BillingPlanID,
		DisplayCurrency: q.CurrencyCode,
	}
	req.ConversionNotice = ConversionNotice(q, cfg.SettlementCurrency)
	return req, nil
}

// ConversionNotice explains the settlement currency to the buyer. It is empty
// when display and settlement currency match.
func ConversionNotice(q checkout.Quote, settlement string) string {
	if q.CurrencyCode == "" || strings.EqualFold(q.CurrencyCode, settlement) {
		return ""
	}
	return fmt.Sprintf(
		"Prices are shown in %s. Your payment of %s will be processed in %s at the same face value.",
		q.CurrencyCode,
		checkout.FormatAmount(q.CurrencySymbol, q.Total),
		settlement,
	)
}
