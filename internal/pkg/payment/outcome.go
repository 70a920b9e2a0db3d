package payment

import (
	"errors"
	"strings"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

var ErrUnknownOutcome = errors.New("unknown payment widget outcome")

// Outcome is what the hosted widget reported back.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	// OutcomeClosed means the buyer closed the widget without paying.
	OutcomeClosed Outcome = "closed"
	// OutcomeUnavailable means the widget script could not be loaded.
	OutcomeUnavailable Outcome = "unavailable"
)

func ParseOutcome(raw string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(raw))); o {
	case OutcomeSuccess, OutcomeClosed, OutcomeUnavailable:
		return o, nil
	default:
		return "", ErrUnknownOutcome
	}
}

// PaymentStatus maps the outcome onto the draft's payment status. Unavailable
// has no status: the buyer stays on the payment step.
func (o Outcome) PaymentStatus() (checkout.PaymentStatus, bool) {
	switch o {
	case OutcomeSuccess:
		return checkout.PaymentSuccessful, true
	case OutcomeClosed:
		return checkout.PaymentFailed, true
	default:
		return "", false
	}
}
