package checkout

import "errors"

// ErrInvalidPaymentStatus is returned for a payment status change that is not
// pending -> terminal.
var ErrInvalidPaymentStatus = errors.New("invalid payment status transition")

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	// PaymentRequested is reserved for the quote-only tier.
	PaymentRequested PaymentStatus = "requested"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSuccessful, PaymentFailed, PaymentRequested:
		return true
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentSuccessful || s == PaymentFailed || s == PaymentRequested
}

// CanTransition only allows pending to move into one of the terminal states.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return s == PaymentPending && to.IsTerminal()
}

// notifies reports whether the outcome is copied to the intake relay.
// Failed payments are deliberately not relayed.
func (s PaymentStatus) notifies() bool {
	return s == PaymentSuccessful || s == PaymentRequested
}

func (s PaymentStatus) event() Event {
	switch s {
	case PaymentSuccessful:
		return EventAuthorizeSuccess
	case PaymentFailed:
		return EventAuthorizeFailure
	default:
		return EventRequestQuote
	}
}
