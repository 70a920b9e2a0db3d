package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/metrics"
)

var (
	ErrNoDraft              = errors.New("no purchase in progress")
	ErrNoPlanSelected       = errors.New("no plan selected")
	ErrBuyerDetailsMissing  = errors.New("buyer name and a valid email are required")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrQuoteOnlyPlan        = errors.New("plan has no fixed price")
	ErrPricedPlan           = errors.New("plan has a fixed price and must be paid")
)

var validate = validator.New()

// Notification is handed to the Notifier when a terminal outcome should be
// copied to the intake relay.
type Notification struct {
	Draft     Draft
	Quote     Quote
	Status    PaymentStatus
	Reference string
}

// Notifier delivers notifications fire-and-forget. Implementations must not
// block the caller on network I/O.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// OnceGuard claims a key at most once across requests and processes.
type OnceGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
}

type FunnelOption func(*Funnel)

func WithNotifier(n Notifier) FunnelOption {
	return func(f *Funnel) { f.notifier = n }
}

func WithOnceGuard(g OnceGuard) FunnelOption {
	return func(f *Funnel) { f.guard = g }
}

func WithClock(now func() time.Time) FunnelOption {
	return func(f *Funnel) { f.now = now }
}

// Funnel is the state container of the purchase flow: the page router plus
// the draft it guards.
type Funnel struct {
	router   *Router
	draft    *Draft
	notifier Notifier
	guard    OnceGuard
	now      func() time.Time
}

func NewFunnel(opts ...FunnelOption) *Funnel {
	f := &Funnel{
		router: NewRouter(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Funnel) Step() Step {
	return f.router.Step()
}

// Draft returns the current draft or nil.
func (f *Funnel) Draft() *Draft {
	return f.draft
}

// Quote prices the current draft in its region.
func (f *Funnel) Quote() Quote {
	if f.draft == nil {
		return Quote{}
	}
	region, _ := catalog.Lookup(f.draft.Region)
	return ComputeQuote(f.draft, region)
}

// StartPurchase opens a new draft for plan and moves to the configuration step.
func (f *Funnel) StartPurchase(plan catalog.Plan, region string) error {
	if !f.router.Can(EventSelect) {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, EventSelect, f.router.Step())
	}
	f.draft = &Draft{
		ID:            uuid.NewString(),
		Plan:          &plan,
		Region:        region,
		AddOns:        []string{},
		PaymentStatus: PaymentPending,
		CreatedAt:     f.now().UTC(),
	}
	_, err := f.router.Fire(EventSelect)
	return err
}

// UpdateConfiguration merges u into the draft (last write wins). The merged
// result is validated before it is committed.
func (f *Funnel) UpdateConfiguration(u ConfigurationUpdate) error {
	if f.router.Step() != StepConfiguring {
		return fmt.Errorf("%w: configuration is only editable while configuring", ErrInvalidTransition)
	}
	if f.draft == nil {
		return ErrNoDraft
	}
	merged := f.draft.Configuration
	merged.merge(u)
	if err := validate.Struct(merged); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	f.draft.Configuration = merged
	return nil
}

// SetAddOns replaces the selected add-ons. Unknown keys are ignored.
func (f *Funnel) SetAddOns(addOns []string) error {
	if f.router.Step() != StepConfiguring {
		return fmt.Errorf("%w: add-ons are only editable while configuring", ErrInvalidTransition)
	}
	if f.draft == nil {
		return ErrNoDraft
	}
	if f.draft.IsQuoteOnly() {
		f.draft.AddOns = []string{}
		return nil
	}
	f.draft.AddOns = normalizeSet(addOns, AvailableAddOns)
	return nil
}

// Submit moves to the payment step. A draft without a plan is rejected.
func (f *Funnel) Submit() error {
	if f.router.Step() == StepConfiguring && (f.draft == nil || f.draft.Plan == nil) {
		return ErrNoPlanSelected
	}
	_, err := f.router.Fire(EventSubmit)
	return err
}

// Cancel abandons the configuration step and discards the draft.
func (f *Funnel) Cancel() error {
	if _, err := f.router.Fire(EventCancel); err != nil {
		return err
	}
	f.draft = nil
	return nil
}

// Back returns from the payment step to the configuration step.
func (f *Funnel) Back() error {
	_, err := f.router.Fire(EventBack)
	return err
}

// Return leaves the confirmation page and discards the draft.
func (f *Funnel) Return() error {
	if _, err := f.router.Fire(EventReturn); err != nil {
		return err
	}
	f.draft = nil
	return nil
}

type buyerInput struct {
	Name  string `validate:"required,max=120"`
	Email string `validate:"required,email,max=254"`
}

// SetBuyer records buyer identity on the payment step. Missing or malformed
// fields leave the draft untouched.
func (f *Funnel) SetBuyer(name, email string) error {
	if f.router.Step() != StepPaying {
		return fmt.Errorf("%w: buyer details are collected on the payment step", ErrInvalidTransition)
	}
	if f.draft == nil {
		return ErrNoDraft
	}
	in := buyerInput{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrBuyerDetailsMissing, err)
	}
	f.draft.BuyerName = in.Name
	f.draft.BuyerEmail = in.Email
	return nil
}

// RequestQuote finishes a quote-only purchase without the payment widget.
func (f *Funnel) RequestQuote(ctx context.Context) error {
	return f.RecordPaymentOutcome(ctx, PaymentRequested, "")
}

// RecordPaymentOutcome commits a terminal payment status, moves to the
// confirmation step and, for successful and requested outcomes, notifies the
// intake relay at most once per draft. Those outcomes need buyer details.
// Replaying the already recorded outcome is a no-op.
func (f *Funnel) RecordPaymentOutcome(ctx context.Context, status PaymentStatus, reference string) error {
	d := f.draft
	if d == nil {
		return ErrNoDraft
	}
	if d.Plan == nil {
		return ErrNoPlanSelected
	}
	if d.PaymentStatus == status && f.router.Step() == StepConfirmed {
		return nil
	}
	if !d.PaymentStatus.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentStatus, d.PaymentStatus, status)
	}
	switch {
	case status == PaymentRequested && !d.Plan.IsQuoteOnly():
		return ErrPricedPlan
	case status == PaymentSuccessful && d.Plan.IsQuoteOnly():
		return ErrQuoteOnlyPlan
	}
	if status.notifies() && f.router.Can(status.event()) && !d.HasBuyer() {
		return ErrBuyerDetailsMissing
	}
	if _, err := f.router.Fire(status.event()); err != nil {
		return err
	}

	d.PaymentStatus = status
	d.Reference = strings.TrimSpace(reference)
	metrics.PaymentOutcomes.WithLabelValues(string(status)).Inc()

	if status.notifies() {
		f.notifyOnce(ctx, status)
	}
	return nil
}

func (f *Funnel) notifyOnce(ctx context.Context, status PaymentStatus) {
	d := f.draft
	if d.Notified || f.notifier == nil {
		return
	}
	if f.guard != nil {
		claimed, err := f.guard.Claim(ctx, "intake:"+d.ID)
		if err != nil {
			// The draft flag still prevents a second send from this session.
			log.Warnf("[Checkout] Once-guard unavailable for draft %s: %v", d.ID, err)
		} else if !claimed {
			log.Infof("[Checkout] Intake notification for draft %s already sent", d.ID)
			d.Notified = true
			return
		}
	}
	d.Notified = true

	region, _ := catalog.Lookup(d.Region)
	f.notifier.Notify(ctx, Notification{
		Draft:     *d,
		Quote:     ComputeQuote(d, region),
		Status:    status,
		Reference: d.Reference,
	})
}
