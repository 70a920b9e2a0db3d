package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/constants"
	"github.com/ManuelReschke/SiteForge/internal/pkg/payment"
	"github.com/ManuelReschke/SiteForge/internal/pkg/viewmodel"
)

var errInvalidCount = errors.New("invalid count")

// CheckoutDeps are the external collaborators of the checkout pages.
type CheckoutDeps struct {
	Widget   payment.WidgetConfig
	Verifier *payment.Verifier
}

var checkoutDeps CheckoutDeps

func InitializeCheckoutController(deps CheckoutDeps) {
	checkoutDeps = deps
}

// HandleCheckoutSelect starts a purchase for the plan in the visitor's region.
func HandleCheckoutSelect(c *fiber.Ctx) error {
	state := appstate.Get(c)

	key, ok := catalog.NormalizePlanKey(c.Params("plan"))
	if !ok {
		return flashError(c, "Please choose one of the listed plans.", constants.PricingRoute)
	}
	entry, err := catalog.Lookup(state.Region)
	if err != nil {
		return flashError(c, "No pricing is available for your region.", constants.PricingRoute)
	}
	plan, ok := entry.Plan(key)
	if !ok {
		return flashError(c, "That plan is not offered in "+entry.Region+".", constants.PricingRoute)
	}

	if err := state.Funnel.StartPurchase(plan, entry.Region); err != nil {
		if errors.Is(err, checkout.ErrInvalidTransition) {
			return flashError(c, "Please finish or cancel your current purchase first.", constants.CheckoutRoute)
		}
		return err
	}
	log.Infof("[Checkout] Draft %s started: %s / %s", state.Funnel.Draft().ID, entry.Region, plan.Name)
	return saveAndRedirect(c, constants.CheckoutRoute)
}

// HandleCheckoutShow renders whatever step the funnel is on.
func HandleCheckoutShow(c *fiber.Ctx) error {
	f := appstate.Get(c).Funnel
	d := f.Draft()

	switch f.Step() {
	case checkout.StepConfiguring:
		return render(c, "checkout/configure", layoutFor(c, "checkout", "Configure your website"), fiber.Map{
			"Configure": viewmodel.NewConfigure(d, f.Quote()),
		})
	case checkout.StepPaying:
		return render(c, "checkout/payment", layoutFor(c, "checkout", "Payment"), fiber.Map{
			"Payment": viewmodel.NewPayment(d, f.Quote(), checkoutDeps.Widget),
		})
	case checkout.StepConfirmed:
		return render(c, "checkout/confirm", layoutFor(c, "checkout", "Confirmation"), fiber.Map{
			"Confirm": viewmodel.NewConfirm(d, f.Quote()),
		})
	default:
		return c.Redirect(constants.PricingRoute, fiber.StatusSeeOther)
	}
}

// HandleCheckoutConfigure commits the configuration form. With action=update
// it only refreshes the running quote; otherwise it moves on to payment.
func HandleCheckoutConfigure(c *fiber.Ctx) error {
	f := appstate.Get(c).Funnel

	update, err := parseConfigurationForm(c)
	if err != nil {
		return flashError(c, "Please enter whole numbers for the page and product counts.", constants.CheckoutRoute)
	}
	if err := f.UpdateConfiguration(update); err != nil {
		return flashFunnelError(c, err)
	}
	if err := f.SetAddOns(formValues(c, "add_ons")); err != nil {
		return flashFunnelError(c, err)
	}

	if c.FormValue("action") == "update" {
		return saveAndRedirect(c, constants.CheckoutRoute)
	}
	if err := f.Submit(); err != nil {
		return flashFunnelError(c, err)
	}
	return saveAndRedirect(c, constants.CheckoutRoute)
}

func HandleCheckoutCancel(c *fiber.Ctx) error {
	if err := appstate.Get(c).Funnel.Cancel(); err != nil {
		return flashFunnelError(c, err)
	}
	return saveAndRedirect(c, constants.PricingRoute)
}

func HandleCheckoutBack(c *fiber.Ctx) error {
	if err := appstate.Get(c).Funnel.Back(); err != nil {
		return flashFunnelError(c, err)
	}
	return saveAndRedirect(c, constants.CheckoutRoute)
}

func HandleCheckoutReturn(c *fiber.Ctx) error {
	if err := appstate.Get(c).Funnel.Return(); err != nil {
		return flashFunnelError(c, err)
	}
	return saveAndRedirect(c, constants.HomeRoute)
}

// HandleCheckoutBuyer records buyer identity. Quote-only plans are finished
// right away as a quote request; priced plans go on to the payment widget.
func HandleCheckoutBuyer(c *fiber.Ctx) error {
	f := appstate.Get(c).Funnel

	if err := f.SetBuyer(c.FormValue("name"), c.FormValue("email")); err != nil {
		return flashFunnelError(c, err)
	}

	if f.Draft().IsQuoteOnly() {
		if err := f.RequestQuote(c.UserContext()); err != nil {
			return flashFunnelError(c, err)
		}
		log.Infof("[Checkout] Draft %s: quote requested", f.Draft().ID)
	}
	return saveAndRedirect(c, constants.CheckoutRoute)
}

// HandleCheckoutPaymentCallback receives the widget outcome posted by the
// payment page.
func HandleCheckoutPaymentCallback(c *fiber.Ctx) error {
	f := appstate.Get(c).Funnel

	outcome, err := payment.ParseOutcome(c.FormValue("outcome"))
	if err != nil {
		return flashError(c, "Unknown payment result.", constants.CheckoutRoute)
	}
	status, ok := outcome.PaymentStatus()
	if !ok {
		log.Warnf("[Checkout] Payment widget unavailable for draft %s", draftID(f))
		return flashError(c, "The payment service could not be reached. Please try again in a moment.", constants.CheckoutRoute)
	}

	reference := strings.TrimSpace(c.FormValue("reference"))
	if status == checkout.PaymentSuccessful && f.Step() == checkout.StepPaying {
		if reference == "" {
			return flashError(c, "The payment did not return a reference. Please try again.", constants.CheckoutRoute)
		}
		status = verifyPayment(c, f, reference)
	}

	if err := f.RecordPaymentOutcome(c.UserContext(), status, reference); err != nil {
		return flashFunnelError(c, err)
	}
	log.Infof("[Checkout] Draft %s: payment %s (ref %s)", draftID(f), status, reference)
	return saveAndRedirect(c, constants.CheckoutRoute)
}

// verifyPayment checks a success reference with the processor when a secret
// key is configured. Unverifiable payments are recorded as failed.
func verifyPayment(c *fiber.Ctx, f *checkout.Funnel, reference string) checkout.PaymentStatus {
	if checkoutDeps.Verifier == nil {
		return checkout.PaymentSuccessful
	}
	expected := payment.ToMinorUnits(f.Quote().Total)
	if _, err := checkoutDeps.Verifier.Verify(c.UserContext(), reference, expected); err != nil {
		log.Warnf("[Checkout] Payment %s for draft %s could not be verified: %v", reference, draftID(f), err)
		return checkout.PaymentFailed
	}
	return checkout.PaymentSuccessful
}

func parseConfigurationForm(c *fiber.Ctx) (checkout.ConfigurationUpdate, error) {
	serviceType := c.FormValue("service_type")
	requirements := c.FormValue("requirements")
	update := checkout.ConfigurationUpdate{
		ServiceType:  &serviceType,
		Assets:       formValues(c, "assets"),
		Requirements: &requirements,
	}
	if update.Assets == nil {
		update.Assets = []string{}
	}

	var err error
	if update.PageCount, err = parseCount(c.FormValue("page_count"), "page count"); err != nil {
		return update, err
	}
	if update.ProductCount, err = parseCount(c.FormValue("product_count"), "product count"); err != nil {
		return update, err
	}
	return update, nil
}

func parseCount(raw, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		zero := 0
		return &zero, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidCount, field, raw)
	}
	return &n, nil
}

// flashFunnelError turns a rejected funnel operation into a message on the
// step the visitor is actually on.
func flashFunnelError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkout.ErrNoPlanSelected):
		return flashError(c, "Please choose a plan first.", constants.PricingRoute)
	case errors.Is(err, checkout.ErrBuyerDetailsMissing):
		return flashError(c, "Please enter your name and a valid email address.", constants.CheckoutRoute)
	case errors.Is(err, checkout.ErrInvalidConfiguration):
		return flashError(c, "Some of your answers are not valid. Please check the form.", constants.CheckoutRoute)
	case errors.Is(err, checkout.ErrInvalidTransition), errors.Is(err, checkout.ErrInvalidPaymentStatus):
		log.Infof("[Checkout] Rejected: %v", err)
		return flashInfo(c, "That action is not available on this step.", constants.CheckoutRoute)
	case errors.Is(err, checkout.ErrNoDraft):
		return flashInfo(c, "There is no purchase in progress.", constants.PricingRoute)
	case errors.Is(err, checkout.ErrPricedPlan), errors.Is(err, checkout.ErrQuoteOnlyPlan):
		return flashError(c, "That action does not apply to the selected plan.", constants.CheckoutRoute)
	}
	log.Errorf("[Checkout] Unexpected error: %v", err)
	return flashError(c, "Something went wrong. Please try again.", constants.CheckoutRoute)
}

func saveAndRedirect(c *fiber.Ctx, to string) error {
	if err := appstate.Save(c); err != nil {
		log.Errorf("[Checkout] Could not save session: %v", err)
		return flashError(c, "Your progress could not be saved. Please try again.", to)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

func draftID(f *checkout.Funnel) string {
	if d := f.Draft(); d != nil {
		return d.ID
	}
	return "-"
}
