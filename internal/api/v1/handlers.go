package apiv1

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

var validate = validator.New()

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetPricing returns the plans of a region. Unknown regions answer 404.
func (s *APIServer) GetPricing(c *fiber.Ctx, region string) error {
	entry, err := catalog.Lookup(region)
	if err != nil {
		return notFoundRegion(c, region, err)
	}

	resp := PricingResponse{
		Region:         entry.Region,
		CurrencySymbol: entry.CurrencySymbol,
		CurrencyCode:   entry.CurrencyCode,
	}
	for _, p := range entry.OrderedPlans() {
		resp.Plans = append(resp.Plans, PlanResponse{
			Key:            string(p.Key),
			Name:           p.Name,
			Price:          p.Price,
			FormattedPrice: checkout.FormatAmount(entry.CurrencySymbol, p.Price),
			Features:       p.Features,
			BillingPlanID:  p.BillingPlanID,
			QuoteOnly:      p.IsQuoteOnly(),
		})
	}
	return c.JSON(resp)
}

// PostQuote prices a plan with add-ons without touching any visitor state.
func (s *APIServer) PostQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "request body must be a JSON quote request")
	}
	req.Region = strings.TrimSpace(req.Region)
	req.Plan = strings.TrimSpace(req.Plan)
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	entry, err := catalog.Lookup(req.Region)
	if err != nil {
		return notFoundRegion(c, req.Region, err)
	}
	key, ok := catalog.NormalizePlanKey(req.Plan)
	if !ok {
		return badRequest(c, "unknown plan: "+req.Plan)
	}
	plan, ok := entry.Plan(key)
	if !ok {
		return badRequest(c, "plan not offered in "+entry.Region)
	}

	addOns := checkout.NormalizeAddOns(req.AddOns)
	if plan.IsQuoteOnly() {
		addOns = []string{}
	}
	q := checkout.ComputeQuote(&checkout.Draft{Plan: &plan, Region: entry.Region, AddOns: addOns}, entry)

	return c.JSON(QuoteResponse{
		Region:         entry.Region,
		Plan:           plan.Name,
		CurrencySymbol: q.CurrencySymbol,
		CurrencyCode:   q.CurrencyCode,
		AddOns:         addOns,
		Base:           q.Base,
		AddOnUnit:      q.AddOnUnit,
		AddOnTotal:     q.AddOnTotal,
		Total:          q.Total,
		FormattedTotal: checkout.FormatAmount(q.CurrencySymbol, q.Total),
		QuoteOnly:      plan.IsQuoteOnly(),
	})
}

func notFoundRegion(c *fiber.Ctx, region string, err error) error {
	if errors.Is(err, catalog.ErrRegionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "no pricing available for region " + region,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal", Message: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "bad_request", Message: msg})
}
