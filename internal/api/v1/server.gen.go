// Package apiv1 provides primitives to interact with the openapi HTTP API.
package apiv1

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// PlanResponse defines model for PlanResponse.
type PlanResponse struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	FormattedPrice string   `json:"formatted_price"`
	Features       []string `json:"features"`
	BillingPlanID  string   `json:"billing_plan_id,omitempty"`
	QuoteOnly      bool     `json:"quote_only"`
}

// PricingResponse defines model for PricingResponse.
type PricingResponse struct {
	Region         string         `json:"region"`
	CurrencySymbol string         `json:"currency_symbol"`
	CurrencyCode   string         `json:"currency_code"`
	Plans          []PlanResponse `json:"plans"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	Region string   `json:"region" validate:"required,max=64"`
	Plan   string   `json:"plan" validate:"required,max=32"`
	AddOns []string `json:"add_ons" validate:"max=16"`
}

// QuoteResponse defines model for QuoteResponse.
type QuoteResponse struct {
	Region         string   `json:"region"`
	Plan           string   `json:"plan"`
	CurrencySymbol string   `json:"currency_symbol"`
	CurrencyCode   string   `json:"currency_code"`
	AddOns         []string `json:"add_ons"`
	Base           float64  `json:"base"`
	AddOnUnit      float64  `json:"add_on_unit"`
	AddOnTotal     float64  `json:"add_on_total"`
	Total          float64  `json:"total"`
	FormattedTotal string   `json:"formatted_total"`
	QuoteOnly      bool     `json:"quote_only"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Health check
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// Plans and prices for a region
	// (GET /pricing/{region})
	GetPricing(c *fiber.Ctx, region string) error
	// Price a plan with add-ons
	// (POST /quote)
	PostQuote(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

type MiddlewareFunc fiber.Handler

// GetPing operation middleware
func (siw *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return siw.Handler.GetPing(c)
}

// GetPricing operation middleware
func (siw *ServerInterfaceWrapper) GetPricing(c *fiber.Ctx) error {
	region, err := url.PathUnescape(c.Params("region"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Errorf("Invalid format for parameter region: %w", err).Error())
	}
	return siw.Handler.GetPricing(c, region)
}

// PostQuote operation middleware
func (siw *ServerInterfaceWrapper) PostQuote(c *fiber.Ctx) error {
	return siw.Handler.PostQuote(c)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	router.Get(options.BaseURL+"/ping", wrapper.GetPing)

	router.Get(options.BaseURL+"/pricing/:region", wrapper.GetPricing)

	router.Post(options.BaseURL+"/quote", wrapper.PostQuote)
}
