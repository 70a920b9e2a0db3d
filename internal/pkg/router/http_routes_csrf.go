package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/ManuelReschke/SiteForge/app/controllers"
	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return h.opts.DisableCSRF || strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Pages
	group.Get("/", controllers.HandleStart)
	group.Get("/pricing", controllers.HandlePricing)
	group.Get("/faq", controllers.HandleFAQ)
	group.Get("/about", controllers.HandleAbout)
	group.Get("/contact", controllers.HandleContact)

	// Preferences
	group.Post("/preferences/region", controllers.HandleSetRegion)
	group.Post("/preferences/theme", controllers.HandleSetTheme)
	group.Post("/menu/toggle", controllers.HandleMenuToggle)

	// Purchase funnel
	group.Get("/checkout", controllers.HandleCheckoutShow)
	group.Post("/checkout/select/:plan", controllers.HandleCheckoutSelect)
	group.Post("/checkout/configure", controllers.HandleCheckoutConfigure)
	group.Post("/checkout/cancel", controllers.HandleCheckoutCancel)
	group.Post("/checkout/back", controllers.HandleCheckoutBack)
	group.Post("/checkout/buyer", controllers.HandleCheckoutBuyer)
	group.Post("/checkout/payment/callback", controllers.HandleCheckoutPaymentCallback)
	group.Post("/checkout/return", controllers.HandleCheckoutReturn)
}
