package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

// AppStateMiddleware loads the visitor state for every page request. The
// funnel options wire the intake notifier and once-guard into every restored
// funnel.
func AppStateMiddleware(opts ...checkout.FunnelOption) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The JSON API is stateless; skip the session lookup.
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Next()
		}
		appstate.Set(c, appstate.Load(c, opts...))
		return c.Next()
	}
}
