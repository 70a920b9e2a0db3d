package router

import (
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go)
	app.Get("/docs/api", func(c *fiber.Ctx) error {
		return c.Redirect("/docs/api/v1", fiber.StatusMovedPermanently)
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
}
