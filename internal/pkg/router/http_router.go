package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/middleware"
	"github.com/ManuelReschke/SiteForge/internal/pkg/session"
)

type HttpRouter struct {
	opts Options
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	if session.GetSessionStore() == nil {
		session.NewSessionStore()
	}

	h.registerPublicRoutes(app)

	// Visitor state for every page and form route
	app.Use(middleware.AppStateMiddleware(h.opts.FunnelOptions...))

	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(opts Options) *HttpRouter {
	return &HttpRouter{opts: opts}
}
