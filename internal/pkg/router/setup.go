package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Options configure the routers. FunnelOptions are applied to every funnel
// restored from a session.
type Options struct {
	FunnelOptions []checkout.FunnelOption
	DisableCSRF   bool
}

func InstallRouter(app *fiber.App, opts Options) {
	// HttpRouter first: it initializes the session store and the app state
	// middleware the page routes depend on.
	setup(app, NewHttpRouter(opts), NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
