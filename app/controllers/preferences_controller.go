package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/prefs"
)

// HandleSetRegion stores the region choice. A purchase already in progress
// keeps the region it was started in.
func HandleSetRegion(c *fiber.Ctx) error {
	back := redirectBack(c)
	region, err := prefs.WriteRegion(c, c.FormValue("region"))
	if err != nil {
		return flashError(c, "That region is not available.", back)
	}
	appstate.Get(c).Region = region
	return c.Redirect(back, fiber.StatusSeeOther)
}

// HandleSetTheme stores the requested theme, or flips the current one when
// none is given.
func HandleSetTheme(c *fiber.Ctx) error {
	back := redirectBack(c)
	state := appstate.Get(c)

	requested := c.FormValue("theme")
	if requested == "" {
		requested = prefs.Toggle(state.Theme)
	}
	theme, err := prefs.WriteTheme(c, requested)
	if err != nil {
		return flashError(c, "Unknown theme.", back)
	}
	state.Theme = theme
	return c.Redirect(back, fiber.StatusSeeOther)
}

func HandleMenuToggle(c *fiber.Ctx) error {
	state := appstate.Get(c)
	state.MenuOpen = !state.MenuOpen
	if err := appstate.Save(c); err != nil {
		log.Errorf("[Preferences] Could not save menu state: %v", err)
	}
	return c.Redirect(redirectBack(c), fiber.StatusSeeOther)
}
