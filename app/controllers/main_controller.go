package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/content"
	"github.com/ManuelReschke/SiteForge/internal/pkg/viewmodel"
)

func HandleStart(c *fiber.Ctx) error {
	state := appstate.Get(c)
	home := viewmodel.NewHome(state.Region)
	home.Pricing.CSRF = csrfToken(c)
	return render(c, "pages/home", layoutFor(c, "home", "Websites for growing businesses"), fiber.Map{
		"Home": home,
	})
}

func HandlePricing(c *fiber.Ctx) error {
	state := appstate.Get(c)
	table := viewmodel.NewPricingTable(state.Region)
	table.CSRF = csrfToken(c)
	return render(c, "pages/pricing", layoutFor(c, "pricing", "Pricing"), fiber.Map{
		"Pricing": table,
	})
}

func HandleFAQ(c *fiber.Ctx) error {
	return render(c, "pages/faq", layoutFor(c, "faq", "Frequently asked questions"), fiber.Map{
		"FAQ": content.FAQ(),
	})
}

func HandleAbout(c *fiber.Ctx) error {
	return render(c, "pages/about", layoutFor(c, "about", "About us"), fiber.Map{
		"Team":     content.Team(),
		"Features": content.Features(),
	})
}

func HandleContact(c *fiber.Ctx) error {
	return render(c, "pages/contact", layoutFor(c, "contact", "Contact"), nil)
}
