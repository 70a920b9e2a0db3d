package viewmodel

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/content"
)

type Layout struct {
	Page     string
	Title    string
	Region   string
	Regions  []string
	Theme    string
	MenuOpen bool
	IsError  bool
	Msg      fiber.Map
	CSRF     string
	IsDev    bool
	Year     int
	Path     string
}

type NavLink struct {
	Label  string
	Href   string
	Active bool
}

func (l Layout) Nav() []NavLink {
	links := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Pricing", Href: "/pricing"},
		{Label: "FAQ", Href: "/faq"},
		{Label: "About", Href: "/about"},
		{Label: "Contact", Href: "/contact"},
	}
	for i := range links {
		links[i].Active = links[i].Href == l.Path
	}
	return links
}

func NewLayout(page, title string) Layout {
	return Layout{
		Page:    page,
		Title:   title,
		Regions: catalog.Regions(),
		Year:    time.Now().Year(),
	}
}

// Home is the landing page model.
type Home struct {
	Banners      []content.Banner
	Features     []content.Feature
	Testimonials []content.Testimonial
	Pricing      PricingTable
}

func NewHome(region string) Home {
	return Home{
		Banners:      content.Banners(),
		Features:     content.Features(),
		Testimonials: content.Testimonials(),
		Pricing:      NewPricingTable(region),
	}
}
