package appstate

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/prefs"
	"github.com/ManuelReschke/SiteForge/internal/pkg/session"
)

// Session keys and the Locals key used by the middleware.
const (
	KeyFunnel   = "funnel"
	KeyMenuOpen = "menu_open"
	localsKey   = "APP_STATE"
)

// State is everything one visitor session owns. It is loaded once per request
// and written back explicitly with Save.
type State struct {
	Region   string
	Theme    string
	MenuOpen bool
	Funnel   *checkout.Funnel
}

// Load builds the state from the preference cookies and the session.
func Load(c *fiber.Ctx, opts ...checkout.FunnelOption) *State {
	p := prefs.Read(c)
	menuOpen, _ := strconv.ParseBool(session.GetSessionValue(c, KeyMenuOpen))
	return &State{
		Region:   p.Region,
		Theme:    p.Theme,
		MenuOpen: menuOpen,
		Funnel:   checkout.UnmarshalSnapshot(session.GetSessionValue(c, KeyFunnel), opts...),
	}
}

func Set(c *fiber.Ctx, s *State) {
	c.Locals(localsKey, s)
}

// Get returns the request state. Without the middleware it returns a fresh
// default state so handlers never see nil.
func Get(c *fiber.Ctx) *State {
	if s, ok := c.Locals(localsKey).(*State); ok && s != nil {
		return s
	}
	p := prefs.Default()
	s := &State{Region: p.Region, Theme: p.Theme, Funnel: checkout.NewFunnel()}
	Set(c, s)
	return s
}

// Save persists the funnel snapshot and the menu flag to the session.
func Save(c *fiber.Ctx) error {
	s := Get(c)
	snapshot, err := s.Funnel.MarshalSnapshot()
	if err != nil {
		return err
	}
	return session.SetSessionValues(c, map[string]string{
		KeyFunnel:   snapshot,
		KeyMenuOpen: strconv.FormatBool(s.MenuOpen),
	})
}
