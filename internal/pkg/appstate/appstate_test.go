package appstate

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/session"
)

func TestGetWithoutMiddlewareReturnsDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		s := Get(c)
		assert.Equal(t, catalog.DefaultRegion, s.Region)
		assert.Equal(t, "light", s.Theme)
		assert.Equal(t, checkout.StepHome, s.Funnel.Step())
		assert.Same(t, s, Get(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	session.SetSessionStore(fibersession.New(fibersession.Config{KeyLookup: "cookie:session_id"}))
	t.Cleanup(func() { session.SetSessionStore(nil) })

	app := fiber.New()
	app.Post("/start", func(c *fiber.Ctx) error {
		s := Load(c)
		Set(c, s)
		entry, _ := catalog.Lookup(s.Region)
		plan, _ := entry.Plan(catalog.PlanBasic)
		require.NoError(t, s.Funnel.StartPurchase(plan, s.Region))
		s.MenuOpen = true
		return Save(c)
	})
	app.Get("/state", func(c *fiber.Ctx) error {
		s := Load(c)
		menu := "closed"
		if s.MenuOpen {
			menu = "open"
		}
		return c.SendString(string(s.Funnel.Step()) + "/" + menu + "/" + s.Funnel.Draft().Plan.Name)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/start", nil))
	require.NoError(t, err)
	cookie := strings.Split(resp.Header.Get("Set-Cookie"), ";")[0]
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest("GET", "/state", nil)
	req.Header.Set("Cookie", cookie+"; region=Ghana")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "configuring/open/Basic", string(body))
}
