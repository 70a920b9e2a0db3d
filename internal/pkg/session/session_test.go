package session

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValuesRoundTrip(t *testing.T) {
	SetSessionStore(session.New(session.Config{KeyLookup: "cookie:session_id"}))
	t.Cleanup(func() { SetSessionStore(nil) })

	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		return SetSessionValues(c, map[string]string{"region": "Ghana", "theme": "dark"})
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		return c.SendString(GetSessionValue(c, "region") + "/" + GetSessionValue(c, "theme"))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/set", nil))
	require.NoError(t, err)
	cookie := resp.Header.Get("Set-Cookie")
	require.True(t, strings.HasPrefix(cookie, "session_id="))

	req := httptest.NewRequest("GET", "/get", nil)
	req.Header.Set("Cookie", strings.Split(cookie, ";")[0])
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Ghana/dark", string(body))
}

func TestSessionHelpersWithoutStore(t *testing.T) {
	SetSessionStore(nil)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Error(t, SetSessionValue(c, "k", "v"))
		assert.Empty(t, GetSessionValue(c, "k"))
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}
