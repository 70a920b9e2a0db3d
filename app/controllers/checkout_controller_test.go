package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/middleware"
	"github.com/ManuelReschke/SiteForge/internal/pkg/payment"
	"github.com/ManuelReschke/SiteForge/internal/pkg/session"
)

type recordingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *recordingNotifier) Notify(context.Context, checkout.Notification) {
	n.mu.Lock()
	n.count++
	n.mu.Unlock()
}

func TestRedirectBack(t *testing.T) {
	tests := []struct {
		form    string
		referer string
		want    string
	}{
		{"/faq", "", "/faq"},
		{"//evil.example/x", "", "/"},
		{"https://evil.example/", "", "/"},
		{"", "http://example.com/pricing", "/pricing"},
		{"", "http://other.example/pricing", "/"},
		{"", "", "/"},
	}
	for _, tt := range tests {
		app := fiber.New()
		var got string
		app.Post("/", func(c *fiber.Ctx) error {
			got = redirectBack(c)
			return nil
		})
		req := httptest.NewRequest(http.MethodPost, "http://example.com/", strings.NewReader(url.Values{"redirect": {tt.form}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "form=%q referer=%q", tt.form, tt.referer)
	}
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("", "page count")
	require.NoError(t, err)
	assert.Equal(t, 0, *n)

	n, err = parseCount(" 12 ", "page count")
	require.NoError(t, err)
	assert.Equal(t, 12, *n)

	_, err = parseCount("-1", "page count")
	assert.ErrorIs(t, err, errInvalidCount)
	_, err = parseCount("ten", "page count")
	assert.ErrorIs(t, err, errInvalidCount)
}

func TestUnverifiedPaymentIsRecordedAsFailed(t *testing.T) {
	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":true,"message":"ok","data":{"status":"abandoned","reference":"R1","amount":4500000,"currency":"NGN"}}`)
	}))
	defer processor.Close()

	InitializeCheckoutController(CheckoutDeps{
		Widget:   payment.WidgetConfig{PublicKey: "pk_test", ScriptURL: "https://js.example.test/inline.js", SettlementCurrency: "NGN"},
		Verifier: &payment.Verifier{SecretKey: "sk_test", APIBaseURL: processor.URL, HTTPClient: processor.Client()},
	})
	t.Cleanup(func() { InitializeCheckoutController(CheckoutDeps{}) })

	session.SetSessionStore(fibersession.New(fibersession.Config{KeyLookup: "cookie:session_id"}))
	t.Cleanup(func() { session.SetSessionStore(nil) })

	n := &recordingNotifier{}
	app := fiber.New(fiber.Config{Views: html.New("../../views", ".html")})
	app.Use(middleware.AppStateMiddleware(checkout.WithNotifier(n)))
	app.Post("/checkout/select/:plan", HandleCheckoutSelect)
	app.Post("/checkout/configure", HandleCheckoutConfigure)
	app.Post("/checkout/buyer", HandleCheckoutBuyer)
	app.Post("/checkout/payment/callback", HandleCheckoutPaymentCallback)
	app.Get("/state", func(c *fiber.Ctx) error {
		f := appstate.Get(c).Funnel
		return c.SendString(string(f.Step()) + "/" + string(f.Draft().PaymentStatus))
	})

	cookie := ""
	post := func(path string, form url.Values) {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		for _, c := range resp.Cookies() {
			if c.Name == "session_id" {
				cookie = "session_id=" + c.Value
			}
		}
	}

	post("/checkout/select/basic", url.Values{})
	post("/checkout/configure", url.Values{"action": {"submit"}})
	post("/checkout/buyer", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}})
	post("/checkout/payment/callback", url.Values{"outcome": {"success"}, "reference": {"R1"}})

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "confirmed/failed", string(body))
	assert.Zero(t, n.count)
}
