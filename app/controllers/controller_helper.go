package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/SiteForge/internal/pkg/appstate"
	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
	"github.com/ManuelReschke/SiteForge/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// layoutFor builds the shared layout model from the request state.
func layoutFor(c *fiber.Ctx, page, title string) viewmodel.Layout {
	state := appstate.Get(c)
	msg := flash.Get(c)

	l := viewmodel.NewLayout(page, title)
	l.Region = state.Region
	l.Theme = state.Theme
	l.MenuOpen = state.MenuOpen
	l.Msg = msg
	l.IsError = msg["type"] == "error"
	l.CSRF = csrfToken(c)
	l.IsDev = env.IsDev()
	l.Path = c.Path()
	return l
}

func render(c *fiber.Ctx, view string, layout viewmodel.Layout, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout
	return c.Render(view, data, mainLayout)
}

func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

func flashError(c *fiber.Ctx, message, redirect string) error {
	return flash.WithError(c, fiber.Map{"type": "error", "message": message}).Redirect(redirect)
}

func flashInfo(c *fiber.Ctx, message, redirect string) error {
	return flash.WithInfo(c, fiber.Map{"type": "info", "message": message}).Redirect(redirect)
}

// redirectBack returns a local path to send the visitor back to. Only
// same-site absolute paths are accepted.
func redirectBack(c *fiber.Ctx) string {
	target := strings.TrimSpace(c.FormValue("redirect"))
	if target == "" {
		target = strings.TrimSpace(c.Get(fiber.HeaderReferer))
		if i := strings.Index(target, "://"); i >= 0 {
			rest := target[i+3:]
			if host, path, found := strings.Cut(rest, "/"); found && host == string(c.Request().Host()) {
				target = "/" + path
			} else {
				target = ""
			}
		}
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// formValues returns every value posted for key.
func formValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	if len(out) == 0 {
		if form, err := c.MultipartForm(); err == nil && form != nil {
			out = append(out, form.Value[key]...)
		}
	}
	return out
}
