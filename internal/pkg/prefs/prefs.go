package prefs

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/catalog"
)

const (
	RegionCookie = "region"
	ThemeCookie  = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"

	cookieMaxAge = 365 * 24 * time.Hour
)

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownTheme  = errors.New("unknown theme")
)

// Preferences are the visitor choices kept in plain cookies.
type Preferences struct {
	Region string
	Theme  string
}

func Default() Preferences {
	return Preferences{Region: catalog.DefaultRegion, Theme: ThemeLight}
}

// Read loads preferences from the request cookies. Missing or unknown values
// fall back to the defaults.
func Read(c *fiber.Ctx) Preferences {
	p := Default()
	if region, ok := canonicalRegion(c.Cookies(RegionCookie)); ok {
		p.Region = region
	}
	if theme, ok := normalizeTheme(c.Cookies(ThemeCookie)); ok {
		p.Theme = theme
	}
	return p
}

// WriteRegion persists a region choice. It returns the canonical region name.
func WriteRegion(c *fiber.Ctx, raw string) (string, error) {
	region, ok := canonicalRegion(raw)
	if !ok {
		return "", ErrUnknownRegion
	}
	setCookie(c, RegionCookie, region)
	return region, nil
}

func WriteTheme(c *fiber.Ctx, raw string) (string, error) {
	theme, ok := normalizeTheme(raw)
	if !ok {
		return "", ErrUnknownTheme
	}
	setCookie(c, ThemeCookie, theme)
	return theme, nil
}

// Toggle returns the other theme.
func Toggle(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func canonicalRegion(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	entry, err := catalog.Lookup(raw)
	if err != nil {
		return "", false
	}
	return entry.Region, true
}

func normalizeTheme(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

func setCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(cookieMaxAge),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
