package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/SiteForge/internal/pkg/cache"
	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore builds the visitor session store. Sessions live in the
// cache (database 1, the guard uses 0) when one is configured and in process
// memory otherwise.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   !env.IsDev(),
		Expiration:     time.Hour * 2,
		KeyLookup:      "cookie:session_id",
	}

	if cache.Enabled() {
		cfg.Storage = redis.New(redis.Config{
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     env.GetEnvInt("CACHE_PORT", 6379),
			Password: env.GetEnv("CACHE_PASSWORD", ""),
			Database: 1,
			Reset:    false,
		})
		log.Info("[Session] Using cache backed session storage")
	} else {
		log.Info("[Session] CACHE_HOST not set, using in-memory session storage")
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

// SetSessionStore installs an existing store, e.g. a memory store in tests.
func SetSessionStore(s *session.Store) {
	sessionStore = s
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValues stores several key-value pairs in one save.
func SetSessionValues(c *fiber.Ctx, values map[string]string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	for k, v := range values {
		sess.Set(k, v)
	}
	return sess.Save()
}

// SetSessionValue stores a key-value pair in the visitor's session.
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	return SetSessionValues(c, map[string]string{key: value})
}

// GetSessionValue retrieves a value by key from the visitor's session.
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}
