package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/ManuelReschke/SiteForge/app/controllers"
	"github.com/ManuelReschke/SiteForge/internal/pkg/cache"
	"github.com/ManuelReschke/SiteForge/internal/pkg/checkout"
	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
	"github.com/ManuelReschke/SiteForge/internal/pkg/intake"
	"github.com/ManuelReschke/SiteForge/internal/pkg/metrics"
	"github.com/ManuelReschke/SiteForge/internal/pkg/payment"
	"github.com/ManuelReschke/SiteForge/internal/pkg/router"
)

func main() {
	app, dispatcher := NewApplication()

	go func() {
		addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000"))
		if err := app.Listen(addr); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("[Server] Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("[Server] Shutdown error: %v", err)
	}
	dispatcher.Stop()
	_ = cache.Close()
}

func NewApplication() (*fiber.App, *intake.Dispatcher) {
	env.SetupEnvFile()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/siteforge to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// intake relay + notification once-guard
	dispatcher := intake.NewDispatcher(intake.NewClientFromEnv(), env.GetEnvInt("INTAKE_WORKERS", intake.DefaultWorkers), intake.DefaultQueueSize)
	dispatcher.Start()
	funnelOpts := []checkout.FunnelOption{checkout.WithNotifier(dispatcher)}
	if cache.Enabled() {
		funnelOpts = append(funnelOpts, checkout.WithOnceGuard(cache.NewRedisGuard(cache.GetClient(), cache.DefaultGuardTTL)))
	} else {
		funnelOpts = append(funnelOpts, checkout.WithOnceGuard(cache.NewMemoryGuard(cache.DefaultGuardTTL)))
	}

	controllers.InitializeCheckoutController(controllers.CheckoutDeps{
		Widget:   payment.NewWidgetConfigFromEnv(),
		Verifier: payment.NewVerifierFromEnv(),
	})

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     html.New(basePath+"views", ".html"),
		BodyLimit: 1 * 1024 * 1024,
	})

	// ignore favicon requests
	app.Use(favicon.New(favicon.Config{
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber monitor
	app.Get("/monitor", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("MONITOR_USER", "admin"): env.GetEnv("MONITOR_PASSWORD", "change-me"),
		},
	}), monitor.New())

	// prometheus funnel metrics
	app.Get("/metrics", metrics.Handler())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.Options{FunnelOptions: funnelOpts})

	return app, dispatcher
}
