package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"tidewriter/internal/adapters/api"
	"tidewriter/internal/adapters/cache"
	"tidewriter/internal/adapters/web"
	"tidewriter/internal/config"
	"tidewriter/internal/usecases"
	"tidewriter/pkg/log"
)

func main() {
	// Load configuration (.env, environment, site.yaml)
	cfg, err := config.Load("config/site.yaml")
	if err != nil {
		log.SetDefault(log.NewStdout(log.Info))
		log.GlobalError("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log.SetDefault(log.NewStdout(cfg.LogLevel))

	// Initialize adapters
	client := api.NewClient(cfg.ContentAPIURL, cfg.AdminAPIKey, 15*time.Second)
	chapterCache := cache.NewMemoryCache(cfg.CacheTTL)

	// Initialize use cases
	getChapter := usecases.NewGetChapterUseCase(chapterCache, client)
	listArchive := usecases.NewListArchiveUseCase(client)

	// Initialize web handlers
	limiter := web.NewRateLimiter(5, time.Minute) // 5 refreshes/min per IP
	handlers := web.NewHandlers(getChapter, listArchive, client, limiter, cfg.Site)

	// Setup Fiber with the HTML view engine
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:     cfg.Site.Name,
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	// Setup routes
	web.SetupRoutes(app, handlers)

	// Start server
	log.GlobalInfo("starting server", "site", cfg.Site.Name, "port", cfg.Port, "content_api", cfg.ContentAPIURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.GlobalError("server stopped", "error", err)
		os.Exit(1)
	}
}
