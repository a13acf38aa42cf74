package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	// Static assets
	app.Static("/static", "./static")

	// Pages
	app.Get("/", handlers.Home)
	app.Get("/archive", handlers.Archive)
	app.Get("/chapter/:date", handlers.ViewChapter)
	app.Get("/about", handlers.About)

	// RSS feed of recent chapters
	app.Get("/feed.xml", handlers.Feed)

	// Admin: proxied news refresh (rate limited per IP)
	app.Post("/admin/refresh-news", handlers.RefreshNews)
}
