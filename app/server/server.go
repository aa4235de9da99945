// Package server assembles the portal: template engine, middleware and every
// feature's routes.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"hostel-portal/app/client"
	"hostel-portal/app/config"
	"hostel-portal/app/logger"
	"hostel-portal/app/routes/announcements"
	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/complaints"
	"hostel-portal/app/routes/dashboard"
	"hostel-portal/app/routes/fees"
	"hostel-portal/app/routes/messmenu"
	"hostel-portal/app/routes/outpasses"
	"hostel-portal/app/routes/profile"
	"hostel-portal/app/routes/rooms"
	"hostel-portal/app/routes/students"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
	"hostel-portal/app/templates"
)

// pageCalls bounds how many sequential backend calls one page may wait for.
const pageCalls = 3

// Option adjusts the Env before routes are registered.
type Option func(*web.Env)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *web.Env) { e.Now = now }
}

// New builds the portal app from cfg.
func New(cfg *config.Config, opts ...Option) *fiber.App {
	env := &web.Env{
		Client:   client.New(cfg.Backend.BaseURL, client.WithTimeout(cfg.Backend.Timeout)),
		Sessions: session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.SecureCookie),
		Resolver: session.NewResolver(),
	}
	for _, opt := range opts {
		opt(env)
	}

	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	engine.AddFuncMap(web.Funcs())
	engine.Reload(cfg.Templates.Reload)

	app := fiber.New(fiber.Config{
		AppName:           web.AppName,
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		BodyLimit:         8 * 1024 * 1024,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(requestTimeout(cfg.Backend.Timeout * pageCalls))
	app.Use(auth.AuthMiddleware(env))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app, env)
	dashboard.SetupDashboardRoutes(app, env)
	students.SetupStudentsRoutes(app, env)
	rooms.SetupRoomsRoutes(app, env)
	complaints.SetupComplaintsRoutes(app, env)
	fees.SetupFeesRoutes(app, env)
	announcements.SetupAnnouncementsRoutes(app, env)
	outpasses.SetupOutpassRoutes(app, env)
	profile.SetupProfileRoutes(app, env)
	messmenu.SetupMessMenuRoutes(app, env)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	logger.Debug().Str("backend", cfg.Backend.BaseURL).Msg("portal routes registered")
	return app
}

// requestTimeout gives every request a context that ends when the page's
// backend budget runs out.
func requestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
