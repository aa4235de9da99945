package fees

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

// SetupFeesRoutes sets up the fee ledger pages
func SetupFeesRoutes(app *fiber.App, env *web.Env) {
	admin := app.Group("/admin/fees", auth.RequireRole(session.Admin))
	admin.Get("/", adminFeesPage(env))
	admin.Post("/record", recordPaymentHandler(env))

	app.Get("/student/fees", auth.RequireRole(session.Student), studentFeesPage(env))
}
